package logging

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelWarn)
	l.Info("quiet")
	l.Warn("loud", "sheet", "x")
	require.NotContains(t, buf.String(), "quiet")
	require.Contains(t, buf.String(), "sheet=x")
}

func TestContextRoundTrip(t *testing.T) {
	require.Same(t, slog.Default(), FromContext(context.Background()))

	l := New(&bytes.Buffer{}, slog.LevelInfo)
	ctx := WithLogger(context.Background(), l)
	require.Same(t, l, FromContext(ctx))
}

func TestOpenFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sheetkit.log")
	f, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.FileExists(t, path)
}
