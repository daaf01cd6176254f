package sheet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterOverwritesAndPublishesEachTime(t *testing.T) {
	bus := newRecordingBus()
	reg := NewRegistry[Component](bus)
	a, b := &dialog{name: "A"}, &dialog{name: "B"}

	reg.RegisterSheet("confirm", a, "ctx")
	reg.RegisterSheet("confirm", b, "ctx")

	require.Equal(t, []string{"confirm"}, reg.IDs("ctx"))
	got, ok := reg.Lookup("ctx", "confirm")
	require.True(t, ok)
	require.Same(t, b, got)
	require.Equal(t, 2, bus.count("ctx-on-register"))
}

func TestRegisterGuardsAreSilentNoOps(t *testing.T) {
	bus := newRecordingBus()
	reg := NewRegistry[Component](bus)
	var nilDialog *dialog
	var nilFunc ComponentFunc

	reg.RegisterSheet("", &dialog{name: "X"}, "")
	reg.RegisterSheet("confirm", nil, "")
	reg.RegisterSheet("confirm", nilDialog, "")
	reg.RegisterSheet("confirm", nilFunc, "")

	require.Empty(t, reg.IDs(DefaultScope))
	require.Empty(t, reg.Scopes())
	require.Zero(t, bus.count(RegisterTopic(DefaultScope)))
}

func TestRegisterDefaultsScope(t *testing.T) {
	bus := newRecordingBus()
	reg := NewRegistry[Component](bus)

	reg.RegisterSheet("help", ComponentFunc(func(Props) string { return "help" }), "")

	require.Equal(t, []string{"help"}, reg.IDs("global"))
	require.Equal(t, []string{"help"}, reg.IDs(""))
	require.Equal(t, 1, bus.count("global-on-register"))
}

func TestRegistryScopesAreIsolated(t *testing.T) {
	reg := NewRegistry[Component](newRecordingBus())
	reg.RegisterSheet("confirm", &dialog{name: "A"}, "A")
	reg.RegisterSheet("other", &dialog{name: "B"}, "B")
	reg.RegisterSheet("confirm", &dialog{name: "B"}, "B")

	require.Equal(t, []string{"confirm"}, reg.IDs("A"))
	require.Equal(t, []string{"confirm", "other"}, reg.IDs("B"))
	require.Equal(t, []string{"A", "B"}, reg.Scopes())
	require.Equal(t, []string{"confirm", "other"}, reg.AllIDs())
	_, ok := reg.Lookup("A", "other")
	require.False(t, ok)
}

func TestTopicNames(t *testing.T) {
	require.Equal(t, "global-on-register", RegisterTopic(""))
	require.Equal(t, "modal-on-register", RegisterTopic("modal"))
	require.Equal(t, "show_confirm-dialog", ShowTopic("confirm-dialog"))
	require.Equal(t, "onclose_confirm-dialog", CloseTopic("confirm-dialog"))
}
