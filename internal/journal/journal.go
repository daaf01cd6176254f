// Package journal records sheet visibility transitions in sqlite.
package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindShow  Kind = "show"
	KindClose Kind = "close"
)

// Entry is one recorded transition.
type Entry struct {
	ID        string
	Scope     string
	SheetID   string
	Kind      Kind
	Payload   *string
	CreatedAt time.Time
}

// Journal implements sheet.Observer. Write failures are logged and dropped;
// the caller showing or closing a sheet never sees them.
type Journal struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

// Open migrates and opens the journal at path, creating its directory.
func Open(path string, logger *slog.Logger) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir journal dir: %w", err)
	}
	if err := Migrate(path); err != nil {
		return nil, err
	}
	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Journal{db: db, logger: logger, now: func() time.Time { return time.Now().UTC() }}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) SheetShown(scope, id string, payload any) {
	e := Entry{Scope: scope, SheetID: id, Kind: KindShow}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			j.logger.Warn("journal: payload not encodable", "sheet", id, "err", err)
		} else {
			s := string(data)
			e.Payload = &s
		}
	}
	j.record(e)
}

func (j *Journal) SheetClosed(scope, id string) {
	j.record(Entry{Scope: scope, SheetID: id, Kind: KindClose})
}

func (j *Journal) record(e Entry) {
	if err := j.Append(context.Background(), e); err != nil {
		j.logger.Warn("journal: append failed", "sheet", e.SheetID, "kind", e.Kind, "err", err)
	}
}

// Append stores e, filling ID and CreatedAt when unset.
func (j *Journal) Append(ctx context.Context, e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = j.now()
	}
	_, err := j.db.ExecContext(ctx, `
	INSERT INTO sheet_events(id, scope, sheet_id, kind, payload, created_at)
	VALUES (?, ?, ?, ?, ?, ?);
	`, e.ID, e.Scope, e.SheetID, string(e.Kind), e.Payload, e.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("insert sheet event: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, `
	SELECT id, scope, sheet_id, kind, payload, created_at
	FROM sheet_events ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var (
			e       Entry
			kind    string
			payload sql.NullString
			created int64
		)
		if err := rows.Scan(&e.ID, &e.Scope, &e.SheetID, &kind, &payload, &created); err != nil {
			return nil, err
		}
		e.Kind = Kind(kind)
		if payload.Valid {
			s := payload.String
			e.Payload = &s
		}
		e.CreatedAt = time.Unix(0, created).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}
