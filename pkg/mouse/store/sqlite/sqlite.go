package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/mouse/pkg/mouse/internalerr"
	"github.com/cognicore/mouse/pkg/mouse/store"
)

// timeLayout is fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled and creates the
// schema if needed.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: init schema: %v", internalerr.ErrStoreUnavailable, err)
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	source TEXT,
	mode TEXT,
	token_count INTEGER NOT NULL DEFAULT 0,
	sentence_count INTEGER NOT NULL DEFAULT 0,
	output TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun inserts or replaces a run
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	if r.ID == "" {
		return fmt.Errorf("%w: run id is empty", internalerr.ErrInvalidInput)
	}

	const stmt = `
INSERT INTO runs (id, created_at, source, mode, token_count, sentence_count, output)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	created_at=excluded.created_at,
	source=excluded.source,
	mode=excluded.mode,
	token_count=excluded.token_count,
	sentence_count=excluded.sentence_count,
	output=excluded.output;
`

	_, err := s.db.ExecContext(
		ctx,
		stmt,
		r.ID,
		r.CreatedAt.UTC().Format(timeLayout),
		r.Source,
		r.Mode,
		r.TokenCount,
		r.SentenceCount,
		string(r.Output),
	)
	if err != nil {
		return fmt.Errorf("save run %s: %w", r.ID, err)
	}
	return nil
}

// GetRun retrieves a run by id
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, error) {
	const q = `
SELECT id, created_at, source, mode, token_count, sentence_count, output
FROM runs WHERE id = ?;
`

	r, err := scanRun(s.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return store.Run{}, fmt.Errorf("run %s: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return store.Run{}, fmt.Errorf("get run %s: %w", id, err)
	}
	return r, nil
}

// ListRuns returns runs newest first
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	q := `
SELECT id, created_at, source, mode, token_count, sentence_count, output
FROM runs ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	runs := []store.Run{}
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (store.Run, error) {
	var (
		r         store.Run
		createdAt string
		source    sql.NullString
		mode      sql.NullString
		output    string
	)
	if err := sc.Scan(&r.ID, &createdAt, &source, &mode, &r.TokenCount, &r.SentenceCount, &output); err != nil {
		return store.Run{}, err
	}

	ts, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return store.Run{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	r.CreatedAt = ts
	r.Source = source.String
	r.Mode = mode.String
	r.Output = []byte(output)
	return r, nil
}
