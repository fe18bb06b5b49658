package output

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	input      TEXT NOT NULL,
	mode       TEXT NOT NULL,
	reverse    INTEGER NOT NULL DEFAULT 0,
	seed       INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS palindromes (
	run_id   TEXT NOT NULL REFERENCES runs(id),
	position INTEGER NOT NULL,
	text     TEXT NOT NULL,
	PRIMARY KEY (run_id, position)
);
`

// SQLiteWriter stores runs in a SQLite database.
type SQLiteWriter struct {
	db *sql.DB
}

var _ Writer = (*SQLiteWriter)(nil)

// OpenSQLite opens (or creates) the database at path and ensures the schema.
func OpenSQLite(path string) (*SQLiteWriter, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("output: open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("output: create schema: %w", err)
	}

	return &SQLiteWriter{db: db}, nil
}

// Write inserts the run and its lines in one transaction. An empty run.ID is
// replaced with a fresh UUID.
func (s *SQLiteWriter) Write(ctx context.Context, run Run, lines []string) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.Created.IsZero() {
		run.Created = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("output: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, input, mode, reverse, seed, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Input, run.Mode, run.Reverse, run.Seed, run.Created.UTC()); err != nil {
		return fmt.Errorf("output: insert run %s: %w", run.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO palindromes (run_id, position, text) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("output: prepare: %w", err)
	}
	defer stmt.Close()
	for i, l := range lines {
		if _, err := stmt.ExecContext(ctx, run.ID, i, l); err != nil {
			return fmt.Errorf("output: insert line %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("output: commit: %w", err)
	}

	return nil
}

// Runs lists run IDs, oldest first.
func (s *SQLiteWriter) Runs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM runs ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("output: list runs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("output: scan run: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// Lines returns the lines of a run in output order.
func (s *SQLiteWriter) Lines(ctx context.Context, runID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT text FROM palindromes WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("output: query run %s: %w", runID, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("output: scan line: %w", err)
		}
		out = append(out, l)
	}

	return out, rows.Err()
}

// Close closes the database.
func (s *SQLiteWriter) Close() error {
	return s.db.Close()
}
