// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite ledger of conversion runs and the outcome
// of every job in them.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/svg2png/pkg/types"
)

// Store manages the history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL,
			base_dir TEXT NOT NULL,
			tool TEXT NOT NULL,
			converted INTEGER NOT NULL,
			failed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS outcomes (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			source TEXT NOT NULL,
			dest TEXT NOT NULL,
			size INTEGER NOT NULL,
			kind TEXT NOT NULL,
			exit_code INTEGER NOT NULL DEFAULT 0,
			error TEXT,
			PRIMARY KEY (run_id, seq)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RunSummary is one row of the runs table.
type RunSummary struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	BaseDir    string
	Tool       string
	Converted  int
	Failed     int
}

// Record stores run and its outcomes in a single transaction. If run.ID is
// empty a new UUID is assigned. It returns the run ID.
func (s *Store) Record(ctx context.Context, run types.Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	converted, failed := run.Counts()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, finished_at, base_dir, tool, converted, failed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, formatTime(run.StartedAt), formatTime(run.FinishedAt),
		run.BaseDir, run.Tool, converted, failed,
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO outcomes (run_id, seq, source, dest, size, kind, exit_code, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, o := range run.Outcomes {
		_, err := stmt.ExecContext(ctx,
			run.ID, i, o.Job.Source, o.Job.Dest, o.Job.Size,
			string(o.Kind), o.ExitCode, o.Error,
		)
		if err != nil {
			return "", fmt.Errorf("inserting outcome for %s: %w", o.Job.Source, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return run.ID, nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, base_dir, tool, converted, failed
		 FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		var started, finished string
		if err := rows.Scan(&r.ID, &started, &finished, &r.BaseDir, &r.Tool, &r.Converted, &r.Failed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.StartedAt = parseTime(started)
		r.FinishedAt = parseTime(finished)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Outcomes returns the outcomes of one run in job order. An unknown run ID
// yields an error.
func (s *Store) Outcomes(ctx context.Context, runID string) ([]types.Outcome, error) {
	var exists int
	if err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM runs WHERE id = ?`, runID,
	).Scan(&exists); err != nil {
		return nil, fmt.Errorf("looking up run: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("run %s not found", runID)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT source, dest, size, kind, exit_code, COALESCE(error, '')
		 FROM outcomes WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying outcomes: %w", err)
	}
	defer rows.Close()

	var out []types.Outcome
	for rows.Next() {
		var o types.Outcome
		var kind string
		if err := rows.Scan(&o.Job.Source, &o.Job.Dest, &o.Job.Size, &kind, &o.ExitCode, &o.Error); err != nil {
			return nil, fmt.Errorf("scanning outcome: %w", err)
		}
		o.Kind = types.OutcomeKind(kind)
		out = append(out, o)
	}
	return out, rows.Err()
}

// timeLayout is fixed-width so that string order matches time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
