// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package results

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/thefledgedhurricane/journal-quality/pkg/types"
)

// historyDBFile is the run-history database file name inside the
// exports directory.
const historyDBFile = "history.db"

// Store keeps a local history of analysis runs in SQLite so past runs
// can be listed and re-inspected without repeating remote lookups.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the run-history database under exportsDir.
func OpenStore(exportsDir string) (*Store, error) {
	if err := os.MkdirAll(exportsDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating exports directory: %w", err)
	}

	dbPath := filepath.Join(exportsDir, historyDBFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			term TEXT NOT NULL,
			created_at TEXT NOT NULL,
			total INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_results (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			issn TEXT,
			publisher TEXT,
			categories TEXT,
			scopus_indexed TEXT NOT NULL,
			predatory_journal INTEGER NOT NULL,
			predatory_publisher INTEGER NOT NULL,
			apc TEXT,
			frequency TEXT,
			open_access TEXT NOT NULL,
			hybrid TEXT NOT NULL,
			PRIMARY KEY (run_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_results_run_id ON run_results(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RunSummary describes one stored analysis run.
type RunSummary struct {
	ID        int64     `json:"id"`
	Mode      string    `json:"mode"`
	Term      string    `json:"term"`
	CreatedAt time.Time `json:"created_at"`
	Total     int       `json:"total"`
}

// SaveRun stores one run and its result table, returning the run ID.
// Result positions record candidate order so RunResults can restore it.
func (s *Store) SaveRun(ctx context.Context, mode, term string, results []types.EnrichmentResult) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (mode, term, created_at, total) VALUES (?, ?, ?, ?)`,
		mode, term, time.Now().UTC().Format(time.RFC3339), len(results),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_results (run_id, position, title, issn, publisher, categories,
			scopus_indexed, predatory_journal, predatory_publisher,
			apc, frequency, open_access, hybrid)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range results {
		_, err := stmt.ExecContext(ctx,
			runID, i, r.Title, r.ISSN, r.Publisher, r.Categories,
			string(r.ScopusIndexed), boolInt(r.PredatoryJournal), boolInt(r.PredatoryPublisher),
			r.Attributes.APC, r.Attributes.Frequency,
			string(r.Attributes.OpenAccess), string(r.Attributes.Hybrid),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting result %s: %w", r.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

// ListRuns returns stored runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, mode, term, created_at, total FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Mode, &r.Term, &createdAt, &r.Total); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			r.CreatedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunResults returns the result table of one stored run in its original
// candidate order.
func (s *Store) RunResults(ctx context.Context, runID int64) ([]types.EnrichmentResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT title, issn, publisher, categories,
			scopus_indexed, predatory_journal, predatory_publisher,
			apc, frequency, open_access, hybrid
		 FROM run_results WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying run %d: %w", runID, err)
	}
	defer rows.Close()

	var results []types.EnrichmentResult
	for rows.Next() {
		var r types.EnrichmentResult
		var scopus, openAccess, hybrid string
		var predJournal, predPublisher int
		err := rows.Scan(&r.Title, &r.ISSN, &r.Publisher, &r.Categories,
			&scopus, &predJournal, &predPublisher,
			&r.Attributes.APC, &r.Attributes.Frequency, &openAccess, &hybrid)
		if err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		r.ScopusIndexed = types.TriState(scopus)
		r.PredatoryJournal = predJournal != 0
		r.PredatoryPublisher = predPublisher != 0
		r.Attributes.OpenAccess = types.TriState(openAccess)
		r.Attributes.Hybrid = types.TriState(hybrid)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if results == nil {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	return results, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
