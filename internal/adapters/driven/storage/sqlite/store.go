package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/mocapprep/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/mocapprep/internal/core/domain"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driven"
)

// DatabaseName is the ledger file name inside the data directory.
const DatabaseName = "ledger.db"

// Ensure Store implements the interface.
var _ driven.RunLedger = (*Store)(nil)

// Store is a SQLite-backed run ledger.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.mocapprep/data/ledger.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".mocapprep", "data")
	}

	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseName)

	// Pragmas in the DSN apply to every pooled connection, not just the
	// first. run_records relies on ON DELETE CASCADE.
	dsn := dbPath + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate applies every embedded .up.sql file newer than the recorded version.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Record stores a run and its per-item records, replacing any run with
// the same ID.
func (s *Store) Record(ctx context.Context, run domain.Run) error {
	if run.ID == "" {
		return domain.ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// run_records rows go with it via ON DELETE CASCADE.
	if _, err := tx.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", run.ID); err != nil {
		return fmt.Errorf("replacing run: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, pipeline, started_at, finished_at)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.Pipeline.String(), run.StartedAt.UTC(), run.FinishedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO run_records (run_id, position, source, output, success, message)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing record insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range run.Records {
		if _, err := stmt.ExecContext(ctx, run.ID, i, rec.Source, rec.Output, rec.Success, rec.Message); err != nil {
			return fmt.Errorf("saving record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first. A limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]domain.Run, error) {
	query := "SELECT id, pipeline, started_at, finished_at FROM runs ORDER BY started_at DESC, id"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	var runs []domain.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	rows.Close()

	for i := range runs {
		records, err := s.records(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Records = records
	}
	return runs, nil
}

// Get retrieves a run by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, pipeline, started_at, finished_at FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	run.Records, err = s.records(ctx, id)
	if err != nil {
		return nil, err
	}
	return run, nil
}

func (s *Store) records(ctx context.Context, runID string) ([]domain.RunRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT source, output, success, message
		FROM run_records WHERE run_id = ? ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing run records: %w", err)
	}
	defer rows.Close()

	var records []domain.RunRecord
	for rows.Next() {
		var rec domain.RunRecord
		if err := rows.Scan(&rec.Source, &rec.Output, &rec.Success, &rec.Message); err != nil {
			return nil, fmt.Errorf("scanning run record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*domain.Run, error) {
	var run domain.Run
	var pipeline string
	var startedAt, finishedAt sql.NullTime
	if err := row.Scan(&run.ID, &pipeline, &startedAt, &finishedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}
	run.Pipeline = domain.Pipeline(pipeline)
	if startedAt.Valid {
		run.StartedAt = startedAt.Time.In(time.UTC)
	}
	if finishedAt.Valid {
		run.FinishedAt = finishedAt.Time.In(time.UTC)
	}
	return &run, nil
}
