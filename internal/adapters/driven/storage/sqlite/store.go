package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/eatwise-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driven"
)

// DatabaseFile is the name of the history database inside the data directory.
const DatabaseFile = "history.db"

// Store is a SQLite-based storage that exposes its tables through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.eatwise/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".eatwise", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
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

// ScanStore returns a ScanStore interface backed by this store.
func (s *Store) ScanStore() driven.ScanStore {
	return &scanStore{store: s}
}

// migrate runs all pending migrations. Each migration and its version row
// are applied in one transaction.
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

	steps, err := migrations.Up(fsys)
	if err != nil {
		return err
	}

	for _, step := range steps {
		if step.Version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, step.Name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", step.Name, err)
		}
		if err := s.apply(step.Version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", step.Name, err)
		}
	}

	return nil
}

func (s *Store) apply(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(script); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// ==================== Scan Store ====================

// scanStore implements driven.ScanStore.
type scanStore struct {
	store *Store
}

var _ driven.ScanStore = (*scanStore)(nil)

const scanColumns = "id, source, outcome, anchor, text, raw_length, created_at"

// Save stores or updates a scan record.
func (s *scanStore) Save(ctx context.Context, record domain.ScanRecord) error {
	if record.ID == "" {
		return fmt.Errorf("%w: record id is required", domain.ErrInvalidInput)
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO scan_records (`+scanColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source = excluded.source,
			outcome = excluded.outcome,
			anchor = excluded.anchor,
			text = excluded.text,
			raw_length = excluded.raw_length,
			created_at = excluded.created_at
	`, record.ID, record.Source, string(record.Outcome), record.Anchor, record.Text,
		record.RawLength, record.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving scan record: %w", err)
	}
	return nil
}

// Get retrieves a scan record by ID.
func (s *scanStore) Get(ctx context.Context, id string) (*domain.ScanRecord, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT "+scanColumns+" FROM scan_records WHERE id = ?", id)

	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning scan record: %w", err)
	}
	return record, nil
}

// List returns scan records newest first.
func (s *scanStore) List(ctx context.Context, limit int) ([]domain.ScanRecord, error) {
	query := "SELECT " + scanColumns + " FROM scan_records ORDER BY created_at DESC, id DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying scan records: %w", err)
	}
	defer rows.Close()

	var records []domain.ScanRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning scan record: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scan records: %w", err)
	}

	return records, nil
}

// Delete removes a scan record.
// Returns domain.ErrNotFound if it does not exist.
func (s *scanStore) Delete(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM scan_records WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting scan record: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting scan record: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Clear removes every scan record.
func (s *scanStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM scan_records"); err != nil {
		return fmt.Errorf("clearing scan records: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*domain.ScanRecord, error) {
	var record domain.ScanRecord
	var outcome string
	var createdAt sql.NullTime
	if err := row.Scan(&record.ID, &record.Source, &outcome, &record.Anchor,
		&record.Text, &record.RawLength, &createdAt); err != nil {
		return nil, err
	}
	record.Outcome = domain.ScanOutcome(outcome)
	if createdAt.Valid {
		record.CreatedAt = createdAt.Time
	}
	return &record, nil
}
