package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Open retry policy for transient lock contention on the database file.
const (
	openAttempts   = 3
	openRetryDelay = 150 * time.Millisecond
)

// SQLiteStore implements the Store interface using a local SQLite database.
// Construct it once at startup and share the handle; the store performs no
// locking of its own and delegates atomicity to SQLite transactions.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath, enables
// WAL mode and foreign-key enforcement, and runs any pending schema
// migrations. A transiently locked database file is retried a fixed
// number of times before the error propagates.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	var lastErr error
	for attempt := 0; attempt < openAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(openRetryDelay)
		}

		s, err := open(dbPath)
		if err == nil {
			return s, nil
		}
		lastErr = err
		if !isTransientOpenErr(err) {
			return nil, err
		}
	}
	return nil, lastErr
}

func open(dbPath string) (*SQLiteStore, error) {
	// Pragmas go in the DSN so every connection the pool opens gets
	// them; a plain Exec would configure only one pooled connection and
	// leave foreign keys (and with them the delete cascade) off on the
	// rest. WAL is for better concurrent read performance.
	dsn := "file:" + dbPath + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// An in-memory database exists per connection; without this the pool
	// would hand out fresh, unmigrated databases.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// isTransientOpenErr reports whether an open failure is worth retrying.
// Only lock contention qualifies; everything else propagates immediately.
func isTransientOpenErr(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "SQLITE_BUSY")
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order, each inside its own transaction.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	// Check if schema_version table exists.
	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}

		tx, err := s.db.Beginx()
		if err != nil {
			return fmt.Errorf("beginning migration v%d: %w", m.version, err)
		}
		if _, err := tx.Exec(m.sql); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// Reset drops both data tables and the schema-version marker inside one
// transaction, then re-runs all migrations from empty. Destructive and
// irreversible; exposed only as an explicit user-triggered escape hatch.
func (s *SQLiteStore) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning reset transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		"DROP TABLE IF EXISTS checklist_items",
		"DROP TABLE IF EXISTS checklists",
		"DROP TABLE IF EXISTS schema_version",
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("dropping table: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing reset: %w", err)
	}

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("re-running migrations after reset: %w", err)
	}
	return nil
}

// boolToInt converts a boolean to 0 or 1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
