// Package storage provides SQLite implementations of the storage ports.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/xvierd/dusk/internal/ports"
	"modernc.org/sqlite"
)

// memoryPath is the sqlite DSN for a private in-memory database.
const memoryPath = ":memory:"

// sqliteStorage implements the ports.Storage interface using SQLite.
type sqliteStorage struct {
	db      *sql.DB
	runRepo ports.RunRepository
}

// Ensure sqliteStorage implements ports.Storage.
var _ ports.Storage = (*sqliteStorage)(nil)

// New creates a new SQLite storage instance.
func New(dbPath string) (ports.Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	if dbPath == memoryPath {
		db.SetMaxOpenConns(1)
	}

	// Enable foreign keys and WAL mode for better performance
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	storage := &sqliteStorage{
		db:      db,
		runRepo: newRunRepository(db),
	}

	if err := storage.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return storage, nil
}

// NewMemory creates a new in-memory SQLite storage instance for testing.
func NewMemory() (ports.Storage, error) {
	return New(memoryPath)
}

// Runs returns the run journal repository.
func (s *sqliteStorage) Runs() ports.RunRepository {
	return s.runRepo
}

// Close closes the database connection.
func (s *sqliteStorage) Close() error {
	return s.db.Close()
}

// Migrate creates the database schema.
func (s *sqliteStorage) Migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at DATETIME NOT NULL,
		finished_at DATETIME,
		bedtime TEXT NOT NULL,
		task_count INTEGER NOT NULL,
		task_names TEXT,
		pomodoros INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		recorded_at DATETIME NOT NULL,
		type TEXT NOT NULL,
		at TEXT NOT NULL,
		task TEXT,
		summary TEXT NOT NULL,
		body TEXT,
		kelvin INTEGER,
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_events_run ON events(run_id);
	`

	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// isForeignKeyError checks if an error is a foreign key violation.
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	// SQLITE_CONSTRAINT_FOREIGNKEY, or the primary SQLITE_CONSTRAINT code
	// when extended codes are off.
	return sqliteErr.Code() == 787 ||
		(sqliteErr.Code()&0xff == 19 && strings.Contains(sqliteErr.Error(), "FOREIGN KEY"))
}
