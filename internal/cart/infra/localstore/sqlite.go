package localstore

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const kvSchema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// DB wraps a SQLite handle holding a kv table. One DB serves many keys;
// SQLite shows up as a pure-Go driver, no cgo involved.
type DB struct {
	sqlDB *sql.DB
}

// Open opens (and if needed creates) the SQLite kv database at path.
func Open(path string) (*DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(kvSchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &DB{sqlDB: sqlDB}, nil
}

// Close closes the underlying handle.
func (d *DB) Close() error {
	if d == nil || d.sqlDB == nil {
		return nil
	}
	return d.sqlDB.Close()
}

// Store binds the kv database to a single key.
func (d *DB) Store(key string) *SQLite {
	return &SQLite{db: d.sqlDB, key: key}
}

// SQLite reads and writes one key of the kv table.
type SQLite struct {
	db  *sql.DB
	key string
}

func (s *SQLite) Read() (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read key %q: %w", s.key, err)
	}
	return value, true, nil
}

func (s *SQLite) Write(value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		s.key, value,
	)
	if err != nil {
		return fmt.Errorf("write key %q: %w", s.key, err)
	}
	return nil
}
