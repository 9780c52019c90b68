// Package sqlite provides SQLite-based local state storage for bhava.
// Uses WAL mode for concurrent reads and crash-safe writes.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)

	"github.com/bhava-app/bhava/internal/domain"
)

// DB wraps a SQLite connection with WAL mode and migrations.
// It implements domain.StateStore.
type DB struct {
	db *sql.DB
}

var _ domain.StateStore = (*DB)(nil)

// Open creates or opens the SQLite database at dir/state.db.
// Enables WAL mode and a 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "state.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// One JSON document per key: the progress aggregate and the
		// cached anonymous sync identity.
		`CREATE TABLE IF NOT EXISTS kv_state (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── State Repository ───────────────────────────────────────────────────────

// PutState stores value under key, overwriting any prior value.
func (d *DB) PutState(key string, value []byte) error {
	_, err := d.db.Exec(
		`INSERT INTO kv_state (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
			value=excluded.value,
			updated_at=excluded.updated_at`,
		key, value, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put state %q: %w", key, err)
	}
	return nil
}

// GetState retrieves the value stored under key.
// Returns domain.ErrStateNotFound if the key was never written.
func (d *DB) GetState(key string) ([]byte, error) {
	var value []byte
	err := d.db.QueryRow(`SELECT value FROM kv_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get state %q: %w", key, err)
	}
	return value, nil
}

// StateUpdatedAt returns when key was last written.
func (d *DB) StateUpdatedAt(key string) (time.Time, error) {
	var ms int64
	err := d.db.QueryRow(`SELECT updated_at FROM kv_state WHERE key = ?`, key).Scan(&ms)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, domain.ErrStateNotFound
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}

// DeleteState removes key. Deleting a missing key is not an error.
func (d *DB) DeleteState(key string) error {
	_, err := d.db.Exec(`DELETE FROM kv_state WHERE key = ?`, key)
	return err
}
