package session

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// recordKey is the fixed key the single session record is stored under.
const recordKey = "session"

// SQLiteBackend persists the session record in a local SQLite database so it
// survives process restarts.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens (creating if needed) the database at path, verifies
// the connection, and ensures the schema exists. The caller should call Close
// when the backend is no longer needed.
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create state directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

// Close closes the underlying database connection.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

// Load retrieves the session record, or ErrNotFound if none is stored.
func (b *SQLiteBackend) Load(ctx context.Context) ([]byte, error) {
	var value []byte
	err := b.db.QueryRowContext(ctx,
		`SELECT value FROM records WHERE key = ?`, recordKey,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query session record: %w", err)
	}
	return value, nil
}

// Save upserts the session record, replacing any prior value.
func (b *SQLiteBackend) Save(ctx context.Context, record []byte) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO records (key, value)
		VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		recordKey, record,
	)
	return err
}

// Clear removes the session record. Clearing an absent record is a no-op.
func (b *SQLiteBackend) Clear(ctx context.Context) error {
	_, err := b.db.ExecContext(ctx,
		`DELETE FROM records WHERE key = ?`, recordKey,
	)
	return err
}
