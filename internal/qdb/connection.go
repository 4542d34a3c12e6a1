// Package qdb manages the read-only SQLite connection to a Quicken data file.
package qdb

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite" // SQLite driver
)

// Connection wraps a read-only SQLite database handle.
type Connection struct {
	db   *sql.DB
	path string
}

// Open opens the data file at path read-only. The file must already exist;
// this package never creates or migrates a database.
func Open(path string) (*Connection, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("ledger file not readable: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?mode=ro", path)
	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger file: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping ledger file: %w", err)
	}

	return &Connection{db: db, path: path}, nil
}

// Close closes the database connection.
func (c *Connection) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Path returns the data file path.
func (c *Connection) Path() string {
	return c.path
}

// Query executes a query that returns rows.
func (c *Connection) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return c.db.Query(query, args...)
}

// QueryRow executes a query that is expected to return at most one row.
func (c *Connection) QueryRow(query string, args ...interface{}) *sql.Row {
	return c.db.QueryRow(query, args...)
}
