// Package storage provides the SQLite persistence layer: the engine's
// configuration source and sink, the tab inventory, and the group
// assignment collaborator.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage implements the service.Storage and service.GroupAssigner
// interfaces using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
	scope  string
}

// NewSQLiteStorage creates a new SQLite storage instance.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
		scope:  DefaultScope,
	}, nil
}

// DefaultScope is the group scope used when the caller doesn't distinguish
// browser windows.
const DefaultScope = "default"

// SetScope selects the group scope for subsequent assignments. Group names
// are unique per scope, mirroring per-window tab groups.
func (s *SQLiteStorage) SetScope(scope string) {
	if scope == "" {
		scope = DefaultScope
	}
	s.scope = scope
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
