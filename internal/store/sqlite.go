// Package store persists analysis results in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements persistence for analysis contexts using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (or creates) the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath cannot be empty")
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate applies all pending schema migrations.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	var currentVersion int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}
	}

	return nil
}

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS analyses (
					id TEXT PRIMARY KEY,
					document_id TEXT NOT NULL,
					document_name TEXT NOT NULL,
					created_at DATETIME NOT NULL,
					overall_coverage REAL DEFAULT 0,
					approved_matches INTEGER DEFAULT 0,
					total_matches INTEGER DEFAULT 0
				)`,
				`CREATE INDEX idx_analyses_document ON analyses(document_id)`,

				`CREATE TABLE IF NOT EXISTS requirements (
					id TEXT PRIMARY KEY,
					analysis_id TEXT NOT NULL,
					description TEXT NOT NULL,
					category TEXT NOT NULL,
					priority TEXT NOT NULL,
					confidence REAL NOT NULL,
					source_page INTEGER DEFAULT 0,
					method TEXT NOT NULL,
					verified INTEGER DEFAULT 0,
					FOREIGN KEY (analysis_id) REFERENCES analyses(id)
				)`,
				`CREATE INDEX idx_requirements_analysis ON requirements(analysis_id)`,

				`CREATE TABLE IF NOT EXISTS risks (
					id TEXT PRIMARY KEY,
					analysis_id TEXT NOT NULL,
					clause TEXT NOT NULL,
					category TEXT NOT NULL,
					severity TEXT NOT NULL,
					confidence REAL NOT NULL,
					source_page INTEGER DEFAULT 0,
					method TEXT NOT NULL,
					recommendation TEXT,
					acknowledged INTEGER DEFAULT 0,
					FOREIGN KEY (analysis_id) REFERENCES analyses(id)
				)`,
				`CREATE INDEX idx_risks_analysis ON risks(analysis_id)`,

				`CREATE TABLE IF NOT EXISTS matches (
					analysis_id TEXT NOT NULL,
					requirement_id TEXT NOT NULL,
					requirement_text TEXT NOT NULL,
					requirement_category TEXT NOT NULL,
					entry_id TEXT NOT NULL,
					entry_name TEXT NOT NULL,
					entry_category TEXT NOT NULL,
					score REAL NOT NULL,
					rationale TEXT,
					approved INTEGER DEFAULT 0,
					PRIMARY KEY (analysis_id, requirement_id, entry_id),
					FOREIGN KEY (analysis_id) REFERENCES analyses(id)
				)`,
				`CREATE INDEX idx_matches_analysis ON matches(analysis_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}
