// Package sqlite provides a SQLite implementation of the snapshot store.
//
// SQLite is a lightweight, file-based database suitable for local
// development and single-host deployments. Snapshots are stored as JSON
// documents in a TEXT column keyed by sigel name.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/sigmind/sigmem-go/pkg/sigel"
	"github.com/sigmind/sigmem-go/pkg/storage"
)

// Config contains configuration for creating a SQLite snapshot store.
type Config struct {
	// DBPath is the path to the SQLite database file.
	DBPath string

	// TableName is the name of the table to use (default "sigels").
	TableName string
}

// Store implements storage.SnapshotStore using SQLite as the backend.
type Store struct {
	db     *sql.DB
	table  string
	logger zerolog.Logger
}

// NewStore creates a new SQLite snapshot store.
func NewStore(cfg *Config, logger zerolog.Logger) (*Store, error) {
	dbDir := filepath.Dir(cfg.DBPath)
	if dbDir != "" && dbDir != "." {
		if err := os.MkdirAll(dbDir, 0o755); err != nil {
			return nil, fmt.Errorf("NewSQLiteStore: failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_foreign_keys=1&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("NewSQLiteStore: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("NewSQLiteStore: %w", err)
	}

	table := cfg.TableName
	if table == "" {
		table = "sigels"
	}

	s := &Store{db: db, table: table, logger: logger}
	if err := s.initTables(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) initTables(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			name TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`, s.table)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("initTables: %w", err)
	}
	return nil
}

// Save upserts the sigel's snapshot document.
func (s *Store) Save(ctx context.Context, sg *sigel.Sigel) error {
	data, err := storage.Encode(sg, s.logger)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (name, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, s.table)

	if _, err := s.db.ExecContext(ctx, query, sg.Name, string(data), time.Now()); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

// Load retrieves the snapshot by name.
func (s *Store) Load(ctx context.Context, name string) (*sigel.Sigel, error) {
	query := fmt.Sprintf(`SELECT data FROM %s WHERE name = ?`, s.table)

	var data string
	err := s.db.QueryRowContext(ctx, query, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	return storage.Decode([]byte(data))
}

// List returns the names of all persisted snapshots.
func (s *Store) List(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf(`SELECT name FROM %s ORDER BY name`, s.table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return names, nil
}

// Delete removes the snapshot by name; missing rows are ignored.
func (s *Store) Delete(ctx context.Context, name string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE name = ?`, s.table)
	if _, err := s.db.ExecContext(ctx, query, name); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
