// Package mysql provides a MySQL implementation of the snapshot store.
// Snapshots are stored as JSON documents keyed by sigel name.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"

	"github.com/sigmind/sigmem-go/pkg/sigel"
	"github.com/sigmind/sigmem-go/pkg/storage"
)

// Config contains configuration for creating a MySQL snapshot store.
type Config struct {
	// DSN is the MySQL connection string, e.g.
	// "user:pass@tcp(localhost:3306)/sigmem?parseTime=true".
	DSN string

	// TableName is the name of the table to use (default "sigels").
	TableName string
}

// Store implements storage.SnapshotStore using MySQL as the backend.
type Store struct {
	db     *sql.DB
	table  string
	logger zerolog.Logger
}

// NewStore creates a new MySQL snapshot store.
func NewStore(cfg *Config, logger zerolog.Logger) (*Store, error) {
	db, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("NewMySQLStore: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("NewMySQLStore: %w", err)
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
			name VARCHAR(255) PRIMARY KEY,
			data JSON NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
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
		INSERT INTO %s (name, data) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE data = VALUES(data)
	`, s.table)

	if _, err := s.db.ExecContext(ctx, query, sg.Name, string(data)); err != nil {
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
