// Package file provides a filesystem implementation of the snapshot store.
//
// Each sigel is one pretty-printed JSON document under the base directory,
// named <name>.sigel.json. Writes go through a temporary file and rename so
// a crash never leaves a truncated snapshot behind.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sigmind/sigmem-go/pkg/sigel"
	"github.com/sigmind/sigmem-go/pkg/storage"
)

const snapshotSuffix = ".sigel.json"

// Store implements storage.SnapshotStore on a local directory.
type Store struct {
	dir    string
	logger zerolog.Logger
}

// NewStore creates a file store rooted at dir, creating it if needed.
func NewStore(dir string, logger zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file: create %q: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Save writes the sigel's snapshot atomically (temp file + rename).
func (s *Store) Save(_ context.Context, sg *sigel.Sigel) error {
	data, err := storage.Encode(sg, s.logger)
	if err != nil {
		return err
	}

	var pretty []byte
	pretty, err = indent(data)
	if err != nil {
		return fmt.Errorf("file: save %q: %w", sg.Name, err)
	}

	path := s.path(sg.Name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, pretty, 0o644); err != nil {
		return fmt.Errorf("file: save %q: %w", sg.Name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("file: save %q: %w", sg.Name, err)
	}
	return nil
}

// Load reads and decodes the named snapshot.
func (s *Store) Load(_ context.Context, name string) (*sigel.Sigel, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("file: load %q: %w", name, err)
	}
	return storage.Decode(data)
}

// List returns the names of all snapshots in the directory.
func (s *Store) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("file: list: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), snapshotSuffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), snapshotSuffix))
	}
	return names, nil
}

// Delete removes the named snapshot; missing snapshots are ignored.
func (s *Store) Delete(_ context.Context, name string) error {
	if err := os.Remove(s.path(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("file: delete %q: %w", name, err)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *Store) Close() error {
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+snapshotSuffix)
}

func indent(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
