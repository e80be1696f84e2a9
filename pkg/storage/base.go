// Package storage provides snapshot persistence for sigels.
//
// Persistence is a whole-structure snapshot: the owning sigel (vocabulary,
// pattern index, episodic store, learning state) serializes to one JSON
// document keyed by the sigel's name. There is no append-only log and no
// partial update; every Save rewrites the full document.
//
// All backends pass the sigel through the numeric sanitation pass before
// encoding, so a persisted snapshot is always a strict, re-loadable JSON
// document with no nulls from invalid floats.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sigmind/sigmem-go/pkg/sigel"
)

// ErrNotFound indicates that no snapshot exists for the requested name.
var ErrNotFound = errors.New("snapshot not found")

// SnapshotStore defines the interface for snapshot persistence backends.
//
// All implementations (file, SQLite, PostgreSQL, MySQL) must satisfy it.
// I/O and (de)serialization errors are surfaced to the caller as-is; there
// is no automatic retry.
type SnapshotStore interface {
	// Save persists the sigel, replacing any previous snapshot of the same
	// name. The sigel is sanitized in place before encoding.
	Save(ctx context.Context, sg *sigel.Sigel) error

	// Load retrieves the snapshot by name, returning ErrNotFound when no
	// snapshot exists.
	Load(ctx context.Context, name string) (*sigel.Sigel, error)

	// List returns the names of all persisted snapshots.
	List(ctx context.Context) ([]string, error)

	// Delete removes the snapshot by name. Deleting a missing snapshot is
	// not an error.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close() error
}

// Encode sanitizes the sigel and serializes it to JSON.
func Encode(sg *sigel.Sigel, logger zerolog.Logger) ([]byte, error) {
	sg.Sanitize(logger)
	data, err := json.Marshal(sg)
	if err != nil {
		return nil, fmt.Errorf("storage: encode %q: %w", sg.Name, err)
	}
	return data, nil
}

// Decode deserializes a snapshot document.
func Decode(data []byte) (*sigel.Sigel, error) {
	var sg sigel.Sigel
	if err := json.Unmarshal(data, &sg); err != nil {
		return nil, fmt.Errorf("storage: decode: %w", err)
	}
	return &sg, nil
}
