// Package core provides the main sigmem client: the external surface of the
// memory consolidation and pattern-learning subsystem.
package core

import (
	"errors"
	"fmt"
)

// Predefined errors for common failure scenarios.
var (
	// ErrNotFound indicates that the named sigel does not exist.
	ErrNotFound = errors.New("sigel not found")

	// ErrInvalidConfig indicates that the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoSnapshotStore indicates that a persistence call was made with no
	// snapshot store configured.
	ErrNoSnapshotStore = errors.New("no snapshot store configured")
)

// MemoryError wraps errors with operation context.
//
// Example:
//
//	err := &MemoryError{Op: "Consolidate", Err: ErrNotFound}
//	// Error() returns: "sigmem: Consolidate: sigel not found"
type MemoryError struct {
	// Op is the name of the operation that failed.
	Op string

	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message.
func (e *MemoryError) Error() string {
	return fmt.Sprintf("sigmem: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is / errors.As.
func (e *MemoryError) Unwrap() error {
	return e.Err
}

// NewMemoryError creates a MemoryError wrapping err, or nil if err is nil.
func NewMemoryError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &MemoryError{Op: op, Err: err}
}
