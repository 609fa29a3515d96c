package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means the write collided with existing state: a
	// duplicate (user, event) registration, or a status transition on a
	// registration that is no longer pending.
	ErrConflict = errors.New("conflicting state")
)

// BackendError wraps a failure of the configured remote backend. Reads
// and writes against an unreachable Postgres surface this instead of
// silently degrading to fallback data.
type BackendError struct {
	Op        string
	Err       error
	Retryable bool
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// NewBackendError wraps err as a retryable backend failure.
func NewBackendError(op string, err error) *BackendError {
	return &BackendError{Op: op, Err: err, Retryable: true}
}
