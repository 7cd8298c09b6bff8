// Package common defines shared sentinel errors used across the bot layers.
// Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Provider-level errors. ErrLookupUnavailable covers network failures,
	// non-success statuses and malformed responses from the holiday provider;
	// an empty holiday list is not an error.
	ErrLookupUnavailable = errors.New("holiday lookup unavailable")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
)

// StorageError reports a failed store operation. It carries the name of the
// attempted operation so callers can log it without parsing the message.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err as a StorageError for operation op.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}
