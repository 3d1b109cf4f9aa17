package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrLockTimeout is returned when exclusive access to a document could not
	// be obtained within the configured budget.
	ErrLockTimeout = errors.New("lock timeout")

	// ErrMissingTemplate is returned when reconciliation is requested without
	// a reference schema.
	ErrMissingTemplate = errors.New("missing template")
)

// ParseError reports a malformed document on disk.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s (line %d): %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// StorageError reports an I/O failure against a document path.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsParseError reports whether err carries a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsStorageError reports whether err carries a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
