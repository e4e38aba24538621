// Package errors defines error types and utilities for esb
package errors

import (
	"errors"
	"fmt"
)

// Common errors that can occur at the edges of the builder. The builder
// core itself never fails; only serialization and typed-request
// construction return errors.
var (
	// ErrNilDocument is returned when a nil document is rendered
	ErrNilDocument = errors.New("nil document")

	// ErrEncode is returned when a document cannot be encoded as JSON
	ErrEncode = errors.New("document encode failed")

	// ErrRequestDecode is returned when a built document cannot be decoded
	// into the typed search request
	ErrRequestDecode = errors.New("request decode failed")
)

// BuilderError represents a detailed error with operation context
type BuilderError struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

// Error implements the error interface
func (e *BuilderError) Error() string {
	return fmt.Sprintf("esb: %s operation failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *BuilderError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target error
func (e *BuilderError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewError creates a new BuilderError
func NewError(op string, err error) *BuilderError {
	return &BuilderError{
		Op:  op,
		Err: err,
	}
}

// IsEncode checks if an error indicates a JSON encoding failure
func IsEncode(err error) bool {
	return errors.Is(err, ErrEncode)
}

// IsRequestDecode checks if an error indicates a typed request decoding failure
func IsRequestDecode(err error) bool {
	return errors.Is(err, ErrRequestDecode)
}
