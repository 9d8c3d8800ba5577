// Package domain holds the error taxonomy shared by all layers of the
// booking service. Handlers map these types onto HTTP status codes; no
// layer converts one kind into another.
package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing or malformed field. It is always
// raised before any store access.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NotFoundError signals a normal missing-lookup outcome, distinct from an
// I/O failure.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

// NewNotFoundError creates a NotFoundError for the given entity and key.
func NewNotFoundError(entity, key string) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: key}
}

// StoreError wraps a connectivity, permission, or underlying I/O fault of
// the backing store. It is surfaced to the caller and never retried.
type StoreError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// NewStoreError wraps err as a StoreError for the given operation and path.
func NewStoreError(op, path string, err error) *StoreError {
	return &StoreError{Op: op, Path: path, Err: err}
}

// SerializationError reports a document that could not be encoded or
// decoded. Bulk listings skip and log it; direct single-record reads
// surface it to the caller.
type SerializationError struct {
	Path string
	Err  error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialize %s: %v", e.Path, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// NewSerializationError wraps err as a SerializationError for the given path.
func NewSerializationError(path string, err error) *SerializationError {
	return &SerializationError{Path: path, Err: err}
}

// ConflictError reports a booking window that overlaps an existing one.
// Only the guarded create path produces it.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NewConflictError creates a ConflictError with the given message.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
