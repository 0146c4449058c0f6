package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrIllegalTransition is returned when a requested operation does not match
	// the reservation's current status. No write is attempted after it.
	ErrIllegalTransition = errors.New("illegal reservation status transition")

	// ErrDuplicateRecord is returned when a uniqueness constraint rejects a write,
	// e.g. a second checkout record for the same reservation.
	ErrDuplicateRecord = errors.New("duplicate record")
)

// ValidationError reports caller-supplied data that fails a precondition.
// It is raised before any durable write.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(msgs)
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// PersistenceError wraps a storage failure with the operation and entity it hit.
type PersistenceError struct {
	Op     string
	Entity string
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
