package store

import (
	"errors"
	"fmt"
)

// ErrHabitNotFound is returned when an operation names an unknown habit id.
var ErrHabitNotFound = errors.New("habit not found")

// ValidationError reports user input that was rejected before any mutation.
type ValidationError struct {
	Field   string // Input field that failed validation
	Message string // Human-readable reason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// StorageError reports a failed read or write of a backing file. When it is
// returned from a mutation, the mutation did not take effect in memory.
type StorageError struct {
	Op   string // load, save, append, rewrite
	Path string // Backing file
	Err  error  // Underlying error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
