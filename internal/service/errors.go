package service

import (
	"errors"
	"fmt"
	"strings"
)

// --- Error Definitions ---
var (
	ErrValidationFailed         = errors.New("validation failed")
	ErrCompletedWorkoutNotFound = errors.New("workout not found")
	ErrArchiveFailed            = errors.New("failed to archive completed workouts")
)

// FieldError describes one rejected field of a request.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every field problem found in a request.
// It matches ErrValidationFailed with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// errOrNil returns nil when nothing was collected, so callers can
// `return v.errOrNil()` without a typed-nil interface.
func (e *ValidationError) errOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
