package puzzle

import (
	"errors"
	"fmt"
)

// ErrorClass classifies puzzle errors for programmatic handling.
type ErrorClass string

const (
	// ErrorClassInvalidGrid indicates a malformed input grid: wrong length,
	// missing or duplicated blank, or a non-permutation of 0..N.
	ErrorClassInvalidGrid ErrorClass = "invalid_grid"

	// ErrorClassBudget indicates a caller-imposed search ceiling was
	// exhausted before a goal was found.
	ErrorClassBudget ErrorClass = "budget"
)

// Error is a classified puzzle error with optional underlying cause.
type Error struct {
	// Class is the error classification.
	Class ErrorClass `json:"class"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Err is the underlying error, if any.
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", e.Class, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Class, e.Message)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of the same class.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Class == t.Class
}

// NewInvalidGridError creates a new invalid-grid error.
func NewInvalidGridError(message string, err error) *Error {
	return &Error{Class: ErrorClassInvalidGrid, Message: message, Err: err}
}

// NewBudgetError creates a new budget-exhausted error.
func NewBudgetError(message string, err error) *Error {
	return &Error{Class: ErrorClassBudget, Message: message, Err: err}
}

// IsInvalidGrid reports whether err is an invalid-grid error.
func IsInvalidGrid(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Class == ErrorClassInvalidGrid
}
