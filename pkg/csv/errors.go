// Package csv provides error types for parsing and stringifying.
package csv

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a document or table argument is absent or
// does not have a usable shape. Malformed quoting is never an error.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes why an argument was rejected.
// It matches ErrInvalidInput with errors.Is.
type InputError struct {
	// Op is the operation that rejected the argument, e.g. "parse".
	Op string
	// Reason says what was wrong with it.
	Reason string
}

// Error returns a formatted error message.
func (e *InputError) Error() string {
	return fmt.Sprintf("csv: %s: %s: %s", e.Op, ErrInvalidInput, e.Reason)
}

// Unwrap returns ErrInvalidInput.
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func invalidInput(op, format string, args ...interface{}) error {
	return &InputError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "csv: invalid " + e.Field + ": " + e.Message
}
