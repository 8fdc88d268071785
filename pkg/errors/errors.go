// Package errors provides structured error types for the timegrid engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the engine packages and CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes distinguish caller bugs (INVALID_*, MISSING_*) from
// unexpected internal conditions (INTERNAL_ERROR). Infeasible layout
// outcomes (no gridline multiple fits, unresolved truncation, fatal
// label collision) are NOT errors; they travel as ordinary result
// values on the layout result.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidUnit, "duration %s is not a round unit", d)
//	if errors.Is(err, errors.ErrCodeInvalidUnit) {
//	    // Handle caller bug
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMissingFont, origErr, "parse embedded font")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors (caller bugs per the engine contract)
	ErrCodeInvalidUnit     Code = "INVALID_UNIT"
	ErrCodeInvalidDuration Code = "INVALID_DURATION"
	ErrCodeInvalidOptions  Code = "INVALID_OPTIONS"
	ErrCodeInvalidRange    Code = "INVALID_RANGE"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"

	// Mid-computation assertion failures
	ErrCodeUnmappable Code = "UNMAPPABLE_COORDINATE"

	// Resource errors
	ErrCodeMissingFont Code = "MISSING_FONT"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
