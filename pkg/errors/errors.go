// Package errors provides structured error types for pivotgrid.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - Localized, user-facing messages for render-check failures
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Render-check codes (PIVOT_*) describe a structural mismatch between a
// result set and the pivot visualization. They are never retried; callers
// display them in place of the table. The remaining codes cover input,
// configuration, and internal failures of the outer surfaces.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNotAggregated, "pivot requires an aggregated query")
//	if errors.Is(err, errors.ErrCodeNotAggregated) {
//	    msg := errors.Localize(err, language.German)
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Render-check errors
	ErrCodeNotAggregated       Code = "PIVOT_NOT_AGGREGATED"
	ErrCodeDatabaseUnsupported Code = "PIVOT_DATABASE_UNSUPPORTED"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Resource errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// IsRenderCheck reports whether err is one of the render-check failures
// produced when a result set cannot be shown as a pivot table.
func IsRenderCheck(err error) bool {
	switch GetCode(err) {
	case ErrCodeNotAggregated, ErrCodeDatabaseUnsupported:
		return true
	}
	return false
}
