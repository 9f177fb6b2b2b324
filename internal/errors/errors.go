package errors

import (
	"fmt"
	"strings"

	"emperror.dev/errors"
)

// Error codes for categorizing errors
const (
	ErrConfig     = "CONFIG"
	ErrResolution = "RESOLUTION"
	ErrRefresh    = "REFRESH"
	ErrRead       = "READ"
	ErrCapacity   = "CAPACITY"
	ErrRender     = "RENDER"
	ErrTerminal   = "TERMINAL"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message under the given code.
func Wrap(err error, code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
// Only the outermost structured error in the chain is considered.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var avErr *Error
	if errors.As(err, &avErr) {
		return avErr.Code == code
	}
	return false
}

// Code returns the code of the outermost structured error, or "" if there is none.
func Code(err error) string {
	var avErr *Error
	if errors.As(err, &avErr) {
		return avErr.Code
	}
	return ""
}
