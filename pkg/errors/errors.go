// Package errors provides structured error types for cargoimport.
//
// Every failure the import can hit is fatal, but callers still need to tell
// the classes apart: a broken glob pattern is a configuration problem, a bad
// JSON line points at a corrupt index mirror, and a rejected wildcard range
// points at the rule table. Each class has its own [Code].
//
// # Error Codes
//
//   - DISCOVERY: the index pattern cannot be enumerated
//   - RECORD_PARSE: an index file cannot be read or a line is not valid JSON
//   - VERSION_GRAMMAR: a wildcard requirement is not a valid semver range
//   - INVALID_CONFIG: a config file or flag value is unusable
//   - ENCODE: the registry could not be serialized
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDiscovery, "bad pattern %q", pattern)
//	if errors.Is(err, errors.ErrCodeDiscovery) {
//	    // ...
//	}
//
//	err = errors.Wrap(errors.ErrCodeRecordParse, cause, "%s:%d", path, line)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the import pipeline.
const (
	ErrCodeDiscovery      Code = "DISCOVERY"
	ErrCodeRecordParse    Code = "RECORD_PARSE"
	ErrCodeVersionGrammar Code = "VERSION_GRAMMAR"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeEncode         Code = "ENCODE"
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
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix, followed
// by the cause if there is one.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s", e.Message, UserMessage(e.Cause))
		}
		return e.Message
	}
	return err.Error()
}
