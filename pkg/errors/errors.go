// Package errors defines plinth's structured errors and the process exit
// contract derived from them.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure class with a stable name.
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration and manifest errors
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrTemplateFetch  ErrorCode = "TEMPLATE_FETCH"

	// Materialization errors
	ErrPathSubstitution ErrorCode = "PATH_SUBSTITUTION"
	ErrFileRead         ErrorCode = "FILE_READ"
	ErrFileWrite        ErrorCode = "FILE_WRITE"
	ErrDirCreate        ErrorCode = "DIR_CREATE"
	ErrTargetExists     ErrorCode = "TARGET_EXISTS"

	// Version control errors
	ErrVCSSpawn ErrorCode = "VCS_SPAWN"
)

// Exit codes are the stable sentinels of the process boundary contract.
// Calling scripts branch on these values.
const (
	ExitSuccess      = 0 // normal success
	ExitError        = 1 // generic runtime error
	ExitNotFound     = 2 // resource not found or parse failure
	ExitWriteFailure = 3 // write or render failure
	ExitConflict     = 4 // target already exists and --force unset
	ExitSpawnFailure = 5 // version control tool could not be run
)

// PlinthError is a structured error with a code and optional details.
type PlinthError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface.
func (e *PlinthError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface.
func (e *PlinthError) Unwrap() error {
	return e.Wrapped
}

// Is matches against other PlinthErrors by code.
func (e *PlinthError) Is(target error) bool {
	var targetErr *PlinthError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PlinthError with the given code and message.
func New(code ErrorCode, message string) *PlinthError {
	return &PlinthError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PlinthError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *PlinthError {
	return &PlinthError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PlinthError.
func Wrap(err error, code ErrorCode, message string) *PlinthError {
	if err == nil {
		return nil
	}
	return &PlinthError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PlinthError {
	if err == nil {
		return nil
	}
	return &PlinthError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error and returns it for chaining.
func (e *PlinthError) WithDetail(key string, value interface{}) *PlinthError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error carries a specific error code.
func IsErrorCode(err error, code ErrorCode) bool {
	var plinthErr *PlinthError
	if errors.As(err, &plinthErr) {
		return plinthErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if it
// is not a PlinthError.
func GetErrorCode(err error) ErrorCode {
	var plinthErr *PlinthError
	if errors.As(err, &plinthErr) {
		return plinthErr.Code
	}
	return ErrUnknown
}

// ExitCode maps an error to the documented exit sentinel for its failure
// class. Untyped errors map to ExitError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch GetErrorCode(err) {
	case ErrConfigNotFound, ErrConfigParse, ErrTemplateFetch, ErrFileRead:
		return ExitNotFound
	case ErrPathSubstitution, ErrFileWrite, ErrDirCreate:
		return ExitWriteFailure
	case ErrTargetExists:
		return ExitConflict
	case ErrVCSSpawn:
		return ExitSpawnFailure
	default:
		return ExitError
	}
}
