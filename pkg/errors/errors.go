package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Pack errors
	ErrPackNotFound ErrorCode = "PACK_NOT_FOUND"
	ErrPackInvalid  ErrorCode = "PACK_INVALID"
	ErrPackEncode   ErrorCode = "PACK_ENCODE"

	// Launcher errors
	ErrEnvironmentMissing ErrorCode = "ENV_MISSING"
	ErrApplicationFailure ErrorCode = "APP_FAILURE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// DetailExitCode is the detail key holding a child process exit status
const DetailExitCode = "exitCode"

// PacksmithError represents a structured error with code and details
type PacksmithError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PacksmithError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PacksmithError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PacksmithError) Is(target error) bool {
	var targetErr *PacksmithError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PacksmithError with the given code and message
func New(code ErrorCode, message string) *PacksmithError {
	return &PacksmithError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PacksmithError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PacksmithError {
	return &PacksmithError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PacksmithError
func Wrap(err error, code ErrorCode, message string) *PacksmithError {
	if err == nil {
		return nil
	}
	return &PacksmithError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PacksmithError {
	if err == nil {
		return nil
	}
	return &PacksmithError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PacksmithError) WithDetail(key string, value interface{}) *PacksmithError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var psErr *PacksmithError
	if errors.As(err, &psErr) {
		return psErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PacksmithError
func GetErrorCode(err error) ErrorCode {
	var psErr *PacksmithError
	if errors.As(err, &psErr) {
		return psErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PacksmithError
func GetErrorDetails(err error) map[string]interface{} {
	var psErr *PacksmithError
	if errors.As(err, &psErr) {
		return psErr.Details
	}
	return nil
}

// ExitCode maps an error to a process exit status.
// Application failures propagate the child's own status; any other error is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if IsErrorCode(err, ErrApplicationFailure) {
		if code, ok := GetErrorDetails(err)[DetailExitCode].(int); ok && code > 0 {
			return code
		}
	}
	return 1
}
