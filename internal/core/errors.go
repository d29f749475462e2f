// internal/core/errors.go
package core

import "fmt"

// Error represents a structured error with code and optional cause.
type Error struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is matching by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// WrapError creates a new error with the same code but with a cause.
func WrapError(base *Error, cause error) *Error {
	return &Error{
		Code:    base.Code,
		Message: base.Message,
		Cause:   cause,
	}
}

// Errorf wraps base with a formatted cause.
func Errorf(base *Error, format string, args ...any) *Error {
	return WrapError(base, fmt.Errorf(format, args...))
}

// Predefined errors
var (
	// Call errors
	ErrShapeMismatch     = &Error{Code: "SHAPE_MISMATCH", Message: "input sequences differ in length"}
	ErrComputationFailed = &Error{Code: "COMPUTATION_FAILED", Message: "indicator computation failed"}
	ErrInvalidInput      = &Error{Code: "INVALID_INPUT", Message: "invalid indicator input"}
	ErrUnknownFunction   = &Error{Code: "UNKNOWN_FUNCTION", Message: "unknown indicator function"}

	// Library errors
	ErrLifecycleFailed = &Error{Code: "LIFECYCLE_FAILED", Message: "native library lifecycle failed"}

	// Config errors
	ErrConfigInvalid = &Error{Code: "CONFIG_INVALID", Message: "configuration invalid"}
	ErrConfigMissing = &Error{Code: "CONFIG_MISSING", Message: "required configuration missing"}

	// Archive errors
	ErrArchiveFailed = &Error{Code: "ARCHIVE_FAILED", Message: "result archive failed"}
	ErrNotFound      = &Error{Code: "NOT_FOUND", Message: "resource not found"}

	// API errors
	ErrUnauthorized = &Error{Code: "UNAUTHORIZED", Message: "missing or invalid API key"}
	ErrRateLimited  = &Error{Code: "RATE_LIMITED", Message: "rate limit exceeded"}
)
