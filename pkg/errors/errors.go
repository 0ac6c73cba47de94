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

	// Preparation errors
	ErrToolMissing     ErrorCode = "TOOL_MISSING"
	ErrArtifactMissing ErrorCode = "ARTIFACT_MISSING"

	// Bundle errors
	ErrMarkerMissing ErrorCode = "MARKER_MISSING"

	// Registry errors
	ErrRegistryLoad    ErrorCode = "REGISTRY_LOAD"
	ErrRegistryInvalid ErrorCode = "REGISTRY_INVALID"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// EmbedError represents a structured error with code and details
type EmbedError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *EmbedError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *EmbedError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *EmbedError) Is(target error) bool {
	var targetErr *EmbedError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new EmbedError with the given code and message
func New(code ErrorCode, message string) *EmbedError {
	return &EmbedError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new EmbedError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *EmbedError {
	return &EmbedError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an EmbedError
func Wrap(err error, code ErrorCode, message string) *EmbedError {
	if err == nil {
		return nil
	}
	return &EmbedError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *EmbedError {
	if err == nil {
		return nil
	}
	return &EmbedError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *EmbedError) WithDetail(key string, value interface{}) *EmbedError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var embedErr *EmbedError
	if errors.As(err, &embedErr) {
		return embedErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an EmbedError
func GetErrorCode(err error) ErrorCode {
	var embedErr *EmbedError
	if errors.As(err, &embedErr) {
		return embedErr.Code
	}
	return ErrUnknown
}
