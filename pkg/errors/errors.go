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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// External tool errors
	ErrExternalTool ErrorCode = "EXTERNAL_TOOL"

	// Registry errors
	ErrMalformedRecord  ErrorCode = "MALFORMED_RECORD"
	ErrRegistryConflict ErrorCode = "REGISTRY_CONFLICT"

	// Manifest errors
	ErrMalformedManifest     ErrorCode = "MALFORMED_MANIFEST"
	ErrMalformedManifestPath ErrorCode = "MALFORMED_MANIFEST_PATH"
	ErrMalformedFMRI         ErrorCode = "MALFORMED_FMRI"

	// Document scanner errors
	ErrParseState ErrorCode = "PARSE_STATE"
	ErrEncoding   ErrorCode = "ENCODING"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
)

// ManvetError represents a structured error with code and details
type ManvetError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ManvetError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ManvetError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ManvetError) Is(target error) bool {
	var targetErr *ManvetError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ManvetError with the given code and message
func New(code ErrorCode, message string) *ManvetError {
	return &ManvetError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ManvetError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ManvetError {
	return &ManvetError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ManvetError
func Wrap(err error, code ErrorCode, message string) *ManvetError {
	if err == nil {
		return nil
	}
	return &ManvetError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ManvetError {
	if err == nil {
		return nil
	}
	return &ManvetError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ManvetError) WithDetail(key string, value interface{}) *ManvetError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mErr *ManvetError
	if errors.As(err, &mErr) {
		return mErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ManvetError
func GetErrorCode(err error) ErrorCode {
	var mErr *ManvetError
	if errors.As(err, &mErr) {
		return mErr.Code
	}
	return ErrUnknown
}
