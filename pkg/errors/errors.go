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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Manifest errors
	ErrManifestMissing ErrorCode = "MANIFEST_MISSING"
	ErrManifestParse   ErrorCode = "MANIFEST_PARSE"
	ErrOverlayInvalid  ErrorCode = "OVERLAY_INVALID"

	// Resolution errors
	ErrPackNotFound ErrorCode = "PACK_NOT_FOUND"

	// Generated file errors
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"
)

// DevbaseError represents a structured error with code and details
type DevbaseError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DevbaseError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DevbaseError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DevbaseError) Is(target error) bool {
	var targetErr *DevbaseError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DevbaseError with the given code and message
func New(code ErrorCode, message string) *DevbaseError {
	return &DevbaseError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DevbaseError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DevbaseError {
	return &DevbaseError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DevbaseError
func Wrap(err error, code ErrorCode, message string) *DevbaseError {
	if err == nil {
		return nil
	}
	return &DevbaseError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DevbaseError {
	if err == nil {
		return nil
	}
	return &DevbaseError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DevbaseError) WithDetail(key string, value interface{}) *DevbaseError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var devbaseErr *DevbaseError
	if errors.As(err, &devbaseErr) {
		return devbaseErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DevbaseError
func GetErrorCode(err error) ErrorCode {
	var devbaseErr *DevbaseError
	if errors.As(err, &devbaseErr) {
		return devbaseErr.Code
	}
	return ErrUnknown
}
