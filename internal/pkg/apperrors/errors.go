package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Storage errors
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Course errors
var (
	ErrCourseNotFound = errors.New("course not found")
)

// Schedule errors
var (
	ErrScheduleItemNotFound = errors.New("schedule item not found")
)

// Enrollment errors
var (
	ErrAlreadyEnrolled = errors.New("student already enrolled in course")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewValidationError creates a new custom error for invalid input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewStoreUnavailableError wraps a storage-layer failure so callers can tell
// "the write failed" apart from "the thing does not exist".
func NewStoreUnavailableError(cause error) error {
	return &CustomError{
		Err:     ErrStoreUnavailable,
		Message: "attendance store unavailable",
		Cause:   cause,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Cause   error
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
