package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ValidationFailed indicates option validation failed.
	ValidationFailed AppErrorType = iota
	// FetchFailed indicates the repository metadata query failed.
	FetchFailed
	// WriteFailed indicates the report could not be written.
	WriteFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// NewFetchError creates a metadata fetch error.
func NewFetchError(message string, cause error) *AppError {
	return NewAppError(FetchFailed, message, cause)
}

// NewWriteError creates a report write error.
func NewWriteError(message string, cause error) *AppError {
	return NewAppError(WriteFailed, message, cause)
}
