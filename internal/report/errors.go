package report

import "fmt"

// WriteError represents a local filesystem failure while writing a
// report.
type WriteError struct {
	// Path is the report destination path.
	Path string
	// Message is the human-readable error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("report write error for '%s': %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("report write error for '%s': %s", e.Path, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// NewWriteError creates a new WriteError.
func NewWriteError(path, message string, cause error) *WriteError {
	return &WriteError{
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}
