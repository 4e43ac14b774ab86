package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrCourseNotFound = errors.New("course not found")

	// Validation errors
	ErrBadRequest    = errors.New("bad request")
	ErrInvalidUpload = errors.New("invalid upload")
	ErrEmptyCSV      = errors.New("no data found in file")

	// Storage errors
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
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

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewInvalidUploadError creates an upload validation error with a message
func NewInvalidUploadError(message string) error {
	return &CustomError{
		Err:     ErrInvalidUpload,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
