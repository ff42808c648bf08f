package platformerrors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	ErrorTypeNotFound      ErrorType = "NOT_FOUND"
	ErrorTypeValidation    ErrorType = "VALIDATION"
	ErrorTypeConflict      ErrorType = "CONFLICT"
	ErrorTypeInternal      ErrorType = "INTERNAL"
	ErrorTypeExternal      ErrorType = "EXTERNAL"
	ErrorTypeDatabaseError ErrorType = "DATABASE_ERROR"
)

// Layer represents the application layer where the error occurred
type Layer string

const (
	LayerRepository Layer = "repository"
	LayerDomain     Layer = "domain"
	LayerHandler    Layer = "handler"
)

// PlatformError represents an error with layer and type metadata
type PlatformError struct {
	Type      ErrorType
	Message   string
	Err       error
	Layer     Layer
	Timestamp time.Time
}

// Error implements the error interface
func (e *PlatformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s][%s] %s: %v", e.Layer, e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s][%s] %s", e.Layer, e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *PlatformError) Unwrap() error {
	return e.Err
}

// NewError creates a new PlatformError
func NewError(layer Layer, errorType ErrorType, message string, err error) *PlatformError {
	return &PlatformError{
		Type:      errorType,
		Message:   message,
		Err:       err,
		Layer:     layer,
		Timestamp: time.Now().UTC(),
	}
}

// IsErrorType checks if an error is a PlatformError with the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if err == nil {
		return false
	}
	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		return platformErr.Type == errorType
	}
	return false
}

// ErrorTypeToHTTPStatus maps error types to HTTP status codes
func ErrorTypeToHTTPStatus(errorType ErrorType) int {
	switch errorType {
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeConflict:
		return http.StatusConflict
	case ErrorTypeExternal:
		return http.StatusBadGateway
	case ErrorTypeDatabaseError, ErrorTypeInternal:
		fallthrough
	default:
		return http.StatusInternalServerError
	}
}

// HTTPStatus resolves the status code for any error, defaulting to 500.
func HTTPStatus(err error) int {
	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		return ErrorTypeToHTTPStatus(platformErr.Type)
	}
	return http.StatusInternalServerError
}
