package errors

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned when email or password is incorrect.
// Deliberately generic so it does not leak which field was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ValidationError carries the user-facing messages for malformed or
// out-of-range input. No mutation happens when one is returned.
type ValidationError struct {
	Messages []string
}

// NewValidation creates a validation error from one or more messages.
func NewValidation(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// ReferentialIntegrityError is returned when a delete is blocked by
// dependent rows.
type ReferentialIntegrityError struct {
	Message string
}

func (e *ReferentialIntegrityError) Error() string {
	return e.Message
}

// StoreUnavailableError is returned when the schema or connection is not
// ready. Listings degrade to empty results instead of failing the page.
type StoreUnavailableError struct {
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return "database not ready: " + e.Err.Error() + " (run the server once to migrate the schema)"
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error    string   `json:"error"`
	Code     string   `json:"code"`
	Messages []string `json:"messages,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Messages   []string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:    e.Message,
		Code:     e.Code,
		Messages: e.Messages,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var validation *ValidationError
	var referential *ReferentialIntegrityError
	var unavailable *StoreUnavailableError

	switch {
	case errors.As(err, &validation):
		httpErr := NewHTTPError(http.StatusBadRequest, validation.Error(), "VALIDATION_FAILED")
		httpErr.Messages = validation.Messages
		return httpErr
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.As(err, &referential):
		return NewHTTPError(http.StatusConflict, referential.Message, "DELETE_RESTRICTED")
	case errors.As(err, &unavailable):
		return NewHTTPError(http.StatusServiceUnavailable, unavailable.Error(), "STORE_UNAVAILABLE")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NewHTTPError(http.StatusNotFound, "record not found", "NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
