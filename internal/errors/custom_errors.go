package errors

import (
	"fmt"
	"net/http"
)

// AppError is a structured application error carrying both the technical
// detail and what the user should see.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.OriginalError != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.OriginalError)
	}
	return e.UserMessage
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// NewAppError creates a new AppError instance.
func NewAppError(technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// Common error codes
const (
	ErrCodePropertyNotFound   = "PROPERTY_NOT_FOUND"
	ErrCodeRealtorRequired    = "REALTOR_REQUIRED"
	ErrCodeNotListingOwner    = "NOT_LISTING_OWNER"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeValidation         = "VALIDATION_FAILED"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// Sentinel errors the handlers branch on: not-found renders a hard 404,
// the two authorization denials redirect with a notice instead of an HTTP
// error status.
var (
	ErrPropertyNotFound   = NewAppError("property not found", MsgPropertyNotFound, ErrCodePropertyNotFound, http.StatusNotFound, nil)
	ErrRealtorRequired    = NewAppError("acting account has no realtor profile", MsgRealtorRequired, ErrCodeRealtorRequired, http.StatusForbidden, nil)
	ErrNotListingOwner    = NewAppError("property owned by another realtor", MsgNotListingOwner, ErrCodeNotListingOwner, http.StatusForbidden, nil)
	ErrInvalidCredentials = NewAppError("credentials did not match", MsgInvalidCredentials, ErrCodeInvalidCredentials, http.StatusUnauthorized, nil)
)

// ValidationError is a field-level form error: nothing is persisted when one
// is returned, and each message is surfaced inline on the originating field.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// Add records a message for a field, keeping the first message when a field
// fails more than one check.
func (e *ValidationError) Add(field, message string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
}

func (e *ValidationError) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

// Err returns the error when any field failed, nil otherwise.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
