// Package apperror defines the typed failures raised by the application
// layer. Handlers branch on the error kind to decide between a user-facing
// message and a generic internal-error response.
package apperror

import (
	"errors"
	"net/http"
)

// Stable machine-readable codes carried by every AppError.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeAuthentication = "AUTHENTICATION_ERROR"
	CodeNotFound       = "NOT_FOUND_ERROR"
)

// AppError is the base type for all domain errors. StatusCode is a
// suggestion for the transport layer, not a guarantee about how the error
// is surfaced.
type AppError struct {
	Message    string
	Code       string
	StatusCode int
}

func (e *AppError) Error() string {
	return e.Message
}

// NewValidationError reports malformed or missing input. Validation errors
// never touch storage.
func NewValidationError(message string) *AppError {
	return &AppError{Message: message, Code: CodeValidation, StatusCode: http.StatusBadRequest}
}

// NewAuthenticationError reports a credential or identity rule violation.
func NewAuthenticationError(message string) *AppError {
	if message == "" {
		message = "Authentication failed"
	}
	return &AppError{Message: message, Code: CodeAuthentication, StatusCode: http.StatusUnauthorized}
}

// NewNotFoundError reports that a resource is absent or not owned by the
// caller. The two cases are deliberately indistinguishable.
func NewNotFoundError(resource string) *AppError {
	return &AppError{Message: resource + " not found", Code: CodeNotFound, StatusCode: http.StatusNotFound}
}

// FromError extracts an *AppError from err's chain, if present.
func FromError(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func IsValidation(err error) bool {
	ae, ok := FromError(err)
	return ok && ae.Code == CodeValidation
}

func IsAuthentication(err error) bool {
	ae, ok := FromError(err)
	return ok && ae.Code == CodeAuthentication
}

func IsNotFound(err error) bool {
	ae, ok := FromError(err)
	return ok && ae.Code == CodeNotFound
}
