// Package apperrors provides domain error types mapped to HTTP status
// codes. Handlers translate them to JSON responses; anything that is not
// an AppError is reported as a generic 500 and never leaks internal
// detail to the client.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError carries an HTTP status code, a client-safe message, and an
// optional underlying error kept for server-side logging only.
type AppError struct {
	Code     int
	Message  string
	Internal error
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Internal)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

// NewValidation creates a 400 error for malformed or missing input.
func NewValidation(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// NewConflict creates a 409 error for uniqueness violations.
func NewConflict(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message}
}

// NewUnauthorized creates a 401 error for failed or missing credentials.
func NewUnauthorized(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

// NewForbidden creates a 403 error for invalid or expired tokens.
func NewForbidden(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message}
}

// NewNotFound creates a 404 error. Missing, foreign-owned, and
// soft-deleted resources are deliberately indistinguishable through it.
func NewNotFound(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

// NewInternal wraps an unexpected error as a 500. The wrapped error is
// for logs; the client sees only the generic message.
func NewInternal(err error) *AppError {
	return &AppError{
		Code:     http.StatusInternalServerError,
		Message:  "internal server error",
		Internal: err,
	}
}

// From returns err as an *AppError, wrapping unknown error types as a
// generic internal error.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal(err)
}
