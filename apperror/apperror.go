// Package apperror defines the application error taxonomy and its mapping to
// HTTP status codes. Handlers translate every AppError into the JSON envelope;
// underlying errors are kept for logging and never leak to clients.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorType int

const (
	InternalError ErrorType = iota
	// ValidationError covers missing or malformed input
	ValidationError
	// AuthError covers missing, invalid or expired credentials
	AuthError
	// ForbiddenError covers a resolved identity lacking the required role
	ForbiddenError
	NotFoundError
	// ConflictError covers duplicate unique fields and duplicate favorites
	ConflictError
	// UpstreamError covers image-host and store unavailability
	UpstreamError
)

type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error type to an HTTP status. Conflicts respond with
// 400 rather than 409 to keep duplicate-field bodies byte-compatible with the
// public API contract.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case ValidationError, ConflictError:
		return http.StatusBadRequest
	case AuthError:
		return http.StatusUnauthorized
	case ForbiddenError:
		return http.StatusForbidden
	case NotFoundError:
		return http.StatusNotFound
	case UpstreamError, InternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func New(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{Type: errType, Message: message, Err: underlying}
}

func NewValidationError(message string) *AppError {
	return New(ValidationError, message, nil)
}

func NewAuthError(message string) *AppError {
	return New(AuthError, message, nil)
}

func NewForbiddenError(message string) *AppError {
	return New(ForbiddenError, message, nil)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message, nil)
}

func NewConflictError(message string) *AppError {
	return New(ConflictError, message, nil)
}

func NewUpstreamError(message string, underlying error) *AppError {
	return New(UpstreamError, message, underlying)
}

func NewInternalError(message string, underlying error) *AppError {
	return New(InternalError, message, underlying)
}

// FromError attempts to convert a generic error to an *AppError.
func FromError(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func IsConflict(err error) bool {
	ae, ok := FromError(err)
	return ok && ae.Type == ConflictError
}

func IsNotFound(err error) bool {
	ae, ok := FromError(err)
	return ok && ae.Type == NotFoundError
}
