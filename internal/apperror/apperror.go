// Package apperror defines the error kinds shared by repositories, services
// and handlers. Handlers translate kinds into HTTP statuses in one place.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrValidation     = errors.New("validation failed")
	ErrSelfFollow     = errors.New("cannot follow yourself")
	ErrConflict       = errors.New("conflict")
	ErrMalformedToken = errors.New("malformed token")
)

// Error carries a client-safe message next to its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return newError(ErrNotFound, format, args...)
}

func Unauthorized(format string, args ...any) error {
	return newError(ErrUnauthorized, format, args...)
}

func Forbidden(format string, args ...any) error {
	return newError(ErrForbidden, format, args...)
}

func Validation(format string, args ...any) error {
	return newError(ErrValidation, format, args...)
}

func Conflict(format string, args ...any) error {
	return newError(ErrConflict, format, args...)
}

func SelfFollow() error {
	return newError(ErrSelfFollow, "Cannot follow yourself")
}

func MalformedToken(format string, args ...any) error {
	return newError(ErrMalformedToken, format, args...)
}

// Message returns the client-safe message of err, or "" if err carries none.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ""
}
