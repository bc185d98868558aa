// Package apperr defines the error taxonomy shared by all handlers and the
// mapping from error kind to HTTP status code.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	Unexpected Kind = iota
	Validation
	Unauthorized
	AccessDenied
	NotFound
	Upstream
)

type Error struct {
	Kind    Kind
	Message string // shown to the caller
	Err     error  // underlying cause, logged server-side
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches an underlying cause to a caller-facing message.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// Status maps an error to its HTTP status code. Unknown errors map to 500.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case Validation:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case AccessDenied:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the caller-facing message for an error.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}
