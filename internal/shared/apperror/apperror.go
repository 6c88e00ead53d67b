// Package apperror defines the error taxonomy shared by every feature.
// Usecases return these values unchanged; the HTTP boundary maps Kind to a status code.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the transport layer.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindRateLimited
	KindNotImplemented
	KindStore
)

// String returns a lower-case name for logging.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindRateLimited:
		return "rate_limited"
	case KindNotImplemented:
		return "not_implemented"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

const (
	// MessageServerError is the client-facing text for store failures.
	MessageServerError = "an error occurred on the server"
	// MessageUnknown is the client-facing text for unclassified failures.
	MessageUnknown = "an unknown error occurred"

	CodeStore   = "SERVER_ERROR"
	CodeUnknown = "UNKNOWN_SERVER_ERROR"
)

// Error is a classified application error.
// Message is safe to show to clients; Err carries the underlying cause for logs.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

// New creates a sentinel-style error without a cause.
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is matches on Code so that a wrapped copy of a sentinel still satisfies errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// Wrap returns a copy of e carrying cause.
func (e *Error) Wrap(cause error) *Error {
	return &Error{Kind: e.Kind, Code: e.Code, Message: e.Message, Err: cause}
}

// ErrStore is the sentinel for storage failures. Use Store to attach the cause.
var ErrStore = New(KindStore, CodeStore, MessageServerError)

// Store wraps a storage failure. The cause is kept for logging only.
func Store(err error) error {
	if err == nil {
		return nil
	}
	return ErrStore.Wrap(err)
}

// KindOf reports the Kind of err, or KindUnknown when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
