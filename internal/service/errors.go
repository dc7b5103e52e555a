package service

import (
	"errors"

	"gym-registration-api/internal/store"
)

// Kind is the outcome category both front ends translate into their own
// vocabulary: HTTP status codes on REST, Client/Server fault codes on SOAP.
type Kind int

const (
	KindInvalid Kind = iota + 1
	KindUnauthenticated
	KindNotFound
	KindConflict
	KindInternal
)

// Error carries a kind, a message safe to show the caller, and optionally the
// internal cause (logged server-side, never serialized).
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.cause }

func Invalid(msg string) *Error         { return &Error{Kind: KindInvalid, Message: msg} }
func Unauthenticated(msg string) *Error { return &Error{Kind: KindUnauthenticated, Message: msg} }
func NotFound(msg string) *Error        { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error        { return &Error{Kind: KindConflict, Message: msg} }

func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", cause: cause}
}

// KindOf classifies any error; non-service errors count as internal.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// storeErr translates store sentinels; notFound and conflict are the
// caller-facing messages for the two recognized cases.
func storeErr(err error, notFound, conflict string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return NotFound(notFound)
	case errors.Is(err, store.ErrDuplicate):
		return Conflict(conflict)
	default:
		return Internal(err)
	}
}
