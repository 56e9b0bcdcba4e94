// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

// Package errutil provides the error taxonomy shared by every service and the
// helpers used to log and assert on it.
package errutil

import (
	"errors"

	"github.com/samber/oops"
)

// Kind classifies an error for the edge handler. The set is closed: every
// error either carries one of these kinds or is treated as KindInternal.
type Kind uint8

// Error kinds.
const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindTooManyRequests
)

var kindNames = [...]string{
	KindInternal:        "internal",
	KindBadRequest:      "bad_request",
	KindUnauthorized:    "unauthorized",
	KindForbidden:       "forbidden",
	KindNotFound:        "not_found",
	KindConflict:        "conflict",
	KindTooManyRequests: "too_many_requests",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Operational reports whether the error message is safe to show to callers.
func (k Kind) Operational() bool {
	return k != KindInternal
}

// Error is the tagged error value returned across service boundaries.
type Error struct {
	Kind      Kind
	Code      string
	Message   string
	Field     string
	Retryable bool

	cause error
}

// New creates an Error of the given kind. The returned error wraps an oops
// error carrying the code so that LogError emits a stack and context.
func New(kind Kind, code, message string) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: message,
		cause:   oops.Code(code).Errorf("%s", message),
	}
}

// BadRequest creates a KindBadRequest error.
func BadRequest(code, message string) *Error { return New(KindBadRequest, code, message) }

// Unauthorized creates a KindUnauthorized error.
func Unauthorized(code, message string) *Error { return New(KindUnauthorized, code, message) }

// Forbidden creates a KindForbidden error.
func Forbidden(code, message string) *Error { return New(KindForbidden, code, message) }

// NotFound creates a KindNotFound error.
func NotFound(code, message string) *Error { return New(KindNotFound, code, message) }

// Conflict creates a KindConflict error naming the offending field.
func Conflict(code, message, field string) *Error {
	e := New(KindConflict, code, message)
	e.Field = field
	return e
}

// TooManyRequests creates a retryable KindTooManyRequests error.
func TooManyRequests(code, message string) *Error {
	e := New(KindTooManyRequests, code, message)
	e.Retryable = true
	return e
}

// Internal wraps a non-operational failure. The message is what a developer
// sees; production callers only ever see a generic message.
func Internal(code, message string, cause error) *Error {
	if cause == nil {
		return New(KindInternal, code, message)
	}
	return &Error{
		Kind:    KindInternal,
		Code:    code,
		Message: message,
		cause:   oops.Code(code).Wrap(cause),
	}
}

// WithRetryable marks the error as safe to retry.
func (e *Error) WithRetryable() *Error {
	e.Retryable = true
	return e
}

// Error implements error.
func (e *Error) Error() string {
	if e.Kind == KindInternal && e.cause != nil && e.cause.Error() != e.Message {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of err. Errors outside the taxonomy are internal.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
