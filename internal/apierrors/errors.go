// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
)

// Kind identifies an error classification. The set is closed.
type Kind int

const (
	// KindInternal is the fallback for anything unclassified.
	KindInternal Kind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
	KindPayloadTooLarge
	KindRateLimit
)

// kindInfo holds the stable wire name and default status for a kind.
type kindInfo struct {
	name   string
	status int
}

var kinds = map[Kind]kindInfo{
	KindInternal:        {"InternalServerError", http.StatusInternalServerError},
	KindValidation:      {"ValidationError", http.StatusBadRequest},
	KindAuthentication:  {"AuthenticationError", http.StatusUnauthorized},
	KindAuthorization:   {"AuthorizationError", http.StatusForbidden},
	KindNotFound:        {"NotFoundError", http.StatusNotFound},
	KindConflict:        {"ConflictError", http.StatusConflict},
	KindPayloadTooLarge: {"PayloadTooLargeError", http.StatusRequestEntityTooLarge},
	KindRateLimit:       {"RateLimitError", http.StatusTooManyRequests},
}

// String returns the stable type name used in the envelope.
func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return kinds[KindInternal].name
}

// Status returns the default HTTP status code for the kind.
func (k Kind) Status() int {
	if info, ok := kinds[k]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// DefaultRetryAfter is used for rate limit errors that carry no explicit value.
const DefaultRetryAfter = 60

// Error is a classified API error.
type Error struct {
	Kind    Kind
	Message string

	// Status overrides Kind.Status() when non-zero.
	Status int

	// Details carries structured payload such as field-level validation errors.
	Details interface{}

	// RetryAfter is the number of seconds a client should wait (rate limit only).
	RetryAfter int

	// Cause is the wrapped underlying error, if any.
	Cause error

	stack string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil && e.Message != e.Cause.Error() {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap supports errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// StatusCode returns the effective HTTP status.
func (e *Error) StatusCode() int {
	if e.Status != 0 {
		return e.Status
	}
	return e.Kind.Status()
}

// Stack returns the call stack captured when the error was constructed.
func (e *Error) Stack() string {
	return e.stack
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, stack: captureStack(3)}
}

// Validation creates a 400 error carrying field-level details.
func Validation(message string, details interface{}) *Error {
	e := newError(KindValidation, message)
	e.Details = details
	return e
}

// Authentication creates a 401 error. Reserved: no route currently raises it.
func Authentication(message string) *Error {
	if message == "" {
		message = "Authentication required"
	}
	return newError(KindAuthentication, message)
}

// Authorization creates a 403 error. Reserved: no route currently raises it.
func Authorization(message string) *Error {
	if message == "" {
		message = "Insufficient permissions"
	}
	return newError(KindAuthorization, message)
}

// NotFound creates a 404 error for the named resource.
func NotFound(resource string) *Error {
	if resource == "" {
		resource = "Resource"
	}
	return newError(KindNotFound, resource+" not found")
}

// Conflict creates a 409 error. Reserved: no route currently raises it.
func Conflict(message string) *Error {
	if message == "" {
		message = "Resource conflict"
	}
	return newError(KindConflict, message)
}

// PayloadTooLarge creates a 413 error for request bodies over the size cap.
func PayloadTooLarge(limit int64) *Error {
	e := newError(KindPayloadTooLarge, fmt.Sprintf("Request body exceeds the %d byte limit", limit))
	return e
}

// RateLimit creates a 429 error. A non-positive retryAfter means "use the default".
func RateLimit(message string, retryAfter int) *Error {
	if message == "" {
		message = "Rate limit exceeded"
	}
	e := newError(KindRateLimit, message)
	e.RetryAfter = retryAfter
	return e
}

// Internal wraps an arbitrary error as a 500.
func Internal(err error) *Error {
	msg := "An error occurred"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	e := newError(KindInternal, msg)
	e.Cause = err
	return e
}

// Classify converts any error into an *Error. Errors that are not already
// classified become internal errors with their original message.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	e := Internal(err)
	// Internal() captured the stack of Classify itself; re-capture from the caller.
	e.stack = captureStack(2)
	return e
}

// captureStack renders the calling goroutine's stack, skipping frames inside
// this package.
func captureStack(skip int) string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])

	var b strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return b.String()
}
