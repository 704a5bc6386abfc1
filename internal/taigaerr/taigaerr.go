// Package taigaerr defines the kind-bearing error taxonomy shared by every
// layer of the server. Components raise a *Error carrying one of the fixed
// Kinds; the error-handling middleware is the sole policy point that decides
// retry, masking, and logging based on the kind.
package taigaerr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for retry and masking policy. See spec §7.
type Kind string

const (
	InvalidInput     Kind = "invalid_input"
	Unauthenticated  Kind = "unauthenticated"
	PermissionDenied Kind = "permission_denied"
	NotFound         Kind = "not_found"
	Conflict         Kind = "conflict"
	RateLimited      Kind = "rate_limited"
	Timeout          Kind = "timeout"
	Transient        Kind = "transient"
	Internal         Kind = "internal"
)

// Error is the concrete error type carried through the middleware stack.
type Error struct {
	Kind       Kind
	Message    string
	FieldPath  string        // set for InvalidInput
	RetryAfter float64       // seconds, set for RateLimited when upstream supplied one
	Cause      error
}

func (e *Error) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("%s: %s (field %q)", e.Kind, e.Message, e.FieldPath)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same Kind, so callers can
// write errors.Is(err, taigaerr.NotFound) by wrapping the kind in a sentinel
// via New, or compare kinds directly via KindOf.
func (e *Error) Is(target error) bool {
	var te *Error
	if errors.As(target, &te) {
		return te.Kind == e.Kind
	}
	return false
}

// New builds an *Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds an *Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches kind and message to an underlying cause, preserving it for
// errors.Unwrap/errors.As.
func Wrap(kind Kind, cause error, message string) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// WithField returns a copy of e with FieldPath set, for InvalidInput errors
// that need to report which field failed validation.
func (e *Error) WithField(path string) *Error {
	c := *e
	c.FieldPath = path
	return &c
}

// WithRetryAfter returns a copy of e with RetryAfter set, for RateLimited
// errors surfaced from an upstream 429 carrying a Retry-After header.
func (e *Error) WithRetryAfter(seconds float64) *Error {
	c := *e
	c.RetryAfter = seconds
	return &c
}

// KindOf extracts the Kind from err, defaulting to Internal when err is not
// one of ours. Used by the error-handling middleware as the single
// classification point.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return Internal
}

// Retryable reports whether a failure of this kind is ever eligible for
// retry by the error-handling middleware, independent of idempotency.
func Retryable(k Kind) bool {
	switch k {
	case Transient, RateLimited:
		return true
	default:
		return false
	}
}
