// Package apperr defines the stable error taxonomy shared by all services.
// Handlers map error kinds to HTTP statuses; backend errors are wrapped so
// they never leak raw driver detail to clients.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is a stable, machine-readable error category.
type Kind string

const (
	// KindUnauthenticated — missing, malformed, expired, or revoked token.
	KindUnauthenticated Kind = "unauthenticated"
	// KindValidationFailed — request failed input validation.
	KindValidationFailed Kind = "validation_failed"
	// KindInvalidParent — parent is absent or not a folder.
	KindInvalidParent Kind = "invalid_parent"
	// KindNotFound — record absent, or access denied by visibility rules
	// (deliberately indistinguishable, so private records are never leaked).
	KindNotFound Kind = "not_found"
	// KindNoContent — content requested for a record that has none (folders).
	KindNoContent Kind = "no_content"
	// KindContentMissing — the record exists but its content cannot be resolved.
	KindContentMissing Kind = "content_missing"
	// KindAlreadyExists — uniqueness constraint violated (duplicate email).
	KindAlreadyExists Kind = "already_exists"
	// KindDependencyUnavailable — a backing store is unreachable.
	KindDependencyUnavailable Kind = "dependency_unavailable"
	// KindInternal — anything not classified above.
	KindInternal Kind = "internal"
)

// Error carries a kind and a client-safe message. The wrapped cause, if any,
// is for logs only and never serialized.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an Error with the given kind and client-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an Error that records cause for logging while keeping the
// client-facing message clean.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from err, or KindInternal when err is not an
// *Error (or nil).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// MessageOf returns the client-safe message, or a generic one for
// unclassified errors.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}
