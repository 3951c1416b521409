// Package errors defines the application error taxonomy: transport,
// decode, provider-reported, not-found and validation failures.
package errors

import (
	"fmt"

	"parkpulse/internal/errors"
)

// Kind classifies an application error.
type Kind string

const (
	// KindTransport marks connectivity and timeout failures.
	KindTransport Kind = "transport"
	// KindDecode marks malformed response bodies.
	KindDecode Kind = "decode"
	// KindProvider marks non-success statuses reported by a remote provider.
	KindProvider Kind = "provider"
	// KindNotFound marks a valid empty state, not a failure.
	KindNotFound Kind = "not_found"
	// KindValidation marks rejected input or a missing precondition.
	KindValidation Kind = "validation"
)

// AppError is the interface implemented by all application errors.
type AppError interface {
	error
	Kind() Kind
	// Message is the single user-facing line surfaced on snapshots.
	Message() string
}

// baseError carries a kind, a user-facing message and an optional cause.
type baseError struct {
	kind    Kind
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}

	return e.message
}

func (e *baseError) Kind() Kind      { return e.kind }
func (e *baseError) Message() string { return e.message }
func (e *baseError) Unwrap() error   { return e.cause }

// NewTransport wraps a connectivity failure.
func NewTransport(op string, cause error) AppError {
	return &baseError{
		kind:    KindTransport,
		message: op + " failed: network error",
		cause:   cause,
	}
}

// NewDecode wraps a malformed response body.
func NewDecode(op string, cause error) AppError {
	return &baseError{
		kind:    KindDecode,
		message: op + " failed: malformed response",
		cause:   cause,
	}
}

// ProviderError is a non-success status reported by a remote provider.
type ProviderError struct {
	Op     string
	Status string
	Detail string // The provider's error_message, when present.
}

// NewProvider builds a provider-reported error.
func NewProvider(op, status, detail string) *ProviderError {
	return &ProviderError{Op: op, Status: status, Detail: detail}
}

func (e *ProviderError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: provider returned %s: %s", e.Op, e.Status, e.Detail)
	}

	return fmt.Sprintf("%s: provider returned %s", e.Op, e.Status)
}

func (e *ProviderError) Kind() Kind { return KindProvider }

func (e *ProviderError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}

	return "provider error: " + e.Status
}

// ValidationError is rejected input or a missing precondition.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidation builds a validation error.
func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}

	return e.Reason
}

func (e *ValidationError) Kind() Kind      { return KindValidation }
func (e *ValidationError) Message() string { return e.Error() }

// ErrProfileRequired is returned by profile mutations attempted before a
// profile has been loaded or created.
var ErrProfileRequired = NewValidation("profile", "no active profile loaded")

// IsKind reports whether err (or anything it wraps) is an AppError of the
// given kind.
func IsKind(err error, kind Kind) bool {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind() == kind
	}

	return false
}

// IsNotFound reports whether err represents a valid empty state.
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}
