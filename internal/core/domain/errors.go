package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error for callers. Every failure surfaced by the use
// cases carries exactly one kind so the transport layer can render it
// without inspecting messages.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindForbidden    Kind = "forbidden"
	KindConflict     Kind = "conflict"
	KindInvalidState Kind = "invalid_state"
	KindTransient    Kind = "transient"
	KindUnauthorized Kind = "unauthorized"
)

// Sentinels for errors.Is checks. Matching is done by kind, so a detailed
// error such as NotFound("campaign", id) satisfies errors.Is(err, ErrNotFound).
var (
	ErrValidation   = &Error{Kind: KindValidation, Message: "validation failed"}
	ErrNotFound     = &Error{Kind: KindNotFound, Message: "not found"}
	ErrForbidden    = &Error{Kind: KindForbidden, Message: "forbidden"}
	ErrConflict     = &Error{Kind: KindConflict, Message: "conflict"}
	ErrInvalidState = &Error{Kind: KindInvalidState, Message: "invalid state"}
	ErrTransient    = &Error{Kind: KindTransient, Message: "temporarily unavailable"}
	ErrUnauthorized = &Error{Kind: KindUnauthorized, Message: "unauthorized"}
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the domain error type. Message is safe to show to end users;
// Cause keeps the underlying driver or collaborator error for logs.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a domain error of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// KindOf returns the kind of err, or an empty kind when err is not a domain
// error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsTransient reports whether err is safe to retry.
func IsTransient(err error) bool {
	return KindOf(err) == KindTransient
}

func NotFound(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %q not found", entity, id)}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func InvalidState(msg string) *Error {
	return &Error{Kind: KindInvalidState, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// Transient wraps cause as a retryable failure. A nil cause yields nil.
func Transient(op string, cause error) error {
	if cause == nil {
		return nil
	}
	if KindOf(cause) != "" {
		return cause
	}
	return &Error{Kind: KindTransient, Message: op + " temporarily unavailable", Cause: cause}
}

// ValidationErrors accumulates field errors. The zero value is ready to use.
type ValidationErrors []FieldError

// Add records a field error.
func (v *ValidationErrors) Add(field, format string, args ...any) {
	*v = append(*v, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Err returns nil when no field errors were recorded, otherwise a
// validation *Error carrying all of them.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	names := make([]string, 0, len(v))
	for _, f := range v {
		names = append(names, f.Field)
	}
	return &Error{
		Kind:    KindValidation,
		Message: "invalid fields: " + strings.Join(names, ", "),
		Fields:  append([]FieldError(nil), v...),
	}
}
