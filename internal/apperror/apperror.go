package apperror

import (
	"errors"

	"github.com/google/uuid"
)

// Kind discriminates error categories so the transport layer can map them
// to status codes without inspecting messages.
type Kind int

const (
	KindValidation Kind = iota
	KindUnauthenticated
	KindNotFound
	KindForbidden
	KindConflict
	KindInternal
)

// FieldViolation describes a single failed field. Value carries
// rule-level detail for enumerable rule sets (password policy).
type FieldViolation struct {
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

type Error struct {
	Kind    Kind
	Message string
	// Fields is set for KindValidation only.
	Fields map[string]FieldViolation
	// Ids is set for batch NotFound/Forbidden results.
	Ids []uuid.UUID

	cause error
}

func (e *Error) Error() string {
	return e.Message
}

func NewValidation(message string, fields map[string]FieldViolation) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func NewUnauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func NewNotFound(message string, ids ...uuid.UUID) *Error {
	return &Error{Kind: KindNotFound, Message: message, Ids: ids}
}

func NewForbidden(message string, ids ...uuid.UUID) *Error {
	return &Error{Kind: KindForbidden, Message: message, Ids: ids}
}

func NewConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// NewInternal wraps an infrastructure failure. The original cause is kept
// for logging but never serialized to the caller.
func NewInternal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", cause: cause}
}

func (e *Error) Unwrap() error {
	return e.cause
}

// As unwraps err into *Error, or nil if it is not one.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
