package domain

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindConflict
	KindInvalidRequest
)

// Error is a classified domain failure. Usecases raise it at the point of
// detection; the HTTP layer performs the single taxonomy-to-status translation.
type Error struct {
	Kind    ErrorKind
	Message string
	Fields  map[string]string // optional per-field detail, invalid requests only
}

func (e *Error) Error() string { return e.Message }

// NotFound reports a missing record or a dangling reference.
func NotFound(entity, id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s with ID %s not found", entity, id),
	}
}

// Conflict reports a uniqueness violation on field.
func Conflict(field, value string) *Error {
	return &Error{
		Kind:    KindConflict,
		Message: fmt.Sprintf("%s %s already exists", field, value),
	}
}

func InvalidRequest(message string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: message}
}

// InvalidFields carries a field -> message mapping produced by input binding.
func InvalidFields(message string, fields map[string]string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: message, Fields: fields}
}

// KindOf classifies err. Anything that is not a *domain.Error anywhere in its
// chain is KindInternal.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

func IsNotFound(err error) bool       { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool       { return KindOf(err) == KindConflict }
func IsInvalidRequest(err error) bool { return KindOf(err) == KindInvalidRequest }
