package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can match on it instead of
// inspecting concrete error types.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Error carries the failure kind plus whichever detail applies: the
// offending payload field for validation failures, the missing
// identifier for not-found failures.
type Error struct {
	Kind  Kind
	Field string
	ID    string
	msg   string
}

func (e *Error) Error() string {
	return e.msg
}

func NewValidation(field, reason string) *Error {
	return &Error{
		Kind:  KindValidation,
		Field: field,
		msg:   fmt.Sprintf("invalid field %q: %s", field, reason),
	}
}

func NewNotFound(id string) *Error {
	return &Error{
		Kind: KindNotFound,
		ID:   id,
		msg:  fmt.Sprintf("%s not found", id),
	}
}

func NewStorage(msg string) *Error {
	return &Error{Kind: KindStorage, msg: msg}
}

func WrapStorage(err error) *Error {
	return &Error{Kind: KindStorage, msg: err.Error()}
}

// KindOf reports the kind of err, or KindUnknown if err does not carry one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
