// Package apperr defines the application error taxonomy. Services raise
// typed errors; the HTTP layer maps them to statuses.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("duplicate found")
	ErrValidation = errors.New("validation failed")
)

type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// NotFoundf reports that a referenced entity does not exist.
func NotFoundf(format string, args ...any) error {
	return &Error{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

// Duplicatef reports a uniqueness violation on create.
func Duplicatef(format string, args ...any) error {
	return &Error{kind: ErrDuplicate, msg: fmt.Sprintf(format, args...)}
}

// Validationf reports structurally invalid input.
func Validationf(format string, args ...any) error {
	return &Error{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func IsDuplicate(err error) bool { return errors.Is(err, ErrDuplicate) }

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
