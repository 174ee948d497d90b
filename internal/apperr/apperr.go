// Package apperr defines the error type shared by every intervals package
package apperr

import (
	"errors"
	"fmt"
)

// Error is an application error with a user-facing message. Errors derived
// from the same sentinel through Fmt or Wrap match it with errors.Is.
type Error struct {
	Cause   error
	base    *Error
	Message string
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	if e == t {
		return true
	}

	return e.base != nil && e.base == t
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

// Fmt returns a copy of the error with its message formatted with args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
		base:    e.root(),
	}
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		base:    e.root(),
	}
}

// As is a shorthand for extracting an *Error from an error chain.
func As(err error) (*Error, bool) {
	var target *Error

	ok := errors.As(err, &target)

	return target, ok
}
