// Package apperr defines the error type shared by pomo packages
package apperr

import "fmt"

// Error is an application error. Packages declare sentinel values and derive
// contextual errors from them with Fmt or Wrap, which keeps errors.Is working
// against the sentinel.
type Error struct {
	Cause   error
	base    *Error
	Message string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

// Fmt returns a new error whose message is the sentinel's message formatted
// with args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
		base:    e.root(),
	}
}

// Wrap returns a new error that records err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		base:    e.root(),
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel this error was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || e.root() == t
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}
