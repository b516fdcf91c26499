// Package errors puts stdlib matching and pkg/errors stack annotation behind one import.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error                { return stderrors.New(text) }
func Is(err, target error) bool            { return stderrors.Is(err, target) }
func As(err error, target any) bool        { return stderrors.As(err, target) }
func WithStack(err error) error            { return pkgerrors.WithStack(err) }
func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// Errorf formats a new error carrying a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// AsType is As for a concrete error type.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}
