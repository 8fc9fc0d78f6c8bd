// Package errors is the single import for error construction in comanda.
// Sentinels and matching come from the standard library; wrapping records a
// stack trace through pkg/errors so logged failures point at their origin.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error { return stderrors.New(text) }

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

// Join keeps every non-nil error so a fan-out or rollback reports each failure.
func Join(errs ...error) error { return stderrors.Join(errs...) }

// Wrap returns nil for a nil err, so it can wrap a call result directly.
func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error { return pkgerrors.WithStack(err) }

func Errorf(format string, args ...any) error { return pkgerrors.Errorf(format, args...) }
