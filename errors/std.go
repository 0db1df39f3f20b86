package errors

import stderrors "errors"

// Is forwards to the standard library so callers need a single import.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As forwards to the standard library.
func As(err error, target any) bool { return stderrors.As(err, target) }

// New forwards to the standard library.
func New(text string) error { return stderrors.New(text) }
