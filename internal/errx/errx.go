// Package errx attaches sentinel errors to underlying causes so callers can
// match on either with errors.Is.
package errx

import "fmt"

// Wrap returns an error that matches both sentinel and err.
func Wrap(sentinel, err error) error {
	if err == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// With appends formatted detail to sentinel. The format is written directly
// after the sentinel text, so it usually starts with ": " or " ".
func With(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w"+format, append([]any{sentinel}, args...)...)
}
