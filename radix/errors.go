package radix

import "errors"

var (
	// ErrUnsupportedBase is returned when the base is outside [MinBase, MaxBase].
	ErrUnsupportedBase = errors.New("radix: unsupported base")

	// ErrInvalidDigit is returned when a character has no value in the stated base.
	ErrInvalidDigit = errors.New("radix: invalid digit")
)
