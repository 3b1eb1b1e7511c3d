package sharefile

import "errors"

var (
	// ErrMissingKeys is returned when the document has no keys object or it
	// lacks n or k.
	ErrMissingKeys = errors.New("sharefile: missing keys object")

	// ErrInvalidKeys is returned when the threshold parameters are out of
	// range (k must be at least 1 and n at least k).
	ErrInvalidKeys = errors.New("sharefile: invalid threshold parameters")

	// ErrInvalidShareIndex is returned when an entry key is not a
	// non-negative decimal integer.
	ErrInvalidShareIndex = errors.New("sharefile: invalid share index")

	// ErrInvalidShareEntry is returned when a share entry is malformed or
	// lacks base or value.
	ErrInvalidShareEntry = errors.New("sharefile: invalid share entry")

	// ErrNegativeShare is returned when encoding a share with a negative
	// coordinate, which the document format cannot carry.
	ErrNegativeShare = errors.New("sharefile: share coordinates must be non-negative")
)
