package shamir

import "errors"

var (
	// ErrInvalidThreshold is returned when the threshold is out of range for the operation.
	ErrInvalidThreshold = errors.New("shamir: invalid threshold")

	// ErrInvalidTotal is returned when total shares is less than threshold.
	ErrInvalidTotal = errors.New("shamir: total shares must be at least equal to threshold")

	// ErrNilSecret is returned when trying to split a nil secret.
	ErrNilSecret = errors.New("shamir: secret must not be nil")

	// ErrInsufficientShares is returned when not enough shares are provided for reconstruction.
	ErrInsufficientShares = errors.New("shamir: insufficient shares for reconstruction")

	// ErrDuplicateShares is returned when duplicate share indices are provided.
	ErrDuplicateShares = errors.New("shamir: duplicate share indices detected")

	// ErrNonIntegerSecret is returned when the recovered constant term is not an integer.
	ErrNonIntegerSecret = errors.New("shamir: recovered secret is not an integer")
)
