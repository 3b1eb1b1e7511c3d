package radix

import (
	"fmt"
	"math/big"
)

const (
	// MinBase is the smallest supported numeral base.
	MinBase = 2

	// MaxBase is the largest supported numeral base.
	MaxBase = 36
)

// Decode interprets value as a non-negative integer written in the given
// base and returns it with arbitrary precision. The digit alphabet is 0-9
// followed by a-z for digit values 10 through 35, case insensitive.
//
// Parameters:
//   - value: the digit string to decode (must be non-empty)
//   - base: the numeral base, between MinBase and MaxBase inclusive
//
// The accumulation is left to right (result = result*base + digit), so the
// length of value is unbounded.
func Decode(value string, base int) (*big.Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBase, base)
	}

	if value == "" {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidDigit)
	}

	result := new(big.Int)
	mult := big.NewInt(int64(base))
	digit := new(big.Int)

	for _, r := range value {
		val, ok := DigitValue(r)
		if !ok || val >= base {
			return nil, fmt.Errorf("%w: %q in base %d", ErrInvalidDigit, r, base)
		}

		result.Mul(result, mult)
		result.Add(result, digit.SetInt64(int64(val)))
	}

	return result, nil
}

// DigitValue returns the numeric value of a digit rune and whether the rune
// is a digit at all. Letters map case-insensitively to values 10 through 35.
func DigitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}
