package rational

import "errors"

var (
	// ErrZeroDenominator is returned when a rational is constructed with denominator zero.
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrDivisionByZero is returned when dividing by a rational equal to zero.
	ErrDivisionByZero = errors.New("rational: division by zero")
)
