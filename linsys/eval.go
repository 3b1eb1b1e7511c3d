package linsys

import (
	"math/big"

	"github.com/vitalvas/secretkit/rational"
)

// EvalExact evaluates the polynomial with the given coefficients (constant
// term first) at x using Horner's rule in rational arithmetic.
func EvalExact(coeffs []rational.Rat, x *big.Int) rational.Rat {
	if len(coeffs) == 0 {
		return rational.Rat{}
	}

	xr := rational.FromInt(x)
	result := coeffs[len(coeffs)-1]

	for i := len(coeffs) - 2; i >= 0; i-- {
		result = result.Mul(xr).Add(coeffs[i])
	}

	return result
}

// EvalFloat evaluates the polynomial with the given coefficients (constant
// term first) at x using Horner's rule in float64.
func EvalFloat(coeffs []float64, x float64) float64 {
	result := 0.0

	for i := len(coeffs) - 1; i >= 0; i-- {
		result = result*x + coeffs[i]
	}

	return result
}
