package linsys

import (
	"math/big"

	"github.com/vitalvas/secretkit/rational"
)

// Exact is a dense square linear system over exact rationals. Build one
// with NewExact and solve it with Solve; the solution carries no round-off.
type Exact struct {
	matrix [][]rational.Rat
	rhs    []rational.Rat
}

// NewExact builds the Vandermonde system for polynomial interpolation
// through the points (xs[i], ys[i]): row i is [1, x, x^2, ...] and the
// right-hand side entry is ys[i]. Solving it yields the polynomial
// coefficients with the constant term first.
//
// The system consumes points in the given order. Coordinates are copied,
// so callers may reuse the inputs.
func NewExact(xs, ys []*big.Int) (*Exact, error) {
	if len(xs) != len(ys) {
		return nil, ErrMismatchedLengths
	}

	if len(xs) == 0 {
		return nil, ErrEmptySystem
	}

	k := len(xs)
	sys := &Exact{
		matrix: make([][]rational.Rat, k),
		rhs:    make([]rational.Rat, k),
	}

	for i, x := range xs {
		row := make([]rational.Rat, k)
		pow := big.NewInt(1)

		for j := range row {
			row[j] = rational.FromInt(pow)
			pow.Mul(pow, x)
		}

		sys.matrix[i] = row
		sys.rhs[i] = rational.FromInt(ys[i])
	}

	return sys, nil
}

// Solve runs Gaussian elimination and back substitution in rational
// arithmetic and returns the coefficient vector, constant term first.
// The pivot for each column is the first row with a non-zero entry.
//
// Solve works on a copy of the system, so it can be called repeatedly and
// always returns the same result.
func (s *Exact) Solve() ([]rational.Rat, error) {
	k := len(s.rhs)
	matrix := make([][]rational.Rat, k)

	for i, row := range s.matrix {
		matrix[i] = append([]rational.Rat(nil), row...)
	}

	rhs := append([]rational.Rat(nil), s.rhs...)

	for col := 0; col < k; col++ {
		pivot := -1

		for row := col; row < k; row++ {
			if !matrix[row][col].IsZero() {
				pivot = row
				break
			}
		}

		if pivot < 0 {
			return nil, ErrSingularMatrix
		}

		matrix[col], matrix[pivot] = matrix[pivot], matrix[col]
		rhs[col], rhs[pivot] = rhs[pivot], rhs[col]

		for row := col + 1; row < k; row++ {
			if matrix[row][col].IsZero() {
				continue
			}

			factor, err := matrix[row][col].Div(matrix[col][col])
			if err != nil {
				return nil, err
			}

			for j := col; j < k; j++ {
				matrix[row][j] = matrix[row][j].Sub(factor.Mul(matrix[col][j]))
			}

			rhs[row] = rhs[row].Sub(factor.Mul(rhs[col]))
		}
	}

	coeffs := make([]rational.Rat, k)

	for i := k - 1; i >= 0; i-- {
		sum := rhs[i]

		for j := i + 1; j < k; j++ {
			sum = sum.Sub(matrix[i][j].Mul(coeffs[j]))
		}

		coeff, err := sum.Div(matrix[i][i])
		if err != nil {
			return nil, err
		}

		coeffs[i] = coeff
	}

	return coeffs, nil
}
