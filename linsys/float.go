package linsys

import (
	"math"
	"math/big"
)

// Float is a dense square linear system in float64 arithmetic. It trades
// the exactness of Exact for constant-size numbers and speed.
type Float struct {
	matrix [][]float64
	rhs    []float64
}

// NewFloat builds the Vandermonde system for the points (xs[i], ys[i]) in
// float64. Each coordinate is rounded to the nearest float64; values
// beyond the float64 range become infinities.
func NewFloat(xs, ys []*big.Int) (*Float, error) {
	if len(xs) != len(ys) {
		return nil, ErrMismatchedLengths
	}

	if len(xs) == 0 {
		return nil, ErrEmptySystem
	}

	k := len(xs)
	sys := &Float{
		matrix: make([][]float64, k),
		rhs:    make([]float64, k),
	}

	for i, x := range xs {
		xf := toFloat(x)
		row := make([]float64, k)
		pow := 1.0

		for j := range row {
			row[j] = pow
			pow *= xf
		}

		sys.matrix[i] = row
		sys.rhs[i] = toFloat(ys[i])
	}

	return sys, nil
}

func toFloat(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()

	return f
}

// Solve runs Gaussian elimination with partial pivoting and back
// substitution. The pivot for each column is the row with the largest
// absolute value in that column.
//
// Solve works on a copy of the system, so it can be called repeatedly and
// always returns the same result.
func (s *Float) Solve() ([]float64, error) {
	k := len(s.rhs)
	matrix := make([][]float64, k)

	for i, row := range s.matrix {
		matrix[i] = append([]float64(nil), row...)
	}

	rhs := append([]float64(nil), s.rhs...)

	for col := 0; col < k; col++ {
		pivot := col

		for row := col + 1; row < k; row++ {
			if math.Abs(matrix[row][col]) > math.Abs(matrix[pivot][col]) {
				pivot = row
			}
		}

		if matrix[pivot][col] == 0 {
			return nil, ErrSingularMatrix
		}

		matrix[col], matrix[pivot] = matrix[pivot], matrix[col]
		rhs[col], rhs[pivot] = rhs[pivot], rhs[col]

		for row := col + 1; row < k; row++ {
			factor := matrix[row][col] / matrix[col][col]
			if factor == 0 {
				continue
			}

			for j := col; j < k; j++ {
				matrix[row][j] -= factor * matrix[col][j]
			}

			rhs[row] -= factor * rhs[col]
		}
	}

	coeffs := make([]float64, k)

	for i := k - 1; i >= 0; i-- {
		sum := rhs[i]

		for j := i + 1; j < k; j++ {
			sum -= matrix[i][j] * coeffs[j]
		}

		coeffs[i] = sum / matrix[i][i]
	}

	return coeffs, nil
}
