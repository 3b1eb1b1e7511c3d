package shamir

import (
	"math"
	"math/big"

	"github.com/montanaflynn/stats"

	"github.com/vitalvas/secretkit/linsys"
	"github.com/vitalvas/secretkit/rational"
)

// consistencyTolerance is the largest absolute residual at which a share
// still counts as lying on the recovered polynomial.
const consistencyTolerance = 1e-6

// VerifyShares checks that every share lies on the polynomial defined by
// the first threshold shares, in exact arithmetic. A false result means at
// least one share is corrupt or belongs to a different split.
func VerifyShares(shares []*Share, threshold int) (bool, error) {
	coeffs, err := ReconstructPolynomial(shares, threshold)
	if err != nil {
		return false, err
	}

	for _, share := range shares[threshold:] {
		expected := linsys.EvalExact(coeffs, share.X)
		if !expected.Equal(rational.FromInt(share.Y)) {
			return false, nil
		}
	}

	return true, nil
}

// Mismatch describes a share whose value deviates from the recovered
// polynomial by more than the tolerance.
type Mismatch struct {
	// Share is the inconsistent share.
	Share *Share
	// Got is the polynomial value at the share's x-coordinate.
	Got float64
	// Want is the share's own value.
	Want float64
	// Residual is the absolute difference between the two.
	Residual float64
}

// Consistency summarizes how well the shares beyond the interpolation set
// agree with the recovered polynomial.
type Consistency struct {
	// Checked is the number of extra shares that were evaluated.
	Checked int
	// Mismatches lists the shares that deviated beyond the tolerance.
	Mismatches []Mismatch
	// MaxResidual is the largest absolute residual across checked shares.
	MaxResidual float64
	// MeanResidual is the mean absolute residual across checked shares.
	MeanResidual float64
}

// OK reports whether every checked share agreed with the polynomial.
func (c *Consistency) OK() bool {
	return len(c.Mismatches) == 0
}

func checkConsistency(coeffs []float64, extra []*Share) *Consistency {
	report := &Consistency{Checked: len(extra)}
	if len(extra) == 0 {
		return report
	}

	residuals := make([]float64, len(extra))

	for i, share := range extra {
		got := linsys.EvalFloat(coeffs, bigToFloat(share.X))
		want := bigToFloat(share.Y)
		residual := math.Abs(got - want)
		residuals[i] = residual

		if residual > consistencyTolerance {
			report.Mismatches = append(report.Mismatches, Mismatch{
				Share:    share,
				Got:      got,
				Want:     want,
				Residual: residual,
			})
		}
	}

	report.MaxResidual, _ = stats.Max(residuals)
	report.MeanResidual, _ = stats.Mean(residuals)

	return report
}

func bigToFloat(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()

	return f
}
