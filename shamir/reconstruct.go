package shamir

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/vitalvas/secretkit/linsys"
	"github.com/vitalvas/secretkit/rational"
)

// Reconstruct recovers the secret from the shares: it interpolates the
// polynomial through the first threshold shares in exact rational
// arithmetic and returns its value at x = 0.
//
// The result carries no round-off. ErrNonIntegerSecret means the selected
// shares do not lie on any integer-secret polynomial of degree threshold-1.
//
// Parameters:
//   - shares: the available shares; only the first threshold are used
//   - threshold: the number of shares the secret was split for (k)
func Reconstruct(shares []*Share, threshold int) (*big.Int, error) {
	coeffs, err := ReconstructPolynomial(shares, threshold)
	if err != nil {
		return nil, err
	}

	constant := coeffs[0]
	if !constant.IsInt() {
		return nil, fmt.Errorf("%w: constant term %s", ErrNonIntegerSecret, constant)
	}

	return constant.Num(), nil
}

// ReconstructPolynomial recovers the full coefficient vector (constant term
// first) of the polynomial through the first threshold shares, in exact
// rational arithmetic. Higher coefficients may be non-integer rationals
// even when the constant term is an integer.
func ReconstructPolynomial(shares []*Share, threshold int) ([]rational.Rat, error) {
	if err := validateShares(shares, threshold); err != nil {
		return nil, err
	}

	xs, ys := coordinates(shares[:threshold])

	sys, err := linsys.NewExact(xs, ys)
	if err != nil {
		return nil, err
	}

	return sys.Solve()
}

// ReconstructFloat recovers the secret in float64 arithmetic. Shares are
// sorted by x ascending, the polynomial is interpolated through the first
// threshold of them with partial pivoting, and every remaining share is
// checked against it. The returned Consistency report is never nil.
//
// The result is approximate; use Reconstruct when the secret must be exact.
func ReconstructFloat(shares []*Share, threshold int) (float64, *Consistency, error) {
	if err := validateShares(shares, threshold); err != nil {
		return 0, nil, err
	}

	sorted := sortByX(shares)
	xs, ys := coordinates(sorted[:threshold])

	sys, err := linsys.NewFloat(xs, ys)
	if err != nil {
		return 0, nil, err
	}

	coeffs, err := sys.Solve()
	if err != nil {
		return 0, nil, err
	}

	return coeffs[0], checkConsistency(coeffs, sorted[threshold:]), nil
}

func validateShares(shares []*Share, threshold int) error {
	if threshold < 1 {
		return ErrInvalidThreshold
	}

	if len(shares) < threshold {
		return ErrInsufficientShares
	}

	seen := make(map[string]bool, len(shares))
	for _, share := range shares {
		key := share.X.String()
		if seen[key] {
			return ErrDuplicateShares
		}
		seen[key] = true
	}

	return nil
}

func coordinates(shares []*Share) (xs, ys []*big.Int) {
	xs = make([]*big.Int, len(shares))
	ys = make([]*big.Int, len(shares))

	for i, share := range shares {
		xs[i] = share.X
		ys[i] = share.Y
	}

	return xs, ys
}

func sortByX(shares []*Share) []*Share {
	sorted := append([]*Share(nil), shares...)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X.Cmp(sorted[j].X) < 0
	})

	return sorted
}
