package shamir

import (
	"math/big"
)

// Split divides a secret into n shares, where any k of them reconstruct
// the secret. The secret becomes the constant term of a random polynomial
// of degree k-1 over the integers, and share i is the point (i, P(i)).
//
// Parameters:
//   - secret: the integer secret to split
//   - threshold: minimum number of shares required for reconstruction (k)
//   - total: total number of shares to generate (n)
//
// Returns a slice of Share objects that can be distributed to participants.
func Split(secret *big.Int, threshold, total int) ([]*Share, error) {
	if secret == nil {
		return nil, ErrNilSecret
	}

	if threshold < 2 {
		return nil, ErrInvalidThreshold
	}

	if total < threshold {
		return nil, ErrInvalidTotal
	}

	poly, err := newRandomPolynomial(secret, threshold)
	if err != nil {
		return nil, err
	}

	shares := make([]*Share, total)
	for i := 0; i < total; i++ {
		// x-coordinates are 1, 2, 3, ... (never 0)
		x := big.NewInt(int64(i + 1))

		shares[i] = &Share{
			X: x,
			Y: poly.evaluate(x),
		}
	}

	return shares, nil
}
