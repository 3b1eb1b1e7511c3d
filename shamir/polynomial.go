package shamir

import (
	"crypto/rand"
	"math/big"
)

// coefficientBound caps the random coefficients generated for a split at
// 128 bits.
var coefficientBound = new(big.Int).Lsh(big.NewInt(1), 128)

// polynomial represents a polynomial over the integers.
// coefficients[0] is the constant term (the secret).
type polynomial struct {
	coefficients []*big.Int
}

// newRandomPolynomial creates a random polynomial of degree (threshold-1)
// with the given secret as the constant term.
func newRandomPolynomial(secret *big.Int, threshold int) (*polynomial, error) {
	if threshold < 1 {
		return nil, ErrInvalidThreshold
	}

	coefficients := make([]*big.Int, threshold)
	coefficients[0] = new(big.Int).Set(secret)

	for i := 1; i < threshold; i++ {
		coef, err := randomCoefficient()
		if err != nil {
			return nil, err
		}
		coefficients[i] = coef
	}

	return &polynomial{coefficients: coefficients}, nil
}

// randomCoefficient generates a random integer in [1, coefficientBound).
// Zero is rejected so the polynomial keeps its full degree.
func randomCoefficient() (*big.Int, error) {
	for {
		coef, err := rand.Int(rand.Reader, coefficientBound)
		if err != nil {
			return nil, err
		}

		if coef.Sign() > 0 {
			return coef, nil
		}
	}
}

// evaluate evaluates the polynomial at point x using Horner's method.
func (p *polynomial) evaluate(x *big.Int) *big.Int {
	if len(p.coefficients) == 0 {
		return big.NewInt(0)
	}

	result := new(big.Int).Set(p.coefficients[len(p.coefficients)-1])

	for i := len(p.coefficients) - 2; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, p.coefficients[i])
	}

	return result
}
