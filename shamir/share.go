package shamir

import "math/big"

// Share represents a single share of a secret: one sample point of the
// underlying polynomial.
type Share struct {
	// X is the x-coordinate (share index).
	X *big.Int
	// Y is the y-coordinate (share value).
	Y *big.Int
}

// Clone creates a deep copy of the share.
func (s *Share) Clone() *Share {
	return &Share{
		X: new(big.Int).Set(s.X),
		Y: new(big.Int).Set(s.Y),
	}
}

// Equal checks if two shares are identical.
func (s *Share) Equal(other *Share) bool {
	if other == nil {
		return false
	}

	return s.X.Cmp(other.X) == 0 && s.Y.Cmp(other.Y) == 0
}
