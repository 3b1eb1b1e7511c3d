package rational

import "math/big"

var intOne = big.NewInt(1)

// Rat is an immutable arbitrary-precision rational number. Values are kept
// canonical: the denominator is positive, the numerator carries the sign,
// and both are reduced by their greatest common divisor. The zero value is
// the integer 0.
//
// Methods never mutate their receiver or operands, so values can be shared
// freely. Unlike math/big.Rat there is no in-place API.
type Rat struct {
	num big.Int
	den big.Int
}

// New returns the rational num/den in canonical form. The inputs are copied
// and may be freely reused by the caller.
func New(num, den *big.Int) (Rat, error) {
	if den.Sign() == 0 {
		return Rat{}, ErrZeroDenominator
	}

	return canon(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// FromInt returns v as a rational with denominator 1. The input is copied.
func FromInt(v *big.Int) Rat {
	return Rat{
		num: *new(big.Int).Set(v),
		den: *big.NewInt(1),
	}
}

// FromInt64 returns v as a rational with denominator 1.
func FromInt64(v int64) Rat {
	return Rat{
		num: *big.NewInt(v),
		den: *big.NewInt(1),
	}
}

// canon reduces num/den to canonical form. It takes ownership of both
// arguments, which must be freshly allocated, and den must be non-zero.
func canon(num, den *big.Int) Rat {
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}

	if num.Sign() == 0 {
		return Rat{num: big.Int{}, den: *big.NewInt(1)}
	}

	g := new(big.Int).GCD(nil, nil, num, den)
	if g.Cmp(intOne) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}

	return Rat{num: *num, den: *den}
}

// denomRef returns the denominator without copying. The zero value stores
// a zero denominator and is treated as denominator 1, which makes Rat{}
// usable as the integer 0. Callers must not mutate the result.
func (r *Rat) denomRef() *big.Int {
	if r.den.Sign() == 0 {
		return intOne
	}

	return &r.den
}

// Add returns r + o.
func (r Rat) Add(o Rat) Rat {
	rd, od := r.denomRef(), o.denomRef()

	num := new(big.Int).Mul(&r.num, od)
	num.Add(num, new(big.Int).Mul(&o.num, rd))

	return canon(num, new(big.Int).Mul(rd, od))
}

// Sub returns r - o.
func (r Rat) Sub(o Rat) Rat {
	rd, od := r.denomRef(), o.denomRef()

	num := new(big.Int).Mul(&r.num, od)
	num.Sub(num, new(big.Int).Mul(&o.num, rd))

	return canon(num, new(big.Int).Mul(rd, od))
}

// Mul returns r * o.
func (r Rat) Mul(o Rat) Rat {
	num := new(big.Int).Mul(&r.num, &o.num)

	return canon(num, new(big.Int).Mul(r.denomRef(), o.denomRef()))
}

// Div returns r / o, or ErrDivisionByZero when o is zero.
func (r Rat) Div(o Rat) (Rat, error) {
	if o.num.Sign() == 0 {
		return Rat{}, ErrDivisionByZero
	}

	num := new(big.Int).Mul(&r.num, o.denomRef())

	return canon(num, new(big.Int).Mul(r.denomRef(), &o.num)), nil
}

// Num returns a copy of the numerator.
func (r Rat) Num() *big.Int {
	return new(big.Int).Set(&r.num)
}

// Den returns a copy of the denominator. It is always positive.
func (r Rat) Den() *big.Int {
	return new(big.Int).Set(r.denomRef())
}

// Sign returns -1, 0 or +1 depending on the sign of r.
func (r Rat) Sign() int {
	return r.num.Sign()
}

// IsZero reports whether r is zero.
func (r Rat) IsZero() bool {
	return r.num.Sign() == 0
}

// IsInt reports whether r reduces to an integer.
func (r Rat) IsInt() bool {
	return r.denomRef().Cmp(intOne) == 0
}

// Cmp compares r and o and returns -1, 0 or +1.
func (r Rat) Cmp(o Rat) int {
	left := new(big.Int).Mul(&r.num, o.denomRef())
	right := new(big.Int).Mul(&o.num, r.denomRef())

	return left.Cmp(right)
}

// Equal reports whether r and o represent the same value.
func (r Rat) Equal(o Rat) bool {
	return r.num.Cmp(&o.num) == 0 && r.denomRef().Cmp(o.denomRef()) == 0
}

// String renders r as "num" for integers and "num/den" otherwise.
func (r Rat) String() string {
	if r.IsInt() {
		return r.num.String()
	}

	return r.num.String() + "/" + r.den.String()
}

// Float64 returns the nearest float64 to r.
func (r Rat) Float64() float64 {
	f, _ := new(big.Rat).SetFrac(&r.num, r.denomRef()).Float64()

	return f
}
