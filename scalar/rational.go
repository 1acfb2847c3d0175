package scalar

import "math/big"

// Rational is a canonicalized num/den pair with den > 0, wrapping
// math/big.Rat.
type Rational struct {
	v big.Rat
}

// NewRational builds num/den, canonicalizing the sign so the denominator
// is positive. Returns ErrDivisionByZero if den is zero.
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrDivisionByZero
	}
	var r Rational
	r.v.SetFrac64(num, den)
	return r, nil
}

// NewRationalFromCoefficient builds a Rational equal to the integer c.
func NewRationalFromCoefficient(c Coefficient) Rational {
	var r Rational
	r.v.SetInt(c.BigInt())
	return r
}

// NewRationalFromBigRat copies a *big.Rat.
func NewRationalFromBigRat(v *big.Rat) Rational {
	var r Rational
	r.v.Set(v)
	return r
}

// BigRat exposes a copy of the underlying big.Rat.
func (r Rational) BigRat() *big.Rat {
	var out big.Rat
	out.Set(&r.v)
	return &out
}

// Num and Den return the canonical numerator and denominator (den > 0,
// gcd(|num|, den) == 1).
func (r Rational) Num() Coefficient { return NewCoefficientFromBigInt(r.v.Num()) }
func (r Rational) Den() Coefficient { return NewCoefficientFromBigInt(r.v.Denom()) }

// Sign returns -1, 0, or +1.
func (r Rational) Sign() int { return r.v.Sign() }

// IsZero reports whether r is exactly zero.
func (r Rational) IsZero() bool { return r.v.Sign() == 0 }

// Add, Sub, Mul, Quo return new Rationals. Quo returns ErrDivisionByZero
// when the divisor is zero.
func (r Rational) Add(o Rational) Rational {
	var out Rational
	out.v.Add(&r.v, &o.v)
	return out
}

func (r Rational) Sub(o Rational) Rational {
	var out Rational
	out.v.Sub(&r.v, &o.v)
	return out
}

func (r Rational) Mul(o Rational) Rational {
	var out Rational
	out.v.Mul(&r.v, &o.v)
	return out
}

func (r Rational) Quo(o Rational) (Rational, error) {
	if o.IsZero() {
		return Rational{}, ErrDivisionByZero
	}
	var out Rational
	out.v.Quo(&r.v, &o.v)
	return out, nil
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	var out Rational
	out.v.Neg(&r.v)
	return out
}

// Cmp compares r to o: -1, 0, +1.
func (r Rational) Cmp(o Rational) int { return r.v.Cmp(&o.v) }

// IsInteger reports whether r has denominator 1.
func (r Rational) IsInteger() bool { return r.v.IsInt() }

// Float64 converts to the nearest float64, for display.
func (r Rational) Float64() float64 {
	f, _ := r.v.Float64()
	return f
}

// String renders as "num/den" (or "num" when den == 1).
func (r Rational) String() string { return r.v.RatString() }

// Zero and One are the additive and multiplicative identities.
func Zero() Rational { return NewRationalFromCoefficient(NewCoefficient(0)) }
func One() Rational  { return NewRationalFromCoefficient(NewCoefficient(1)) }
