package scalar

import "math/big"

// Coefficient is an unbounded-precision signed integer, the entry type of
// every linear row. It wraps math/big.Int; see doc.go for why no
// third-party big-integer library was substituted.
type Coefficient struct {
	v big.Int
}

// NewCoefficient builds a Coefficient from an int64.
func NewCoefficient(i int64) Coefficient {
	var c Coefficient
	c.v.SetInt64(i)
	return c
}

// NewCoefficientFromBigInt builds a Coefficient by copying a *big.Int.
func NewCoefficientFromBigInt(i *big.Int) Coefficient {
	var c Coefficient
	c.v.Set(i)
	return c
}

// BigInt exposes a copy of the underlying big.Int.
func (c Coefficient) BigInt() *big.Int {
	var out big.Int
	out.Set(&c.v)
	return &out
}

// Sign returns -1, 0, or +1.
func (c Coefficient) Sign() int { return c.v.Sign() }

// IsZero reports whether the coefficient is exactly zero.
func (c Coefficient) IsZero() bool { return c.v.Sign() == 0 }

// Add returns c + other.
func (c Coefficient) Add(other Coefficient) Coefficient {
	var out Coefficient
	out.v.Add(&c.v, &other.v)
	return out
}

// Sub returns c - other.
func (c Coefficient) Sub(other Coefficient) Coefficient {
	var out Coefficient
	out.v.Sub(&c.v, &other.v)
	return out
}

// Mul returns c * other.
func (c Coefficient) Mul(other Coefficient) Coefficient {
	var out Coefficient
	out.v.Mul(&c.v, &other.v)
	return out
}

// Neg returns -c.
func (c Coefficient) Neg() Coefficient {
	var out Coefficient
	out.v.Neg(&c.v)
	return out
}

// Abs returns |c|.
func (c Coefficient) Abs() Coefficient {
	var out Coefficient
	out.v.Abs(&c.v)
	return out
}

// Cmp compares c to other: -1, 0, +1.
func (c Coefficient) Cmp(other Coefficient) int { return c.v.Cmp(&other.v) }

// ExactDiv divides c by other, which must evenly divide c. Returns
// ErrDivisionByZero if other is zero.
func (c Coefficient) ExactDiv(other Coefficient) (Coefficient, error) {
	if other.IsZero() {
		return Coefficient{}, ErrDivisionByZero
	}
	var q, r big.Int
	q.QuoRem(&c.v, &other.v, &r)
	return NewCoefficientFromBigInt(&q), nil
}

// Gcd returns the non-negative greatest common divisor of c and other.
func (c Coefficient) Gcd(other Coefficient) Coefficient {
	var out Coefficient
	a, b := new(big.Int).Abs(&c.v), new(big.Int).Abs(&other.v)
	out.v.GCD(nil, nil, a, b)
	return out
}

// Lcm returns the non-negative least common multiple of c and other.
// Lcm(0, x) = 0 by convention.
func (c Coefficient) Lcm(other Coefficient) Coefficient {
	if c.IsZero() || other.IsZero() {
		return NewCoefficient(0)
	}
	g := c.Gcd(other)
	prod := c.Mul(other).Abs()
	q, _ := prod.ExactDiv(g)
	return q
}

// GcdAll returns the gcd of a non-empty slice of coefficients, treating
// zero entries as identity for the reduction (gcd(0, x) = x).
func GcdAll(cs []Coefficient) Coefficient {
	if len(cs) == 0 {
		return NewCoefficient(0)
	}
	g := cs[0].Abs()
	for _, c := range cs[1:] {
		g = g.Gcd(c)
	}
	return g
}

// Int64 returns the value as an int64 and reports whether the conversion
// was exact.
func (c Coefficient) Int64() (int64, bool) {
	if !c.v.IsInt64() {
		return 0, false
	}
	return c.v.Int64(), true
}

// String renders the coefficient in base 10.
func (c Coefficient) String() string { return c.v.String() }
