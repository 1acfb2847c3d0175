package scalar

import "github.com/latticeforge/numdom/core"

// BoundKind distinguishes the two infinities from a finite rational value.
type BoundKind int

const (
	NegInfinity BoundKind = iota
	Finite
	PosInfinity
)

// Bound is an interval endpoint in {-inf} ∪ Q ∪ {+inf}, carrying an
// openness bit (true = strict). Add takes a core.RoundingDir and returns
// a Result (Neg and ScaleNonNeg take neither); since scalar's arithmetic
// is exact (big.Rat), every finite combination reports VEQ — the plumbing exists so a
// caller built against a rounding-aware bound contract works unchanged
// against this exact one, threading an error return through every
// arithmetic kernel even when the fast path cannot fail.
type Bound struct {
	kind BoundKind
	val  Rational
	open bool
}

// NegInf and PosInf build the two infinite bounds. Infinities are always
// closed by convention (openness is meaningless at infinity).
func NegInf() Bound { return Bound{kind: NegInfinity} }
func PosInf() Bound { return Bound{kind: PosInfinity} }

// NewBound builds a finite bound at v with the given openness.
func NewBound(v Rational, open bool) Bound {
	return Bound{kind: Finite, val: v, open: open}
}

// IsInfinite, IsFinite report the Bound's kind.
func (b Bound) IsInfinite() bool { return b.kind != Finite }
func (b Bound) IsFinite() bool   { return b.kind == Finite }
func (b Bound) IsNegInf() bool   { return b.kind == NegInfinity }
func (b Bound) IsPosInf() bool   { return b.kind == PosInfinity }

// Open reports the openness bit; always false at infinity.
func (b Bound) Open() bool { return b.kind == Finite && b.open }

// Value returns the finite rational value; callers must check IsFinite first.
func (b Bound) Value() Rational { return b.val }

// Cmp orders bounds by value only (ignoring openness): -inf < any finite < +inf.
func (b Bound) Cmp(o Bound) int {
	if b.kind != o.kind {
		rank := func(k BoundKind) int {
			switch k {
			case NegInfinity:
				return -1
			case PosInfinity:
				return 1
			default:
				return 0
			}
		}
		br, or := rank(b.kind), rank(o.kind)
		switch {
		case b.kind == Finite:
			if or < 0 {
				return 1
			}
			return -1
		case o.kind == Finite:
			if br < 0 {
				return -1
			}
			return 1
		default:
			if br < or {
				return -1
			}
			return 1
		}
	}
	if b.kind != Finite {
		return 0
	}
	return b.val.Cmp(o.val)
}

// Add returns the sum of two finite bounds. dir is accepted to keep the
// rounding-aware signature even though the arithmetic is exact, so the
// Result is always VEQ. Adding an infinity to anything finite propagates
// the infinity; -inf + +inf is a RuntimeError, as it is in every domain
// using Bound as an endpoint (never a legitimate operation here).
func (b Bound) Add(o Bound, dir core.RoundingDir) (Bound, Result, error) {
	if b.kind == Finite && o.kind == Finite {
		return Bound{kind: Finite, val: b.val.Add(o.val), open: b.open || o.open}, VEQ, nil
	}
	if b.kind != Finite && o.kind != Finite && b.kind != o.kind {
		return Bound{}, VOverflow, core.NewRuntimeError("Bound.Add")
	}
	if b.kind != Finite {
		return Bound{kind: b.kind}, VEQ, nil
	}
	return Bound{kind: o.kind}, VEQ, nil
}

// Neg returns the negation, swapping the two infinities.
func (b Bound) Neg() Bound {
	switch b.kind {
	case NegInfinity:
		return PosInf()
	case PosInfinity:
		return NegInf()
	default:
		return Bound{kind: Finite, val: b.val.Neg(), open: b.open}
	}
}

// ScaleNonNeg multiplies a bound by a non-negative finite scalar k,
// preserving the sign of infinities and the openness bit.
func (b Bound) ScaleNonNeg(k Rational) Bound {
	if b.kind != Finite {
		if k.IsZero() {
			return NewBound(Zero(), false)
		}
		return b
	}
	return Bound{kind: Finite, val: b.val.Mul(k), open: b.open}
}

// String renders the bound for diagnostics and ascii_dump.
func (b Bound) String() string {
	switch b.kind {
	case NegInfinity:
		return "-inf"
	case PosInfinity:
		return "+inf"
	default:
		if b.open {
			return "(" + b.val.String()
		}
		return "[" + b.val.String()
	}
}
