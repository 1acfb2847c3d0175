// SPDX-License-Identifier: MIT
package interval

import (
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/scalar"
)

// Interval is a pair of Bound endpoints.
type Interval struct {
	lower, upper scalar.Bound
}

// Universe returns (-inf, +inf).
func Universe() Interval {
	return Interval{lower: scalar.NegInf(), upper: scalar.PosInf()}
}

// Empty returns a canonical empty interval: [0, 0) by convention, any
// degenerate-open singleton would do since IsEmpty only consults the
// lower/upper relationship.
func Empty() Interval {
	z := scalar.NewBound(scalar.Zero(), false)
	return Interval{lower: z, upper: scalar.NewBound(scalar.Zero(), true)}
}

// FromRational returns the closed singleton [v, v].
func FromRational(v scalar.Rational) Interval {
	return Interval{lower: scalar.NewBound(v, false), upper: scalar.NewBound(v, false)}
}

// FromBounds builds an interval directly from its two endpoints, for
// callers (affine image arithmetic) that compute bounds independently of
// the Rational-valued constructors above.
func FromBounds(lower, upper scalar.Bound) Interval {
	return Interval{lower: lower, upper: upper}
}

// LowerSet returns a copy of iv with its lower bound set to (value, open).
func (iv Interval) LowerSet(value scalar.Rational, open bool) Interval {
	iv.lower = scalar.NewBound(value, open)
	return iv
}

// UpperSet returns a copy of iv with its upper bound set to (value, open).
func (iv Interval) UpperSet(value scalar.Rational, open bool) Interval {
	iv.upper = scalar.NewBound(value, open)
	return iv
}

// Lower, Upper expose the raw bounds.
func (iv Interval) Lower() scalar.Bound { return iv.lower }
func (iv Interval) Upper() scalar.Bound { return iv.upper }

// UnboundAbove, UnboundBelow return a copy of iv with the named bound
// relaxed to infinity, the shape a ray generator pushes a per-axis
// projection into during a convex-hull reconstruction.
func (iv Interval) UnboundAbove() Interval { iv.upper = scalar.PosInf(); return iv }
func (iv Interval) UnboundBelow() Interval { iv.lower = scalar.NegInf(); return iv }

// IsEmpty reports whether lower > upper, or they are equal and either
// side is open.
func (iv Interval) IsEmpty() bool {
	c := iv.lower.Cmp(iv.upper)
	if c > 0 {
		return true
	}
	if c == 0 && (iv.lower.Open() || iv.upper.Open()) {
		return true
	}
	return false
}

// IsUniverse reports whether both bounds are infinite.
func (iv Interval) IsUniverse() bool { return iv.lower.IsNegInf() && iv.upper.IsPosInf() }

// IsSingleton reports whether lower == upper and both are closed.
func (iv Interval) IsSingleton() bool {
	return iv.lower.IsFinite() && iv.upper.IsFinite() && !iv.lower.Open() && !iv.upper.Open() && iv.lower.Cmp(iv.upper) == 0
}

// IsTopologicallyClosed reports whether neither bound is open (an
// infinite bound is vacuously closed).
func (iv Interval) IsTopologicallyClosed() bool { return !iv.lower.Open() && !iv.upper.Open() }

// Contains reports whether iv ⊇ other.
func (iv Interval) Contains(other Interval) bool {
	if other.IsEmpty() {
		return true
	}
	if iv.IsEmpty() {
		return false
	}
	lowOK := iv.lower.Cmp(other.lower) < 0 || (iv.lower.Cmp(other.lower) == 0 && (!iv.lower.Open() || other.lower.Open()))
	upOK := iv.upper.Cmp(other.upper) > 0 || (iv.upper.Cmp(other.upper) == 0 && (!iv.upper.Open() || other.upper.Open()))
	return lowOK && upOK
}

// IsDisjointFrom reports whether iv ∩ other = ∅.
func (iv Interval) IsDisjointFrom(other Interval) bool {
	return iv.IntersectAssign(other).IsEmpty()
}

// IntersectAssign returns iv ∩ other.
func (iv Interval) IntersectAssign(other Interval) Interval {
	var out Interval
	if iv.lower.Cmp(other.lower) > 0 {
		out.lower = iv.lower
	} else if iv.lower.Cmp(other.lower) < 0 {
		out.lower = other.lower
	} else {
		out.lower = iv.lower
		if other.lower.Open() {
			out.lower = other.lower
		}
	}
	if iv.upper.Cmp(other.upper) < 0 {
		out.upper = iv.upper
	} else if iv.upper.Cmp(other.upper) > 0 {
		out.upper = other.upper
	} else {
		out.upper = iv.upper
		if other.upper.Open() {
			out.upper = other.upper
		}
	}
	return out
}

// JoinAssign returns the convex hull iv ⊔ other (the smallest interval
// containing both); when either side is empty the other is returned
// unchanged.
func (iv Interval) JoinAssign(other Interval) Interval {
	if iv.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return iv
	}
	var out Interval
	if iv.lower.Cmp(other.lower) < 0 {
		out.lower = iv.lower
	} else if iv.lower.Cmp(other.lower) > 0 {
		out.lower = other.lower
	} else {
		out.lower = iv.lower
		if !other.lower.Open() {
			out.lower = other.lower
		}
	}
	if iv.upper.Cmp(other.upper) > 0 {
		out.upper = iv.upper
	} else if iv.upper.Cmp(other.upper) < 0 {
		out.upper = other.upper
	} else {
		out.upper = iv.upper
		if !other.upper.Open() {
			out.upper = other.upper
		}
	}
	return out
}

// CanBeExactlyJoinedTo reports whether the two intervals' convex hull
// equals their set union, i.e. they overlap or touch without a gap.
func (iv Interval) CanBeExactlyJoinedTo(other Interval) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return true
	}
	touches := func(a, b Interval) bool {
		c := a.upper.Cmp(b.lower)
		if c > 0 {
			return true
		}
		if c == 0 && !(a.upper.Open() && b.lower.Open()) {
			return true
		}
		return false
	}
	return touches(iv, other) || touches(other, iv)
}

// DifferenceAssign returns iv \ other when the result is itself a single
// interval (other does not split iv into two pieces); ok is false when
// the exact difference is not representable as one Interval.
func (iv Interval) DifferenceAssign(other Interval) (result Interval, ok bool) {
	if other.IsEmpty() || iv.IsEmpty() {
		return iv, true
	}
	if !iv.Contains(other) && iv.IsDisjointFrom(other) {
		return iv, true
	}
	lc, uc := other.lower.Cmp(iv.lower), other.upper.Cmp(iv.upper)
	coversLower := lc < 0 || (lc == 0 && (!other.lower.Open() || iv.lower.Open()))
	coversUpper := uc > 0 || (uc == 0 && (!other.upper.Open() || iv.upper.Open()))
	switch {
	case coversLower && coversUpper:
		return Empty(), true
	case coversLower && !coversUpper:
		return Interval{lower: flip(other.upper), upper: iv.upper}, true
	case !coversLower && coversUpper:
		return Interval{lower: iv.lower, upper: flip(other.lower)}, true
	default:
		return Interval{}, false
	}
}

func flip(b scalar.Bound) scalar.Bound {
	if !b.IsFinite() {
		return b
	}
	return scalar.NewBound(b.Value(), !b.Open())
}

// RefineExistential narrows iv to satisfy "x relsym value", e.g.
// LessOrEqual sets the upper bound to value if tighter.
func (iv Interval) RefineExistential(relsym core.RelSym, value scalar.Rational) (Interval, error) {
	switch relsym {
	case core.LessThan:
		return iv.UpperNarrow(value, true), nil
	case core.LessOrEqual:
		return iv.UpperNarrow(value, false), nil
	case core.Equal:
		return iv.IntersectAssign(FromRational(value)), nil
	case core.GreaterOrEqual:
		return iv.LowerNarrow(value, false), nil
	case core.GreaterThan:
		return iv.LowerNarrow(value, true), nil
	default:
		return Interval{}, core.NewInvalidArgumentError("Interval.RefineExistential", "relation symbol must not be NOT_EQUAL")
	}
}

// LowerNarrow moves the lower bound to value only when that is tighter
// (strictly greater, or equal with stricter openness) than the current one.
func (iv Interval) LowerNarrow(value scalar.Rational, open bool) Interval {
	nb := scalar.NewBound(value, open)
	if iv.lower.IsFinite() {
		c := nb.Cmp(iv.lower)
		if c < 0 || (c == 0 && !(open && !iv.lower.Open())) {
			return iv
		}
	}
	iv.lower = nb
	return iv
}

// UpperNarrow moves the upper bound to value only when that is tighter
// (strictly less, or equal with stricter openness) than the current one.
func (iv Interval) UpperNarrow(value scalar.Rational, open bool) Interval {
	nb := scalar.NewBound(value, open)
	if iv.upper.IsFinite() {
		c := nb.Cmp(iv.upper)
		if c > 0 || (c == 0 && !(open && !iv.upper.Open())) {
			return iv
		}
	}
	iv.upper = nb
	return iv
}

// DefaultStopPoints is the CC76 widening's built-in stop-point sequence.
func DefaultStopPoints() []scalar.Rational {
	pts := make([]scalar.Rational, 0, 5)
	for _, v := range []int64{-2, -1, 0, 1, 2} {
		pts = append(pts, scalar.NewRationalFromCoefficient(scalar.NewCoefficient(v)))
	}
	return pts
}

// CC76WideningAssign widens iv towards other using a sorted ascending
// stop-point sequence (pass nil for DefaultStopPoints): each bound that
// moved outward is relaxed to the nearest stop point beyond it, or to
// infinity if none exists. tp, if non-nil and positive, absorbs one
// imprecise widening step by decrementing *tp and returning iv unchanged.
func (iv Interval) CC76WideningAssign(other Interval, stopPoints []scalar.Rational, tp *int) Interval {
	if stopPoints == nil {
		stopPoints = DefaultStopPoints()
	}
	if other.IsEmpty() {
		return iv
	}
	if iv.IsEmpty() {
		return other
	}
	out := iv
	lowerMoved := other.lower.Cmp(iv.lower) < 0
	upperMoved := other.upper.Cmp(iv.upper) > 0
	if !lowerMoved && !upperMoved {
		return iv
	}
	if tp != nil && *tp > 0 {
		*tp--
		return iv
	}
	if lowerMoved {
		out.lower = relaxLower(other.lower, stopPoints)
	}
	if upperMoved {
		out.upper = relaxUpper(other.upper, stopPoints)
	}
	return out
}

// relaxLower returns the largest stop point <= b (the nearest stop point
// at or below b), or -inf if every stop point exceeds b. Assumes stops is
// sorted ascending.
func relaxLower(b scalar.Bound, stops []scalar.Rational) scalar.Bound {
	if !b.IsFinite() {
		return b
	}
	for i := len(stops) - 1; i >= 0; i-- {
		sb := scalar.NewBound(stops[i], false)
		if sb.Cmp(b) <= 0 {
			return sb
		}
	}
	return scalar.NegInf()
}

// relaxUpper returns the smallest stop point >= b (the nearest stop point
// at or above b), or +inf if every stop point is below b. Assumes stops
// is sorted ascending.
func relaxUpper(b scalar.Bound, stops []scalar.Rational) scalar.Bound {
	if !b.IsFinite() {
		return b
	}
	for _, s := range stops {
		sb := scalar.NewBound(s, false)
		if sb.Cmp(b) >= 0 {
			return sb
		}
	}
	return scalar.PosInf()
}
