package box

import (
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/interval"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
)

// mulBound scales a bound by the (possibly negative) coefficient k,
// swapping the polarity of an infinite bound when k is negative.
func mulBound(b scalar.Bound, k scalar.Coefficient) scalar.Bound {
	if k.Sign() >= 0 {
		return b.ScaleNonNeg(scalar.NewRationalFromCoefficient(k))
	}
	return b.ScaleNonNeg(scalar.NewRationalFromCoefficient(k.Neg())).Neg()
}

// scaleInterval returns k*iv, flipping the bounds when k is negative.
func scaleInterval(iv interval.Interval, k scalar.Coefficient) interval.Interval {
	lo := mulBound(iv.Lower(), k)
	hi := mulBound(iv.Upper(), k)
	if k.Sign() < 0 {
		lo, hi = hi, lo
	}
	return interval.FromBounds(lo, hi)
}

// addIntervals returns a+b, erroring only on the pathological -inf+inf
// combination that a well-formed affine expression never produces.
func addIntervals(a, b interval.Interval) (interval.Interval, error) {
	lo, _, err := a.Lower().Add(b.Lower(), core.RoundNotNeeded)
	if err != nil {
		return interval.Interval{}, err
	}
	hi, _, err := a.Upper().Add(b.Upper(), core.RoundNotNeeded)
	if err != nil {
		return interval.Interval{}, err
	}
	return interval.FromBounds(lo, hi), nil
}

// evalLinearExpr computes the interval image of expr over b's current
// intervals: Σ coeff(i) * dims[i] + constant.
func (b *Box) evalLinearExpr(expr row.LinearExpression) (interval.Interval, error) {
	acc := interval.FromRational(scalar.NewRationalFromCoefficient(expr.Constant()))
	for i := 1; i <= b.Dim(); i++ {
		coeff := expr.CoefficientOf(i)
		if coeff.IsZero() {
			continue
		}
		iv, err := b.Interval(i)
		if err != nil {
			return interval.Interval{}, err
		}
		sum, err := addIntervals(acc, scaleInterval(iv, coeff))
		if err != nil {
			return interval.Interval{}, err
		}
		acc = sum
	}
	return acc, nil
}

// AffineImage replaces dimension v with (expr)/denominator, the single-
// variable image of the affine transform v := expr/denominator.
// denominator must be non-zero; the image is computed as an interval
// division of the evaluated expression by the constant denominator.
func (b *Box) AffineImage(v int, expr row.LinearExpression, denominator int64) error {
	if v < 1 || v > b.Dim() {
		return core.NewDimensionError("Box.AffineImage", v, b.Dim())
	}
	if denominator == 0 {
		return core.NewInvalidArgumentError("Box.AffineImage", "denominator must not be zero")
	}
	val, err := b.evalLinearExpr(expr)
	if err != nil {
		return err
	}
	if denominator != 1 {
		den := scalar.NewRationalFromCoefficient(scalar.NewCoefficient(denominator))
		val, err = divideInterval(val, den)
		if err != nil {
			return err
		}
	}
	return b.SetInterval(v, val)
}

// divideInterval divides every finite endpoint of iv by the non-zero
// rational den, flipping bounds when den is negative.
func divideInterval(iv interval.Interval, den scalar.Rational) (interval.Interval, error) {
	if den.IsZero() {
		return interval.Interval{}, core.NewInvalidArgumentError("Box.AffineImage", "denominator must not be zero")
	}
	lo, err := divideBound(iv.Lower(), den)
	if err != nil {
		return interval.Interval{}, err
	}
	hi, err := divideBound(iv.Upper(), den)
	if err != nil {
		return interval.Interval{}, err
	}
	if den.Sign() < 0 {
		lo, hi = hi, lo
	}
	return interval.FromBounds(lo, hi), nil
}

func divideBound(b scalar.Bound, den scalar.Rational) (scalar.Bound, error) {
	if !b.IsFinite() {
		if den.Sign() < 0 {
			return b.Neg(), nil
		}
		return b, nil
	}
	q, err := b.Value().Quo(den)
	if err != nil {
		return scalar.Bound{}, err
	}
	return scalar.NewBound(q, b.Open()), nil
}

// BoundedAffineImage refines v := expr/denominator using the interval
// bounds [lbExpr, ubExpr]/denominator directly, the Box analogue of the
// polyhedron/grid operation of the same name: it is exact here, unlike
// on relational domains, since a Box already stores v's range as an
// independent interval.
func (b *Box) BoundedAffineImage(v int, lbExpr, ubExpr row.LinearExpression, denominator int64) error {
	if denominator == 0 {
		return core.NewInvalidArgumentError("Box.BoundedAffineImage", "denominator must not be zero")
	}
	lo, err := b.evalLinearExpr(lbExpr)
	if err != nil {
		return err
	}
	hi, err := b.evalLinearExpr(ubExpr)
	if err != nil {
		return err
	}
	merged := interval.FromBounds(lo.Lower(), hi.Upper())
	if denominator != 1 {
		merged, err = divideInterval(merged, scalar.NewRationalFromCoefficient(scalar.NewCoefficient(denominator)))
		if err != nil {
			return err
		}
	}
	return b.SetInterval(v, merged)
}

// GeneralizedAffineImage sets v to the values satisfying "v relsym
// expr/denominator" for some value of the expression: it evaluates the
// image interval, then keeps only the side of it that relsym bounds (both
// sides for Equal), opening that bound for a strict relsym.
func (b *Box) GeneralizedAffineImage(v int, relsym core.RelSym, expr row.LinearExpression, denominator int64) error {
	if denominator == 0 {
		return core.NewInvalidArgumentError("Box.GeneralizedAffineImage", "denominator must not be zero")
	}
	val, err := b.evalLinearExpr(expr)
	if err != nil {
		return err
	}
	if denominator != 1 {
		val, err = divideInterval(val, scalar.NewRationalFromCoefficient(scalar.NewCoefficient(denominator)))
		if err != nil {
			return err
		}
	}
	fresh := interval.Universe()
	switch relsym {
	case core.LessThan, core.LessOrEqual:
		fresh = fresh.UnboundBelow()
	case core.GreaterThan, core.GreaterOrEqual:
		fresh = fresh.UnboundAbove()
	case core.Equal:
		// handled below via direct assignment
	default:
		return core.NewInvalidArgumentError("Box.GeneralizedAffineImage", "relation symbol must not be NOT_EQUAL")
	}
	if relsym == core.Equal {
		return b.SetInterval(v, val)
	}
	if val.Lower().IsFinite() && (relsym == core.GreaterThan || relsym == core.GreaterOrEqual) {
		fresh = fresh.LowerSet(val.Lower().Value(), val.Lower().Open() || relsym == core.GreaterThan)
	}
	if val.Upper().IsFinite() && (relsym == core.LessThan || relsym == core.LessOrEqual) {
		fresh = fresh.UpperSet(val.Upper().Value(), val.Upper().Open() || relsym == core.LessThan)
	}
	return b.SetInterval(v, fresh)
}
