package box

import (
	"context"

	"github.com/latticeforge/numdom/constraint"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/interval"
	"github.com/latticeforge/numdom/scalar"
)

// evalConstraintRest evaluates c's linear part excluding variable skip:
// b + Σ_{i≠skip} aᵢ*dims[i].
func (b *Box) evalConstraintRest(c constraint.Constraint, skip int) (interval.Interval, error) {
	acc := interval.FromRational(scalar.NewRationalFromCoefficient(c.Inhomogeneous()))
	for i := 1; i <= c.Dim(); i++ {
		if i == skip {
			continue
		}
		coeff, err := c.Coefficient(i)
		if err != nil {
			return interval.Interval{}, err
		}
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

// PropagateConstraint runs one-variable-at-a-time revise passes (HC4-style
// constraint propagation) with c against b until no dimension narrows any
// further, honoring ctx cancellation between passes.
func (b *Box) PropagateConstraint(ctx context.Context, c constraint.Constraint) error {
	if c.Dim() != b.Dim() {
		return ErrDimensionMismatch
	}
	for {
		if err := core.CheckAbandoned(ctx, "Box.PropagateConstraint"); err != nil {
			return err
		}
		changed := false
		for i := 1; i <= b.Dim(); i++ {
			a, err := c.Coefficient(i)
			if err != nil {
				return err
			}
			if a.IsZero() {
				continue
			}
			rest, err := b.evalConstraintRest(c, i)
			if err != nil {
				return err
			}
			t, err := divideInterval(scaleInterval(rest, scalar.NewCoefficient(-1)), scalar.NewRationalFromCoefficient(a))
			if err != nil {
				return err
			}
			before, err := b.Interval(i)
			if err != nil {
				return err
			}
			after := narrowTowards(before, relationFor(c, a), t)
			if !intervalEqual(before, after) {
				if err := b.SetInterval(i, after); err != nil {
					return err
				}
				changed = true
			}
			if b.CheckEmpty() {
				return nil
			}
		}
		if !changed {
			return nil
		}
	}
}

// relationFor derives the relation xᵢ must satisfy against the isolated
// right-hand side, given the constraint's own relation and the sign of
// aᵢ (a negative coefficient flips the relation).
func relationFor(c constraint.Constraint, a scalar.Coefficient) core.RelSym {
	if c.IsEquality() {
		return core.Equal
	}
	negative := a.Sign() < 0
	switch {
	case c.IsStrict() && !negative:
		return core.GreaterThan
	case c.IsStrict() && negative:
		return core.LessThan
	case !negative:
		return core.GreaterOrEqual
	default:
		return core.LessOrEqual
	}
}

// narrowTowards narrows before so that it satisfies "x relsym t", taking
// only the side of t relevant to relsym (both sides for Equal).
func narrowTowards(before interval.Interval, relsym core.RelSym, t interval.Interval) interval.Interval {
	switch relsym {
	case core.Equal:
		return before.IntersectAssign(t)
	case core.GreaterOrEqual, core.GreaterThan:
		if !t.Lower().IsFinite() {
			return before
		}
		return before.LowerNarrow(t.Lower().Value(), t.Lower().Open() || relsym == core.GreaterThan)
	case core.LessOrEqual, core.LessThan:
		if !t.Upper().IsFinite() {
			return before
		}
		return before.UpperNarrow(t.Upper().Value(), t.Upper().Open() || relsym == core.LessThan)
	default:
		return before
	}
}
