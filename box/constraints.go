package box

import (
	"github.com/latticeforge/numdom/constraint"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
)

// ToConstraintSystem extracts b's intervals as a constraint.System: a
// finite lower bound on dimension i becomes "denᵢ·xᵢ - numᵢ {>=,>} 0"
// and a finite upper bound becomes "numᵢ - denᵢ·xᵢ {>=,>} 0", clearing
// the bound's rational denominator so every row carries only integer
// coefficients; an unbounded side contributes no row. This is the
// reverse of FromConstraintSystem, and is what lets a caller build a
// Polyhedron, Grid, BD-shape or Octagon out of a Box via its own
// FromConstraints/AddCongruences/refine entry points instead of only
// ever coercing a concrete domain down into a Box.
//
// Returns (nil, nil) for an empty box: there is no constraint system
// that expresses "empty" via interval rows alone, so callers should
// treat a nil result the way they already treat an explicit empty
// domain.
func (b *Box) ToConstraintSystem() (*constraint.System, error) {
	if b.CheckEmpty() {
		return nil, nil
	}
	topology := core.Closed
	for _, iv := range b.dims {
		if iv.Lower().Open() || iv.Upper().Open() {
			topology = core.NotClosed
			break
		}
	}
	cs := constraint.NewSystem(b.Dim(), topology)
	for i := 1; i <= b.Dim(); i++ {
		iv, err := b.Interval(i)
		if err != nil {
			return nil, err
		}
		if lo := iv.Lower(); lo.IsFinite() {
			c, err := boundConstraint(b.Dim(), topology, i, 1, lo.Value(), lo.Open())
			if err != nil {
				return nil, err
			}
			if err := cs.Insert(c); err != nil {
				return nil, err
			}
		}
		if hi := iv.Upper(); hi.IsFinite() {
			c, err := boundConstraint(b.Dim(), topology, i, -1, hi.Value(), hi.Open())
			if err != nil {
				return nil, err
			}
			if err := cs.Insert(c); err != nil {
				return nil, err
			}
		}
	}
	return cs, nil
}

// boundConstraint builds sign·denᵢ·xᵢ + (-sign·numᵢ) {>=,>} 0, the
// integer-cleared form of sign·xᵢ {>=,>} value (sign=1 for a lower
// bound, sign=-1 for an upper bound).
func boundConstraint(dim int, topology core.Topology, i int, sign int64, value scalar.Rational, strict bool) (constraint.Constraint, error) {
	signC := scalar.NewCoefficient(sign)
	coeffs := make([]scalar.Coefficient, dim+1)
	coeffs[i] = value.Den().Mul(signC)
	coeffs[0] = value.Num().Mul(signC).Neg()
	typ := constraint.NonStrictInequalityType
	if strict {
		typ = constraint.StrictInequalityType
	}
	r := row.FromCoefficients(coeffs, topology, row.RayPointOrInequality)
	return constraint.FromRow(r, typ)
}
