package box

import (
	"math/big"

	"github.com/latticeforge/numdom/congruence"
	"github.com/latticeforge/numdom/constraint"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/generator"
	"github.com/latticeforge/numdom/interval"
	"github.com/latticeforge/numdom/scalar"
)

// RelationWithConstraint classifies how b sits relative to c's solution
// set, by evaluating c's linear part as a single interval over b and
// comparing that interval to zero.
func (b *Box) RelationWithConstraint(c constraint.Constraint) (core.Relation, error) {
	if c.Dim() != b.Dim() {
		return core.Nothing, ErrDimensionMismatch
	}
	if b.IsEmpty() {
		return core.IsIncluded | core.IsDisjoint, nil
	}
	val, err := b.evalConstraintRest(c, 0)
	if err != nil {
		return core.Nothing, err
	}
	return classifyAgainstZero(val, c.Type()), nil
}

func classifyAgainstZero(val interval.Interval, typ constraint.Type) core.Relation {
	zero := interval.FromRational(scalar.Zero())
	containsZero := !val.IntersectAssign(zero).IsEmpty()
	switch typ {
	case constraint.EqualityType:
		if val.IsSingleton() && val.Lower().Value().IsZero() {
			return core.IsIncluded | core.Saturates
		}
		if !containsZero {
			return core.IsDisjoint
		}
		return core.StrictlyIntersects
	case constraint.NonStrictInequalityType:
		if val.Lower().IsFinite() && val.Lower().Value().Sign() >= 0 {
			rel := core.IsIncluded
			if val.Lower().Value().IsZero() {
				rel |= core.Saturates
			}
			return rel
		}
		if val.Upper().IsFinite() && val.Upper().Value().Sign() < 0 {
			return core.IsDisjoint
		}
		return core.StrictlyIntersects
	default: // StrictInequalityType
		if val.Lower().IsFinite() {
			sign := val.Lower().Value().Sign()
			if sign > 0 || (sign == 0 && val.Lower().Open()) {
				return core.IsIncluded
			}
		}
		if val.Upper().IsFinite() && val.Upper().Value().Sign() <= 0 {
			return core.IsDisjoint
		}
		return core.StrictlyIntersects
	}
}

// RelationWithCongruence classifies b against cg. A Box cannot represent
// modular information, so a proper congruence (modulus > 1) is only ever
// resolved precisely when b has collapsed to a single point on every
// variable cg references; otherwise the relation is conservatively
// reported as a possible intersection.
func (b *Box) RelationWithCongruence(cg congruence.Congruence) (core.Relation, error) {
	if cg.Dim() != b.Dim() {
		return core.Nothing, ErrDimensionMismatch
	}
	if b.IsEmpty() {
		return core.IsIncluded | core.IsDisjoint, nil
	}
	if cg.IsEquality() {
		val, err := b.evalCongruenceExpr(cg)
		if err != nil {
			return core.Nothing, err
		}
		return classifyAgainstZero(val, constraint.EqualityType), nil
	}
	if m, ok := cg.Modulus().Int64(); ok && m == 1 {
		return core.IsIncluded, nil
	}
	val, err := b.evalCongruenceExpr(cg)
	if err != nil {
		return core.Nothing, err
	}
	if val.IsSingleton() {
		q := val.Lower().Value()
		if q.IsInteger() && new(big.Int).Rem(q.Num().BigInt(), cg.Modulus().BigInt()).Sign() == 0 {
			return core.IsIncluded, nil
		}
		return core.IsDisjoint, nil
	}
	return core.StrictlyIntersects, nil
}

func (b *Box) evalCongruenceExpr(cg congruence.Congruence) (interval.Interval, error) {
	acc := interval.FromRational(scalar.NewRationalFromCoefficient(cg.Inhomogeneous()))
	for i := 1; i <= cg.Dim(); i++ {
		coeff, err := cg.Coefficient(i)
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

// RelationWithGenerator classifies g against b: a point/closure point is
// IsIncluded when every coordinate lies within (the closure of) the
// matching interval, else IsDisjoint; a line/ray is Subsumes when b is
// already unbounded in that direction (in both directions, for a line)
// on every dimension the generator moves, else Nothing.
func (b *Box) RelationWithGenerator(g generator.Generator) (core.Relation, error) {
	if g.Dim() != b.Dim() {
		return core.Nothing, ErrDimensionMismatch
	}
	if b.IsEmpty() {
		return core.Nothing, nil
	}
	if g.IsPointOrClosurePoint() {
		for i := 1; i <= b.Dim(); i++ {
			c, err := g.Coordinate(i)
			if err != nil {
				return core.Nothing, err
			}
			iv, err := b.Interval(i)
			if err != nil {
				return core.Nothing, err
			}
			if !boundaryContains(iv, c) {
				return core.IsDisjoint, nil
			}
		}
		return core.IsIncluded, nil
	}
	for i := 1; i <= b.Dim(); i++ {
		c, err := g.Coordinate(i)
		if err != nil {
			return core.Nothing, err
		}
		if c.IsZero() {
			continue
		}
		iv, err := b.Interval(i)
		if err != nil {
			return core.Nothing, err
		}
		if (c.Sign() > 0 || g.IsLine()) && iv.Upper().IsFinite() {
			return core.Nothing, nil
		}
		if (c.Sign() < 0 || g.IsLine()) && iv.Lower().IsFinite() {
			return core.Nothing, nil
		}
	}
	return core.Subsumes, nil
}

// boundaryContains reports whether c lies in iv's topological closure:
// an open endpoint still admits the value, matching PPL's convention that
// relation_with(generator) tests the point against the closed box.
func boundaryContains(iv interval.Interval, c scalar.Rational) bool {
	if iv.Lower().IsFinite() && iv.Lower().Value().Cmp(c) > 0 {
		return false
	}
	if iv.Upper().IsFinite() && iv.Upper().Value().Cmp(c) < 0 {
		return false
	}
	return true
}
