package polyhedron

import (
	"github.com/latticeforge/numdom/constraint"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/generator"
	"github.com/latticeforge/numdom/row"
)

// classifyAgainstConstraint partitions gens by the sign of their scalar
// product with c: anyPos/anyNeg record whether some generator lies
// strictly on the positive/negative side, anySat whether some generator
// saturates c exactly. A LINE with a nonzero scalar product counts
// toward both anyPos and anyNeg, since traveling either way along it
// reaches both signs; a LINE that saturates counts only toward anySat.
func classifyAgainstConstraint(c constraint.Constraint, gens []generator.Generator) (anyPos, anyNeg, anySat bool, err error) {
	for _, g := range gens {
		sp, serr := row.ScalarProduct(c.Row(), g.Row())
		if serr != nil {
			return false, false, false, serr
		}
		if g.IsLine() {
			if sp.IsZero() {
				anySat = true
			} else {
				anyPos, anyNeg = true, true
			}
			continue
		}
		switch {
		case sp.IsZero():
			anySat = true
		case sp.Sign() > 0:
			anyPos = true
		default:
			anyNeg = true
		}
	}
	return anyPos, anyNeg, anySat, nil
}

// RelationWithConstraint classifies how p relates to the half-space (or
// hyperplane, for an equality) c describes, combining IsIncluded,
// Saturates, IsDisjoint and StrictlyIntersects as appropriate. Like the
// rest of this package's conversion and widening logic, the classifying
// scalar product ignores the epsilon slot, so StrictInequalityType is
// treated the same as NonStrictInequalityType here: a generator sitting
// exactly on a strict boundary is reported as included, a sound
// over-approximation.
func (p *Polyhedron) RelationWithConstraint(c constraint.Constraint) (core.Relation, error) {
	if c.Dim() != p.dim {
		return core.Nothing, ErrDimensionMismatch
	}
	empty, err := p.IsEmpty()
	if err != nil {
		return core.Nothing, err
	}
	if empty {
		return core.IsIncluded | core.IsDisjoint | core.Saturates, nil
	}
	gs, err := p.Generators()
	if err != nil {
		return core.Nothing, err
	}
	anyPos, anyNeg, anySat, err := classifyAgainstConstraint(c, gs.All())
	if err != nil {
		return core.Nothing, err
	}
	allSat := !anyPos && !anyNeg

	var rel core.Relation
	if c.IsEquality() {
		if allSat {
			rel |= core.IsIncluded | core.Saturates
		}
		if !anySat {
			rel |= core.IsDisjoint
		} else if anyPos || anyNeg {
			rel |= core.StrictlyIntersects
		}
		return rel, nil
	}
	if allSat {
		rel |= core.Saturates
	}
	if !anyNeg {
		rel |= core.IsIncluded
	}
	if !anyPos && !anySat {
		rel |= core.IsDisjoint
	}
	if anyPos && anyNeg {
		rel |= core.StrictlyIntersects
	}
	return rel, nil
}

// RelationWithGenerator reports IsIncluded when g (a point, ray, line or
// closure point) belongs to p's V-representation (every constraint of p
// is satisfied by g, and saturated when g is a line), Nothing otherwise.
func (p *Polyhedron) RelationWithGenerator(g generator.Generator) (core.Relation, error) {
	if g.Dim() != p.dim {
		return core.Nothing, ErrDimensionMismatch
	}
	cs, err := p.Constraints()
	if err != nil {
		return core.Nothing, err
	}
	for _, c := range cs.All() {
		sp, err := row.ScalarProduct(c.Row(), g.Row())
		if err != nil {
			return core.Nothing, err
		}
		if g.IsLine() {
			if !sp.IsZero() {
				return core.Nothing, nil
			}
			continue
		}
		if c.IsEquality() {
			if !sp.IsZero() {
				return core.Nothing, nil
			}
		} else if sp.Sign() < 0 {
			return core.Nothing, nil
		}
	}
	return core.IsIncluded, nil
}
