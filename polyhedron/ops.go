package polyhedron

import (
	"github.com/latticeforge/numdom/constraint"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
)

// AddConstraint inserts c into the pending part of the constraint
// system, invalidating the generator representation.
func (p *Polyhedron) AddConstraint(c constraint.Constraint) error {
	if c.Dim() != p.dim {
		return ErrDimensionMismatch
	}
	if p.status.Empty {
		return nil
	}
	if p.status.ZeroDimUniv {
		if c.Inhomogeneous().Sign() < 0 {
			p.status = Status{Empty: true}
		}
		return nil
	}
	if err := p.ensureConstraints(); err != nil {
		return err
	}
	if p.status.Empty {
		return nil
	}
	if err := p.cs.InsertPending(c); err != nil {
		return err
	}
	p.gs = nil
	p.status.GeneratorsUpToDate = false
	p.status.ConstraintsMinimized = false
	p.status.GeneratorsMinimized = false
	return nil
}

// AddConstraints batches AddConstraint.
func (p *Polyhedron) AddConstraints(cs []constraint.Constraint) error {
	for _, c := range cs {
		if err := p.AddConstraint(c); err != nil {
			return err
		}
	}
	return nil
}

// IntersectionAssign narrows p to p ⊓ q by concatenating q's
// constraints into p's pending partition.
func (p *Polyhedron) IntersectionAssign(q *Polyhedron) error {
	if p.dim != q.dim {
		return ErrDimensionMismatch
	}
	if p.status.Empty {
		return nil
	}
	qEmpty, err := q.IsEmpty()
	if err != nil {
		return err
	}
	if qEmpty {
		p.cs, p.gs = nil, nil
		p.status = Status{Empty: true}
		return nil
	}
	qcs, err := q.Constraints()
	if err != nil {
		return err
	}
	return p.AddConstraints(qcs.All())
}

// PolyHullAssign widens p to the smallest polyhedron containing both p
// and q, by concatenating V-representations.
func (p *Polyhedron) PolyHullAssign(q *Polyhedron) error {
	if p.dim != q.dim {
		return ErrDimensionMismatch
	}
	qEmpty, err := q.IsEmpty()
	if err != nil {
		return err
	}
	if qEmpty {
		return nil
	}
	pEmpty, err := p.IsEmpty()
	if err != nil {
		return err
	}
	if pEmpty {
		clone, err := q.Clone()
		if err != nil {
			return err
		}
		*p = *clone
		return nil
	}
	if p.dim == 0 {
		return nil
	}
	if err := p.ensureGenerators(); err != nil {
		return err
	}
	qgs, err := q.Generators()
	if err != nil {
		return err
	}
	for _, g := range qgs.All() {
		if err := p.gs.Insert(g); err != nil {
			return err
		}
	}
	p.cs = nil
	p.status.ConstraintsUpToDate = false
	p.status.ConstraintsMinimized = false
	p.status.GeneratorsMinimized = false
	return nil
}

// negateConstraintPieces returns one or two constraints whose union is
// the complement of c (two only for an equality, whose complement is a
// disjunction). On a Closed topology, where a strict cut cannot be
// expressed, the complement is approximated by its non-strict closure, a
// sound over-approximation that shares the boundary with c.
func negateConstraintPieces(c constraint.Constraint, topology core.Topology) ([]constraint.Constraint, error) {
	negRow := negateRow(c.Row())
	if topology == core.NotClosed {
		switch c.Type() {
		case constraint.EqualityType:
			pos, err := constraint.FromRow(c.Row(), constraint.StrictInequalityType)
			if err != nil {
				return nil, err
			}
			neg, err := constraint.FromRow(negRow, constraint.StrictInequalityType)
			if err != nil {
				return nil, err
			}
			return []constraint.Constraint{pos, neg}, nil
		case constraint.StrictInequalityType:
			nc, err := constraint.FromRow(negRow, constraint.NonStrictInequalityType)
			if err != nil {
				return nil, err
			}
			return []constraint.Constraint{nc}, nil
		default:
			nc, err := constraint.FromRow(negRow, constraint.StrictInequalityType)
			if err != nil {
				return nil, err
			}
			return []constraint.Constraint{nc}, nil
		}
	}
	nc, err := constraint.FromRow(negRow, constraint.NonStrictInequalityType)
	if err != nil {
		return nil, err
	}
	return []constraint.Constraint{nc}, nil
}

// PolyDifferenceAssign sets p to an enclosure of p \ q: for each
// constraint of q, p intersected with that constraint's complement is
// computed, and the convex hull of those pieces is kept (the exact
// difference is generally non-convex). When every constraint of q is
// non-strict and already holds on all of p, p lies inside q and becomes
// empty.
func (p *Polyhedron) PolyDifferenceAssign(q *Polyhedron) error {
	if p.dim != q.dim {
		return ErrDimensionMismatch
	}
	pEmpty, err := p.IsEmpty()
	if err != nil {
		return err
	}
	if pEmpty {
		return nil
	}
	qEmpty, err := q.IsEmpty()
	if err != nil {
		return err
	}
	if qEmpty {
		return nil
	}
	qcs, err := q.Constraints()
	if err != nil {
		return err
	}
	contained := true
	for _, c := range qcs.All() {
		rel, err := p.RelationWithConstraint(c)
		if err != nil {
			return err
		}
		if c.IsStrict() || !rel.Has(core.IsIncluded) {
			contained = false
			break
		}
	}
	if contained {
		*p = *NewEmpty(p.dim, p.topology)
		return nil
	}
	result := NewEmpty(p.dim, p.topology)
	for _, c := range qcs.All() {
		pieces, err := negateConstraintPieces(c, p.topology)
		if err != nil {
			return err
		}
		for _, neg := range pieces {
			piece, err := p.Clone()
			if err != nil {
				return err
			}
			if err := piece.AddConstraint(neg); err != nil {
				return err
			}
			if err := result.PolyHullAssign(piece); err != nil {
				return err
			}
		}
	}
	*p = *result
	return nil
}

// remapRow rebuilds r at a new dimension, placing its coefficients at
// 1+offset..offset+r.Dim() and zero elsewhere, for concatenating two
// independent-dimension constraint systems into their Cartesian product.
func remapRow(r row.Row, offset, totalDim int) row.Row {
	coeffs := make([]scalar.Coefficient, totalDim+1)
	for i := range coeffs {
		coeffs[i] = scalar.NewCoefficient(0)
	}
	coeffs[0] = r.Slot0()
	for i := 1; i <= r.Dim(); i++ {
		v, _ := r.At(i)
		coeffs[offset+i] = v
	}
	out := row.FromCoefficients(coeffs, r.Topology(), r.Kind())
	if r.Topology() == core.NotClosed {
		if e, err := r.Epsilon(); err == nil {
			_ = out.SetEpsilon(e)
		}
	}
	return out
}

// ConcatenateAssign sets p to p × q in dim(p)+dim(q) dimensions, via
// H-representation concatenation (exact: independent-dimension-block
// constraints intersect to exactly the Cartesian product).
func (p *Polyhedron) ConcatenateAssign(q *Polyhedron) error {
	newDim := p.dim + q.dim
	pEmpty, err := p.IsEmpty()
	if err != nil {
		return err
	}
	qEmpty, err := q.IsEmpty()
	if err != nil {
		return err
	}
	if pEmpty || qEmpty {
		*p = *NewEmpty(newDim, p.topology)
		return nil
	}
	pcs, err := p.Constraints()
	if err != nil {
		return err
	}
	qcs, err := q.Constraints()
	if err != nil {
		return err
	}
	cs := constraint.NewSystem(newDim, p.topology)
	for _, c := range pcs.All() {
		nc, err := constraint.FromRow(remapRow(c.Row(), 0, newDim), c.Type())
		if err != nil {
			return err
		}
		if err := cs.Insert(nc); err != nil {
			return err
		}
	}
	for _, c := range qcs.All() {
		nc, err := constraint.FromRow(remapRow(c.Row(), p.dim, newDim), c.Type())
		if err != nil {
			return err
		}
		if err := cs.Insert(nc); err != nil {
			return err
		}
	}
	*p = *FromConstraints(cs)
	return nil
}
