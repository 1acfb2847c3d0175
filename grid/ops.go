package grid

import (
	"github.com/latticeforge/numdom/congruence"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
)

// AddCongruence inserts c into the congruence representation,
// invalidating the generator representation.
func (g *Grid) AddCongruence(c congruence.Congruence) error {
	if c.Dim() != g.dim {
		return ErrDimensionMismatch
	}
	if g.status.Empty {
		return nil
	}
	if g.status.ZeroDimUniv {
		if c.Inhomogeneous().Sign() != 0 {
			g.status = Status{Empty: true}
		}
		return nil
	}
	if err := g.ensureCongruences(); err != nil {
		return err
	}
	if g.status.Empty {
		return nil
	}
	if err := g.cg.Insert(c); err != nil {
		return err
	}
	g.gg = nil
	g.status.GeneratorsUpToDate = false
	return nil
}

// AddCongruences batches AddCongruence.
func (g *Grid) AddCongruences(cs []congruence.Congruence) error {
	for _, c := range cs {
		if err := g.AddCongruence(c); err != nil {
			return err
		}
	}
	return nil
}

// IntersectionAssign narrows g to g ⊓ h by concatenating h's congruences
// into g's system.
func (g *Grid) IntersectionAssign(h *Grid) error {
	if g.dim != h.dim {
		return ErrDimensionMismatch
	}
	if g.status.Empty {
		return nil
	}
	hEmpty, err := h.IsEmpty()
	if err != nil {
		return err
	}
	if hEmpty {
		g.cg, g.gg = nil, nil
		g.status = Status{Empty: true}
		return nil
	}
	hcg, err := h.Congruences()
	if err != nil {
		return err
	}
	return g.AddCongruences(hcg.All())
}

// GridHullAssign widens g to the smallest grid containing both g and h.
// Unlike a polyhedron's convex hull, this is exact: merging the two
// generator systems (points, lines, and parameters together) generates
// exactly the join of the two lattices, since every integer combination
// reachable from either side remains reachable from the union.
func (g *Grid) GridHullAssign(h *Grid) error {
	if g.dim != h.dim {
		return ErrDimensionMismatch
	}
	hEmpty, err := h.IsEmpty()
	if err != nil {
		return err
	}
	if hEmpty {
		return nil
	}
	gEmpty, err := g.IsEmpty()
	if err != nil {
		return err
	}
	if gEmpty {
		clone, err := h.Clone()
		if err != nil {
			return err
		}
		*g = *clone
		return nil
	}
	if g.dim == 0 {
		return nil
	}
	if err := g.ensureGenerators(); err != nil {
		return err
	}
	hgg, err := h.Generators()
	if err != nil {
		return err
	}
	for _, gen := range hgg.All() {
		if err := g.gg.Insert(gen); err != nil {
			return err
		}
	}
	g.cg = nil
	g.status.CongruencesUpToDate = false
	return nil
}

// remapRow rebuilds r at a new dimension, placing its coefficients at
// 1+offset..offset+r.Dim() and zero elsewhere.
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
	return row.FromCoefficients(coeffs, core.Closed, r.Kind())
}

// ConcatenateAssign sets g to g × h in dim(g)+dim(h) dimensions, via
// congruence-system concatenation (exact: independent-dimension-block
// congruences intersect to exactly the Cartesian product of lattices).
func (g *Grid) ConcatenateAssign(h *Grid) error {
	newDim := g.dim + h.dim
	gEmpty, err := g.IsEmpty()
	if err != nil {
		return err
	}
	hEmpty, err := h.IsEmpty()
	if err != nil {
		return err
	}
	if gEmpty || hEmpty {
		*g = *NewEmpty(newDim)
		return nil
	}
	gcg, err := g.Congruences()
	if err != nil {
		return err
	}
	hcg, err := h.Congruences()
	if err != nil {
		return err
	}
	cg := congruence.NewSystem(newDim)
	for _, c := range gcg.All() {
		nc, err := congruence.FromRow(remapRow(c.Row(), 0, newDim), c.Modulus())
		if err != nil {
			return err
		}
		if err := cg.Insert(nc); err != nil {
			return err
		}
	}
	for _, c := range hcg.All() {
		nc, err := congruence.FromRow(remapRow(c.Row(), g.dim, newDim), c.Modulus())
		if err != nil {
			return err
		}
		if err := cg.Insert(nc); err != nil {
			return err
		}
	}
	*g = *FromCongruences(cg)
	return nil
}
