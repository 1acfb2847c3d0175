package grid

import (
	"math/big"

	"github.com/latticeforge/numdom/congruence"
	"github.com/latticeforge/numdom/gridgen"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
)

// divisibleBy reports whether v is an integer multiple of m (m == 0
// means "only v == 0 divides").
func divisibleBy(v, m scalar.Coefficient) bool {
	if m.IsZero() {
		return v.IsZero()
	}
	r := new(big.Int).Mod(v.BigInt(), m.BigInt())
	return r.Sign() == 0
}

// satisfiesAllGenerators reports whether every generator in gens keeps c
// satisfied: a free LINE direction must have zero homogeneous scalar
// product with c (it may move by any real amount); a PARAMETER's lattice
// step, and a POINT's own location, must land back on c's residue class
// under c's modulus scaled by the generator's divisor.
func satisfiesAllGenerators(c congruence.Congruence, gens []gridgen.Generator) bool {
	m := c.Modulus()
	for _, g := range gens {
		sp, err := row.HomogeneousScalarProduct(c.Row(), g.Row())
		if err != nil {
			return false
		}
		if g.IsLine() {
			if !sp.IsZero() {
				return false
			}
			continue
		}
		d := g.Divisor()
		if g.IsPoint() {
			total := sp.Add(c.Inhomogeneous().Mul(d))
			if !divisibleBy(total, m.Mul(d)) {
				return false
			}
			continue
		}
		if !divisibleBy(sp, m.Mul(d)) {
			return false
		}
	}
	return true
}

// HGridWideningAssign widens g (the stable, previous iterate) against h
// (the current, generally looser iterate): the result keeps exactly the
// congruences of g that still hold throughout h's generators, discarding
// the rest. Mirrors the standard H79 widening for convex polyhedra,
// adapted to congruences: termination follows the same way, since the
// surviving congruence count can only shrink across repeated calls.
func (g *Grid) HGridWideningAssign(h *Grid) error {
	if g.dim != h.dim {
		return ErrDimensionMismatch
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
	hEmpty, err := h.IsEmpty()
	if err != nil {
		return err
	}
	if hEmpty {
		return nil
	}
	gcg, err := g.Congruences()
	if err != nil {
		return err
	}
	hgg, err := h.Generators()
	if err != nil {
		return err
	}
	gens := hgg.All()
	kept := congruence.NewSystem(g.dim)
	for _, c := range gcg.All() {
		if satisfiesAllGenerators(c, gens) {
			if err := kept.Insert(c); err != nil {
				return err
			}
		}
	}
	*g = *FromCongruences(kept)
	return nil
}
