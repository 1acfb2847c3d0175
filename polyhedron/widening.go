package polyhedron

import (
	"github.com/latticeforge/numdom/constraint"
	"github.com/latticeforge/numdom/generator"
	"github.com/latticeforge/numdom/row"
)

// satisfiesAllGenerators reports whether every generator in gens
// satisfies c: zero scalar product for lines (and for an equality
// constraint against any generator), nonnegative for everything else.
// Like the conversion fold in convert.go, this ignores the epsilon slot,
// so a generator sitting exactly on a strict boundary of c counts as
// satisfying it — the same sound, boundary-inclusive over-approximation.
func satisfiesAllGenerators(c constraint.Constraint, gens []generator.Generator) bool {
	for _, g := range gens {
		sp, err := row.ScalarProduct(c.Row(), g.Row())
		if err != nil {
			return false
		}
		if g.IsLine() {
			if !sp.IsZero() {
				return false
			}
			continue
		}
		if c.IsEquality() {
			if !sp.IsZero() {
				return false
			}
			continue
		}
		if sp.Sign() < 0 {
			return false
		}
	}
	return true
}

// H79WideningAssign widens p (the stable, previous iterate) against q
// (the current, generally wider iterate): the result keeps exactly the
// constraints of p that hold throughout q, discarding the rest, which is
// the standard Halbwachs widening and guarantees termination since the
// surviving constraint count can only shrink across repeated calls.
func (p *Polyhedron) H79WideningAssign(q *Polyhedron) error {
	if p.dim != q.dim {
		return ErrDimensionMismatch
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
	qEmpty, err := q.IsEmpty()
	if err != nil {
		return err
	}
	if qEmpty {
		return nil
	}
	pcs, err := p.Constraints()
	if err != nil {
		return err
	}
	qgs, err := q.Generators()
	if err != nil {
		return err
	}
	gens := qgs.All()
	kept := constraint.NewSystem(p.dim, p.topology)
	for _, c := range pcs.All() {
		if satisfiesAllGenerators(c, gens) {
			if err := kept.Insert(c); err != nil {
				return err
			}
		}
	}
	*p = *FromConstraints(kept)
	return nil
}

// BHRZ03WideningAssign is the more precise Bagnara-Hill-Ricci-Zaffanella
// widening, which additionally keeps certain "evolving" constraints/rays
// a plain H79 pass would drop by comparing the affine hulls and
// combinatorial structure of p and q. That extra bookkeeping is not
// implemented here; this falls back to H79WideningAssign, which is sound
// (a valid, if coarser, widening) but converges more slowly on examples
// BHRZ03 was designed to speed up.
func (p *Polyhedron) BHRZ03WideningAssign(q *Polyhedron) error {
	return p.H79WideningAssign(q)
}
