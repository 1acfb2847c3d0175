package polyhedron

import (
	"github.com/latticeforge/numdom/constraint"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/generator"
	"github.com/latticeforge/numdom/row"
)

// minimizeConstraints strongly-normalizes, deduplicates (collapsing
// scalar-multiple duplicates, which coincide after normalization), and
// sorts cs, reporting infeasibility if a trivially-false row (e.g. "0 >=
// 1") survives normalization.
//
// This implements the syntactic half of §4.4.3's minimize: exact and
// scalar-multiple redundancy is removed, but dominance between
// non-parallel rows (the simplex-style removal of a row implied by the
// others) is not attempted; a minimized system from this routine may
// still carry rows that are geometrically, but not syntactically,
// redundant. See DESIGN.md for the rationale.
func minimizeConstraints(cs *constraint.System) (out *constraint.System, infeasible bool, err error) {
	out = constraint.NewSystem(cs.Dim(), cs.Topology())
	var kept []row.Row
	for _, c := range cs.All() {
		nr, nerr := c.Row().StronglyNormalize()
		if nerr != nil {
			continue // zero row: trivially redundant
		}
		if isFalseConstraintRow(nr, c.Type()) {
			return nil, true, nil
		}
		if isTrivialConstraintRow(nr, c.Type()) {
			continue
		}
		dup := false
		for _, k := range kept {
			if nr.Equal(k) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		kept = append(kept, nr)
		nc, cerr := constraint.FromRow(nr, c.Type())
		if cerr != nil {
			return nil, false, cerr
		}
		if ierr := out.Insert(nc); ierr != nil {
			return nil, false, ierr
		}
	}
	out.SortRows()
	return out, false, nil
}

func isFalseConstraintRow(r row.Row, typ constraint.Type) bool {
	for i := 1; i <= r.Dim(); i++ {
		v, _ := r.At(i)
		if !v.IsZero() {
			return false
		}
	}
	if typ == constraint.EqualityType {
		return !r.Slot0().IsZero()
	}
	return r.Slot0().Sign() < 0
}

func isTrivialConstraintRow(r row.Row, typ constraint.Type) bool {
	for i := 1; i <= r.Dim(); i++ {
		v, _ := r.At(i)
		if !v.IsZero() {
			return false
		}
	}
	if typ == constraint.EqualityType {
		return r.Slot0().IsZero()
	}
	return r.Slot0().Sign() >= 0
}

// minimizeGenerators strongly-normalizes and deduplicates gs the same
// way minimizeConstraints does for the H-side. A zero-coordinate point
// (the origin alone, with no other rows) is kept even though its row
// normalizes oddly (divisor-only), since a generator system must always
// retain at least one point.
func minimizeGenerators(gs *generator.System) (*generator.System, error) {
	out := generator.NewSystem(gs.Dim(), gs.Topology())
	var kept []row.Row
	for _, g := range gs.All() {
		nr, nerr := g.Row().StronglyNormalize()
		if nerr != nil {
			if g.IsPointOrClosurePoint() {
				// the origin's row is exactly slot0 != 0, all else
				// zero: normalizes fine; only a genuinely all-zero row
				// (impossible for a point, whose divisor is positive)
				// would land here, so this branch is defensive only.
				continue
			}
			continue
		}
		dup := false
		for _, k := range kept {
			if nr.Equal(k) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		kept = append(kept, nr)
		if err := out.Insert(generator.FromRow(nr, g.Type())); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Minimize reduces whichever representation(s) are up to date to their
// syntactically redundancy-free, sorted form, marking the corresponding
// minimized status bits.
func (p *Polyhedron) Minimize() error {
	if p.status.Empty || p.status.ZeroDimUniv {
		return nil
	}
	if err := p.ensureConstraints(); err != nil {
		return err
	}
	if p.status.Empty {
		return nil
	}
	cs, infeasible, err := minimizeConstraints(p.cs)
	if err != nil {
		return err
	}
	if infeasible {
		p.cs, p.gs = nil, nil
		p.status = Status{Empty: true}
		return nil
	}
	p.cs = cs
	p.status.ConstraintsMinimized = true
	if p.gs != nil {
		gs, err := minimizeGenerators(p.gs)
		if err != nil {
			return err
		}
		p.gs = gs
		p.status.GeneratorsMinimized = true
	}
	return nil
}

// sameCoordinates reports whether a and b, both NOT_CLOSED-topology
// generators, describe the same point in space (divisor differences
// aside).
func sameCoordinates(a, b generator.Generator) (bool, error) {
	if a.Dim() != b.Dim() {
		return false, nil
	}
	for i := 1; i <= a.Dim(); i++ {
		av, err := a.Coordinate(i)
		if err != nil {
			return false, err
		}
		bv, err := b.Coordinate(i)
		if err != nil {
			return false, err
		}
		if av.Cmp(bv) != 0 {
			return false, nil
		}
	}
	return true, nil
}

// dropRedundantClosurePoints removes each closure point whose
// coordinates coincide with an actual point's: a point already
// supplies that boundary, in the topologically closed sense, so the
// closure point adds nothing. A closure point with no coinciding point
// is load-bearing (it marks a supremum the polyhedron approaches but
// does not reach, e.g. "closure_point(1)" alongside "point(0)" for {0
// <= x < 1}) and is kept untouched.
func dropRedundantClosurePoints(gs *generator.System) (*generator.System, error) {
	all := gs.All()
	var points []generator.Generator
	for _, g := range all {
		if g.IsPoint() {
			points = append(points, g)
		}
	}
	out := generator.NewSystem(gs.Dim(), gs.Topology())
	for _, g := range all {
		if g.IsClosurePoint() {
			redundant := false
			for _, p := range points {
				same, err := sameCoordinates(g, p)
				if err != nil {
					return nil, err
				}
				if same {
					redundant = true
					break
				}
			}
			if redundant {
				continue
			}
		}
		if err := out.Insert(g); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// StronglyMinimize additionally targets NOT_CLOSED redundancy: beyond
// Minimize's syntactic dedup, it drops any closure point whose
// coordinates coincide with an actual point already in the system (see
// dropRedundantClosurePoints). Strict-inequality epsilon redundancy on
// the constraint side is not targeted: this implementation's conversion
// already over-approximates strict precision there (see DESIGN.md), so
// there is no further epsilon-row reduction to perform beyond what
// Minimize's syntactic pass already does.
func (p *Polyhedron) StronglyMinimize() error {
	if err := p.Minimize(); err != nil {
		return err
	}
	if p.status.Empty || p.status.ZeroDimUniv || p.topology != core.NotClosed {
		return nil
	}
	if p.gs == nil {
		return nil
	}
	gs, err := dropRedundantClosurePoints(p.gs)
	if err != nil {
		return err
	}
	p.gs = gs
	p.cs = nil
	p.status.ConstraintsMinimized = false
	p.status.ConstraintsUpToDate = false
	return nil
}
