package polyhedron

import (
	"github.com/latticeforge/numdom/constraint"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/generator"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
)

// genEntry is one row of the generator-shaped side being folded by the
// double-description step, tagged with its generator class. Both
// conversion directions (Constraint_System -> Generator_System and back)
// run the identical fold over this shape: H- and V-representations are
// dual descriptions of the same homogeneous cone in R^(dim+1), so the
// same partition-and-combine procedure applies whichever side is
// currently being grown, modulo how the final rows are read back out
// (materializeAsGenerators vs materializeAsConstraints below).
type genEntry struct {
	r   row.Row
	typ generator.Type
}

// negateRow returns a copy of r with every coefficient (including
// epsilon, where present) negated.
func negateRow(r row.Row) row.Row {
	coeffs := r.AllCoefficients()
	neg := make([]scalar.Coefficient, len(coeffs))
	for i, v := range coeffs {
		neg[i] = v.Neg()
	}
	out := row.FromCoefficients(neg, r.Topology(), r.Kind())
	if r.Topology() == core.NotClosed {
		if e, err := r.Epsilon(); err == nil {
			_ = out.SetEpsilon(e.Neg())
		}
	}
	return out
}

// combineRows returns the nonnegative combination of pr and nr that
// saturates the delta row against which spP, spN (their respective
// scalar products with delta) were computed: weight (-spN) on pr and
// spP on nr, both positive since spP > 0 > spN.
func combineRows(pr row.Row, spP scalar.Coefficient, nr row.Row, spN scalar.Coefficient) row.Row {
	wp := spN.Neg()
	wn := spP
	pc := pr.AllCoefficients()
	nc := nr.AllCoefficients()
	out := make([]scalar.Coefficient, len(pc))
	for i := range out {
		out[i] = wp.Mul(pc[i]).Add(wn.Mul(nc[i]))
	}
	combo := row.FromCoefficients(out, pr.Topology(), row.RayPointOrInequality)
	if pr.Topology() == core.NotClosed {
		pe, errP := pr.Epsilon()
		ne, errN := nr.Epsilon()
		if errP == nil && errN == nil {
			_ = combo.SetEpsilon(wp.Mul(pe).Add(wn.Mul(ne)))
		}
	}
	return combo
}

func comboGenType(p, n genEntry) generator.Type {
	switch {
	case p.typ == generator.PointType || n.typ == generator.PointType:
		return generator.PointType
	case p.typ == generator.ClosurePointType || n.typ == generator.ClosurePointType:
		return generator.ClosurePointType
	default:
		return generator.RayType
	}
}

// foldOnce partitions side against delta (satisfying/saturating/
// violating, by the sign of their scalar product) and returns the
// updated side: saturating and satisfying rows survive unchanged,
// violating rows are dropped, and every (satisfying, violating) pair is
// replaced by their combination that saturates delta. A LineType entry
// that does not saturate delta is first split into two opposite
// RayType entries, since only one of its two directions can remain.
func foldOnce(side []genEntry, delta row.Row) ([]genEntry, error) {
	expanded := make([]genEntry, 0, len(side)+1)
	for _, e := range side {
		if e.typ == generator.LineType {
			sp, err := row.ScalarProduct(e.r, delta)
			if err != nil {
				return nil, err
			}
			if sp.IsZero() {
				expanded = append(expanded, e)
				continue
			}
			expanded = append(expanded, genEntry{r: e.r, typ: generator.RayType}, genEntry{r: negateRow(e.r), typ: generator.RayType})
			continue
		}
		expanded = append(expanded, e)
	}

	type classified struct {
		e  genEntry
		sp scalar.Coefficient
	}
	var sat, pos, neg []classified
	for _, e := range expanded {
		sp, err := row.ScalarProduct(e.r, delta)
		if err != nil {
			return nil, err
		}
		switch {
		case sp.IsZero():
			sat = append(sat, classified{e, sp})
		case sp.Sign() > 0:
			pos = append(pos, classified{e, sp})
		default:
			neg = append(neg, classified{e, sp})
		}
	}

	out := make([]genEntry, 0, len(sat)+len(pos)+len(pos)*len(neg))
	for _, c := range sat {
		out = append(out, c.e)
	}
	for _, c := range pos {
		out = append(out, c.e)
	}
	for _, p := range pos {
		for _, n := range neg {
			out = append(out, genEntry{r: combineRows(p.e.r, p.sp, n.e.r, n.sp), typ: comboGenType(p.e, n.e)})
		}
	}
	return out, nil
}

// foldBidirectional folds delta into side, and if bidir (an equality
// constraint, or a line generator) also folds -delta, since both halves
// of a bidirectional row must hold.
func foldBidirectional(side []genEntry, delta row.Row, bidir bool) ([]genEntry, error) {
	side, err := foldOnce(side, delta)
	if err != nil {
		return nil, err
	}
	if !bidir {
		return side, nil
	}
	return foldOnce(side, negateRow(delta))
}

func universeGenEntries(dim int, topology core.Topology) []genEntry {
	entries := make([]genEntry, 0, dim+1)
	originCoeffs := make([]scalar.Coefficient, dim+1)
	originCoeffs[0] = scalar.NewCoefficient(1)
	for i := 1; i <= dim; i++ {
		originCoeffs[i] = scalar.NewCoefficient(0)
	}
	originRow := row.FromCoefficients(originCoeffs, topology, row.RayPointOrInequality)
	if topology == core.NotClosed {
		_ = originRow.SetEpsilon(scalar.NewCoefficient(1))
	}
	entries = append(entries, genEntry{r: originRow, typ: generator.PointType})
	for i := 1; i <= dim; i++ {
		coeffs := make([]scalar.Coefficient, dim+1)
		for j := range coeffs {
			coeffs[j] = scalar.NewCoefficient(0)
		}
		coeffs[i] = scalar.NewCoefficient(1)
		lr := row.FromCoefficients(coeffs, topology, row.LineOrEquality)
		entries = append(entries, genEntry{r: lr, typ: generator.LineType})
	}
	return entries
}

func anyPointClass(entries []genEntry) bool {
	for _, e := range entries {
		if e.typ == generator.PointType || e.typ == generator.ClosurePointType {
			return true
		}
	}
	return false
}

func materializeAsGenerators(entries []genEntry, dim int, topology core.Topology) (*generator.System, error) {
	gs := generator.NewSystem(dim, topology)
	for _, e := range entries {
		if err := gs.Insert(generator.FromRow(e.r, e.typ)); err != nil {
			return nil, err
		}
	}
	return gs, nil
}

func isSaturatedByAll(r row.Row, gens []generator.Generator) bool {
	for _, g := range gens {
		sp, err := row.ScalarProduct(r, g.Row())
		if err != nil || !sp.IsZero() {
			return false
		}
	}
	return true
}

func materializeAsConstraints(entries []genEntry, dim int, topology core.Topology, gens []generator.Generator) (*constraint.System, error) {
	cs := constraint.NewSystem(dim, topology)
	for _, e := range entries {
		typ := constraint.NonStrictInequalityType
		if isSaturatedByAll(e.r, gens) {
			typ = constraint.EqualityType
		}
		c, err := constraint.FromRow(e.r, typ)
		if err != nil {
			return nil, err
		}
		if err := cs.Insert(c); err != nil {
			return nil, err
		}
	}
	return cs, nil
}

// constraintsToGenerators computes the V-representation of the
// polyhedron described by cs, by folding each constraint row into the
// universe generator system one at a time. Returns (nil, nil) when the
// resulting system retains no point, i.e. the polyhedron is empty.
func constraintsToGenerators(cs *constraint.System) (*generator.System, error) {
	dim, topology := cs.Dim(), cs.Topology()
	side := universeGenEntries(dim, topology)
	for _, c := range cs.All() {
		var err error
		side, err = foldBidirectional(side, c.Row(), c.IsEquality())
		if err != nil {
			return nil, err
		}
	}
	if !anyPointClass(side) {
		return nil, nil
	}
	return materializeAsGenerators(side, dim, topology)
}

// generatorsToConstraints computes the H-representation of the
// polyhedron described by gs, by the dual fold: a constraint row c holds
// on the polyhedron exactly when c·g >= 0 for every generator g (= 0 for
// a line), so the fold starts from the whole row space, a line along
// every slot including the inhomogeneous slot 0, and folds gs's own rows
// into it. The survivors read back as constraint rows; a surviving line,
// like any row saturated by every generator, becomes an equality.
func generatorsToConstraints(gs *generator.System) (*constraint.System, error) {
	dim, topology := gs.Dim(), gs.Topology()
	side := universeGenEntries(dim, topology)
	e0 := side[0].r.Clone()
	_ = e0.SetEpsilon(scalar.NewCoefficient(0))
	side[0] = genEntry{r: e0, typ: generator.LineType}
	gens := gs.All()
	for _, g := range gens {
		var err error
		side, err = foldBidirectional(side, g.Row(), g.IsLine())
		if err != nil {
			return nil, err
		}
	}
	return materializeAsConstraints(side, dim, topology, gens)
}
