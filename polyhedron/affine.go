package polyhedron

import (
	"github.com/latticeforge/numdom/constraint"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/generator"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
)

func isZeroHomogeneous(r row.Row) bool {
	for i := 1; i <= r.Dim(); i++ {
		v, _ := r.At(i)
		if !v.IsZero() {
			return false
		}
	}
	return true
}

// transformGeneratorRow applies the affine map x_v := expr(x)/k to a
// single generator's row, rescaling the other coordinates (and the
// divisor, for points) to keep them over the same local denominator as
// the new x_v coordinate. For a direction (line or ray) the map's
// constant term is dropped, since translation does not affect a
// direction.
func transformGeneratorRow(g generator.Generator, v int, expr row.LinearExpression, kCoef scalar.Coefficient, dim int, topology core.Topology) (row.Row, error) {
	isPoint := g.IsPointOrClosurePoint()
	d := g.Divisor()
	s := scalar.NewCoefficient(0)
	for i := 1; i <= dim; i++ {
		a := expr.CoefficientOf(i)
		if a.IsZero() {
			continue
		}
		gi, err := g.Row().At(i)
		if err != nil {
			return row.Row{}, err
		}
		s = s.Add(a.Mul(gi))
	}
	if isPoint {
		s = s.Add(expr.Constant().Mul(d))
	}

	coeffs := make([]scalar.Coefficient, dim+1)
	coeffs[0] = scalar.NewCoefficient(0)
	if isPoint {
		coeffs[0] = d.Mul(kCoef)
	}
	for j := 1; j <= dim; j++ {
		if j == v {
			coeffs[j] = s
			continue
		}
		gj, err := g.Row().At(j)
		if err != nil {
			return row.Row{}, err
		}
		if isPoint {
			coeffs[j] = gj.Mul(kCoef)
		} else {
			coeffs[j] = gj
		}
	}
	out := row.FromCoefficients(coeffs, topology, g.Row().Kind())
	if topology == core.NotClosed {
		if eps, err := g.Row().Epsilon(); err == nil {
			if isPoint {
				_ = out.SetEpsilon(eps.Mul(kCoef))
			} else {
				_ = out.SetEpsilon(eps)
			}
		}
	}
	return out, nil
}

// AffineImage replaces variable v (1-origin) by expr/k throughout the
// polyhedron. This is computed exactly by mapping every generator
// (point, ray, line) through the affine transform directly, which is
// sound and exact regardless of whether expr references v itself (e.g.
// "x1 := x1 + 1"), since each generator's own old v-coordinate is read
// before its row is overwritten.
func (p *Polyhedron) AffineImage(v int, expr row.LinearExpression, k int64) error {
	if v < 1 || v > p.dim {
		return ErrDimensionMismatch
	}
	if k <= 0 {
		return ErrZeroDivisor
	}
	empty, err := p.IsEmpty()
	if err != nil {
		return err
	}
	if empty {
		return nil
	}
	if err := p.ensureGenerators(); err != nil {
		return err
	}
	kCoef := scalar.NewCoefficient(k)
	out := generator.NewSystem(p.dim, p.topology)
	for _, g := range p.gs.All() {
		nr, err := transformGeneratorRow(g, v, expr, kCoef, p.dim, p.topology)
		if err != nil {
			return err
		}
		if g.IsLineOrRay() && isZeroHomogeneous(nr) {
			continue
		}
		if err := out.Insert(generator.FromRow(nr, g.Type())); err != nil {
			return err
		}
	}
	if !out.HasPoint() {
		*p = *NewEmpty(p.dim, p.topology)
		return nil
	}
	p.gs = out
	p.cs = nil
	p.status = Status{GeneratorsUpToDate: true}
	return nil
}

// unconstrainAssign existentially quantifies dimension v: every
// generator's v-coordinate is zeroed (projecting the generator hull onto
// the v=0 hyperplane) and a line along axis v is added to re-admit every
// value of v, making the result the cylinder over the projection of p
// along v — the standard "forget" operation, computed exactly via the
// V-representation.
func (p *Polyhedron) unconstrainAssign(v int) error {
	if v < 1 || v > p.dim {
		return ErrDimensionMismatch
	}
	empty, err := p.IsEmpty()
	if err != nil {
		return err
	}
	if empty {
		return nil
	}
	if err := p.ensureGenerators(); err != nil {
		return err
	}
	out := generator.NewSystem(p.dim, p.topology)
	for _, g := range p.gs.All() {
		nr := g.Row().Clone()
		_ = nr.Set(v, scalar.NewCoefficient(0))
		if g.IsLineOrRay() && isZeroHomogeneous(nr) {
			continue
		}
		if err := out.Insert(generator.FromRow(nr, g.Type())); err != nil {
			return err
		}
	}
	axisCoeffs := make([]scalar.Coefficient, p.dim+1)
	for i := range axisCoeffs {
		axisCoeffs[i] = scalar.NewCoefficient(0)
	}
	axisCoeffs[v] = scalar.NewCoefficient(1)
	axisRow := row.FromCoefficients(axisCoeffs, p.topology, row.LineOrEquality)
	if err := out.Insert(generator.FromRow(axisRow, generator.LineType)); err != nil {
		return err
	}
	p.gs = out
	p.cs = nil
	p.status = Status{GeneratorsUpToDate: true}
	return nil
}

// GeneralizedAffineImage assigns v the relation "v relsym expr/k" (k>0),
// by forgetting v's old value and then constraining the now-free v
// against expr. Requires expr not to reference v: the forget step
// discards exactly the information a v-dependent expr would need, so
// this construction (unlike AffineImage) only covers expressions in the
// other variables. NotEqual is rejected, matching the relation tables'
// treatment of it as not a usable ordering.
func (p *Polyhedron) GeneralizedAffineImage(v int, relsym core.RelSym, expr row.LinearExpression, k int64) error {
	if v < 1 || v > p.dim {
		return ErrDimensionMismatch
	}
	if k <= 0 {
		return ErrZeroDivisor
	}
	if relsym == core.NotEqual {
		return ErrNotEqualRelation
	}
	if !expr.CoefficientOf(v).IsZero() {
		return ErrExprReferencesVar
	}
	if relsym == core.Equal {
		return p.AffineImage(v, expr, k)
	}
	empty, err := p.IsEmpty()
	if err != nil {
		return err
	}
	if empty {
		return nil
	}
	if err := p.unconstrainAssign(v); err != nil {
		return err
	}
	comb := row.Var(v).Scale(k).Minus(expr)
	var link constraint.Constraint
	switch relsym {
	case core.LessOrEqual:
		link, err = constraint.Leq(comb, 0, p.dim, p.topology)
	case core.GreaterOrEqual:
		link, err = constraint.Geq(comb, 0, p.dim, p.topology)
	case core.LessThan:
		link, err = constraint.Lt(comb, 0, p.dim, p.topology)
	case core.GreaterThan:
		link, err = constraint.Gt(comb, 0, p.dim, p.topology)
	default:
		return ErrNotEqualRelation
	}
	if err != nil {
		return err
	}
	return p.AddConstraint(link)
}

// BoundedAffineImage assigns v a value bounded between lb/d and ub/d
// (d>0), by forgetting v and constraining it on both sides. Like
// GeneralizedAffineImage, lb and ub must not reference v.
func (p *Polyhedron) BoundedAffineImage(v int, lb, ub row.LinearExpression, d int64) error {
	if v < 1 || v > p.dim {
		return ErrDimensionMismatch
	}
	if d <= 0 {
		return ErrZeroDivisor
	}
	if !lb.CoefficientOf(v).IsZero() || !ub.CoefficientOf(v).IsZero() {
		return ErrExprReferencesVar
	}
	empty, err := p.IsEmpty()
	if err != nil {
		return err
	}
	if empty {
		return nil
	}
	if err := p.unconstrainAssign(v); err != nil {
		return err
	}
	lower := row.Var(v).Scale(d).Minus(lb)
	lowC, err := constraint.Geq(lower, 0, p.dim, p.topology)
	if err != nil {
		return err
	}
	upper := ub.Minus(row.Var(v).Scale(d))
	upC, err := constraint.Geq(upper, 0, p.dim, p.topology)
	if err != nil {
		return err
	}
	return p.AddConstraints([]constraint.Constraint{lowC, upC})
}
