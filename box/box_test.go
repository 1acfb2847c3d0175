package box_test

import (
	"context"
	"testing"

	"github.com/latticeforge/numdom/box"
	"github.com/latticeforge/numdom/constraint"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/generator"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
	"github.com/stretchr/testify/require"
)

func rat(t *testing.T, n, d int64) scalar.Rational {
	t.Helper()
	r, err := scalar.NewRational(n, d)
	require.NoError(t, err)
	return r
}

func TestNewUniverseAndEmpty(t *testing.T) {
	u := box.New(2, false)
	require.False(t, u.IsEmpty())
	e := box.New(2, true)
	require.True(t, e.IsEmpty())
}

func TestRefineWithConstraintBoundsInterval(t *testing.T) {
	b := box.New(1, false)
	leq, err := constraint.Leq(row.Var(1), 5, 1, core.Closed)
	require.NoError(t, err)
	require.NoError(t, b.RefineWithConstraint(leq))
	geq, err := constraint.Geq(row.Var(1), 1, 1, core.Closed)
	require.NoError(t, err)
	require.NoError(t, b.RefineWithConstraint(geq))
	iv, err := b.Interval(1)
	require.NoError(t, err)
	require.Equal(t, 0, iv.Lower().Value().Cmp(rat(t, 1, 1)))
	require.Equal(t, 0, iv.Upper().Value().Cmp(rat(t, 5, 1)))
}

func TestAddConstraintNoCheckRejectsRelational(t *testing.T) {
	b := box.New(2, false)
	c, err := constraint.Leq(row.Var(1).Plus(row.Var(2)), 3, 2, core.Closed)
	require.NoError(t, err)
	err = b.AddConstraintNoCheck(c)
	require.ErrorIs(t, err, box.ErrNotIntervalConstraint)
}

func TestFromGeneratorSystemBuildsHull(t *testing.T) {
	gs := generator.NewSystem(2, core.Closed)
	p1, err := generator.Point(row.Const(0), 1, 2, core.Closed)
	require.NoError(t, err)
	p2, err := generator.Point(row.Var(1).Scale(2).Plus(row.Var(2).Scale(3)), 1, 2, core.Closed)
	require.NoError(t, err)
	require.NoError(t, gs.Insert(p1))
	require.NoError(t, gs.Insert(p2))
	b, err := box.FromGeneratorSystem(gs)
	require.NoError(t, err)
	iv1, err := b.Interval(1)
	require.NoError(t, err)
	require.Equal(t, 0, iv1.Lower().Value().Cmp(rat(t, 0, 1)))
	require.Equal(t, 0, iv1.Upper().Value().Cmp(rat(t, 2, 1)))
	iv2, err := b.Interval(2)
	require.NoError(t, err)
	require.Equal(t, 0, iv2.Upper().Value().Cmp(rat(t, 3, 1)))
}

func TestFromGeneratorSystemRejectsPointlessSystem(t *testing.T) {
	gs := generator.NewSystem(1, core.Closed)
	ray, err := generator.Ray(row.Var(1), 1, core.Closed)
	require.NoError(t, err)
	require.NoError(t, gs.Insert(ray))
	_, err = box.FromGeneratorSystem(gs)
	require.ErrorIs(t, err, generator.ErrNoPointInSystem)
}

func buildInterval1D(t *testing.T, lo, hi int64) *box.Box {
	t.Helper()
	b := box.New(1, false)
	leq, err := constraint.Leq(row.Var(1), hi, 1, core.Closed)
	require.NoError(t, err)
	geq, err := constraint.Geq(row.Var(1), lo, 1, core.Closed)
	require.NoError(t, err)
	require.NoError(t, b.RefineWithConstraint(leq))
	require.NoError(t, b.RefineWithConstraint(geq))
	return b
}

func TestIntersectionAssign(t *testing.T) {
	a := buildInterval1D(t, 0, 5)
	c := buildInterval1D(t, 2, 10)
	require.NoError(t, a.IntersectionAssign(c))
	iv, _ := a.Interval(1)
	require.Equal(t, 0, iv.Lower().Value().Cmp(rat(t, 2, 1)))
	require.Equal(t, 0, iv.Upper().Value().Cmp(rat(t, 5, 1)))
}

func TestUpperBoundAssign(t *testing.T) {
	a := buildInterval1D(t, 0, 5)
	c := buildInterval1D(t, 2, 10)
	require.NoError(t, a.UpperBoundAssign(c))
	iv, _ := a.Interval(1)
	require.Equal(t, 0, iv.Lower().Value().Cmp(rat(t, 0, 1)))
	require.Equal(t, 0, iv.Upper().Value().Cmp(rat(t, 10, 1)))
}

func TestUpperBoundAssignIfExactDetectsGap(t *testing.T) {
	a := buildInterval1D(t, 0, 1)
	c := buildInterval1D(t, 5, 10)
	exact, err := a.UpperBoundAssignIfExact(c)
	require.NoError(t, err)
	require.False(t, exact)
}

func TestDifferenceAssignSingleAxis(t *testing.T) {
	a := buildInterval1D(t, 0, 10)
	c := buildInterval1D(t, 0, 4)
	ok, err := a.DifferenceAssign(c)
	require.NoError(t, err)
	require.True(t, ok)
	iv, _ := a.Interval(1)
	require.True(t, iv.Lower().Open())
	require.Equal(t, 0, iv.Lower().Value().Cmp(rat(t, 4, 1)))
}

func TestAffineImageShiftsInterval(t *testing.T) {
	b := buildInterval1D(t, 0, 5)
	require.NoError(t, b.AffineImage(1, row.Var(1).PlusConst(1), 1))
	iv, _ := b.Interval(1)
	require.Equal(t, 0, iv.Lower().Value().Cmp(rat(t, 1, 1)))
	require.Equal(t, 0, iv.Upper().Value().Cmp(rat(t, 6, 1)))
}

func TestPropagateConstraintNarrowsFreeVariable(t *testing.T) {
	b := box.New(2, false)
	require.NoError(t, b.RefineWithConstraint(mustLeq(t, row.Var(2), 8, 2)))
	require.NoError(t, b.RefineWithConstraint(mustGeq(t, row.Var(2), 8, 2)))
	// x1 + x2 <= 10  =>  x1 <= 2 once x2 is pinned to 8.
	sum, err := constraint.Leq(row.Var(1).Plus(row.Var(2)), 10, 2, core.Closed)
	require.NoError(t, err)
	require.NoError(t, b.PropagateConstraint(context.Background(), sum))
	iv, _ := b.Interval(1)
	require.True(t, iv.Upper().IsFinite())
	require.Equal(t, 0, iv.Upper().Value().Cmp(rat(t, 2, 1)))
}

func mustLeq(t *testing.T, e row.LinearExpression, k int64, dim int) constraint.Constraint {
	t.Helper()
	c, err := constraint.Leq(e, k, dim, core.Closed)
	require.NoError(t, err)
	return c
}

func mustGeq(t *testing.T, e row.LinearExpression, k int64, dim int) constraint.Constraint {
	t.Helper()
	c, err := constraint.Geq(e, k, dim, core.Closed)
	require.NoError(t, err)
	return c
}

func TestRelationWithConstraintClassifiesRanges(t *testing.T) {
	b := buildInterval1D(t, 0, 5)
	geqZero := mustGeq(t, row.Var(1), 0, 1)
	rel, err := b.RelationWithConstraint(geqZero)
	require.NoError(t, err)
	require.True(t, rel.Has(core.IsIncluded))

	geqSix := mustGeq(t, row.Var(1), 6, 1)
	rel, err = b.RelationWithConstraint(geqSix)
	require.NoError(t, err)
	require.True(t, rel.Has(core.IsDisjoint))

	geqThree := mustGeq(t, row.Var(1), 3, 1)
	rel, err = b.RelationWithConstraint(geqThree)
	require.NoError(t, err)
	require.True(t, rel.Has(core.StrictlyIntersects))
}

func TestCC76WideningAssignRelaxesToInfinity(t *testing.T) {
	a := buildInterval1D(t, 0, 0)
	c := buildInterval1D(t, 0, 100)
	require.NoError(t, a.CC76WideningAssign(c, nil, nil))
	iv, _ := a.Interval(1)
	require.True(t, iv.Upper().IsPosInf())
}
