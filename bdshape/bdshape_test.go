package bdshape_test

import (
	"testing"

	"github.com/latticeforge/numdom/bdshape"
	"github.com/latticeforge/numdom/constraint"
	"github.com/latticeforge/numdom/core"
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

func mustC(t *testing.T, c constraint.Constraint, err error) constraint.Constraint {
	t.Helper()
	require.NoError(t, err)
	return c
}

func TestAddConstraintBoundsAndCloses(t *testing.T) {
	s := bdshape.New(2, false)
	require.NoError(t, s.AddConstraint(mustC(t, constraint.Leq(row.Var(1), 5, 2, core.Closed))))
	require.NoError(t, s.AddConstraint(mustC(t, constraint.Geq(row.Var(1), 0, 2, core.Closed))))
	require.NoError(t, s.AddConstraint(mustC(t, constraint.Leq(row.Var(1).Minus(row.Var(2)), 2, 2, core.Closed))))
	require.False(t, s.IsEmpty())
	b, err := s.ToBox()
	require.NoError(t, err)
	iv1, err := b.Interval(1)
	require.NoError(t, err)
	require.Equal(t, 0, iv1.Upper().Value().Cmp(rat(t, 5, 1)))
}

func TestIntersectionAssignDetectsInfeasibility(t *testing.T) {
	s := bdshape.New(1, false)
	require.NoError(t, s.AddConstraint(mustC(t, constraint.Leq(row.Var(1), 0, 1, core.Closed))))
	other := bdshape.New(1, false)
	require.NoError(t, other.AddConstraint(mustC(t, constraint.Geq(row.Var(1), 5, 1, core.Closed))))
	require.NoError(t, s.IntersectionAssign(other))
	require.True(t, s.IsEmpty())
}

func TestUpperBoundAssignJoinsRanges(t *testing.T) {
	s := bdshape.New(1, false)
	require.NoError(t, s.AddConstraint(mustC(t, constraint.Leq(row.Var(1), 5, 1, core.Closed))))
	require.NoError(t, s.AddConstraint(mustC(t, constraint.Geq(row.Var(1), 0, 1, core.Closed))))
	other := bdshape.New(1, false)
	require.NoError(t, other.AddConstraint(mustC(t, constraint.Leq(row.Var(1), 10, 1, core.Closed))))
	require.NoError(t, other.AddConstraint(mustC(t, constraint.Geq(row.Var(1), 8, 1, core.Closed))))
	require.NoError(t, s.UpperBoundAssign(other))
	b, err := s.ToBox()
	require.NoError(t, err)
	iv, err := b.Interval(1)
	require.NoError(t, err)
	require.Equal(t, 0, iv.Upper().Value().Cmp(rat(t, 10, 1)))
	require.Equal(t, 0, iv.Lower().Value().Cmp(rat(t, 0, 1)))
}

func TestWideningAssignRelaxesGrowingBound(t *testing.T) {
	s := bdshape.New(1, false)
	require.NoError(t, s.AddConstraint(mustC(t, constraint.Leq(row.Var(1), 5, 1, core.Closed))))
	other := bdshape.New(1, false)
	require.NoError(t, other.AddConstraint(mustC(t, constraint.Leq(row.Var(1), 10, 1, core.Closed))))
	require.NoError(t, s.WideningAssign(other))
	b, err := s.ToBox()
	require.NoError(t, err)
	iv, err := b.Interval(1)
	require.NoError(t, err)
	require.True(t, iv.Upper().IsPosInf())
}
