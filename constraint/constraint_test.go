package constraint_test

import (
	"testing"

	"github.com/latticeforge/numdom/constraint"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/row"
	"github.com/stretchr/testify/require"
)

func TestLeqGeqEq(t *testing.T) {
	// x + y <= 1
	c, err := constraint.Leq(row.Var(1).Plus(row.Var(2)), 1, 2, core.Closed)
	require.NoError(t, err)
	require.True(t, c.IsInequality())
	require.False(t, c.IsEquality())
	b := c.Inhomogeneous()
	require.Equal(t, "1", b.String())

	eq, err := constraint.Eq(row.Var(1), 0, 1, core.Closed)
	require.NoError(t, err)
	require.True(t, eq.IsEquality())
}

func TestStrictRequiresNotClosed(t *testing.T) {
	_, err := constraint.Gt(row.Var(1), 3, 1, core.Closed)
	require.ErrorIs(t, err, constraint.ErrStrictOnClosedTopology)

	c, err := constraint.Gt(row.Var(1), 3, 1, core.NotClosed)
	require.NoError(t, err)
	require.True(t, c.IsStrict())
}

func TestPositivityAndFalseSingletons(t *testing.T) {
	p := constraint.Positivity(core.Closed)
	require.Equal(t, "1", p.Inhomogeneous().String())

	f := constraint.False(core.Closed)
	require.Equal(t, "-1", f.Inhomogeneous().String())
}

func TestSystemInsertAndRetrieve(t *testing.T) {
	s := constraint.NewSystem(2, core.Closed)
	c1, _ := constraint.Leq(row.Var(1), 1, 2, core.Closed)
	c2, _ := constraint.Geq(row.Var(2), 0, 2, core.Closed)
	require.NoError(t, s.Insert(c1))
	require.NoError(t, s.Insert(c2))
	require.Equal(t, 2, s.Len())

	all := s.All()
	require.Len(t, all, 2)
}

func TestSystemInsertDimensionMismatch(t *testing.T) {
	s := constraint.NewSystem(2, core.Closed)
	c, _ := constraint.Leq(row.Var(1), 1, 1, core.Closed)
	err := s.Insert(c)
	require.ErrorIs(t, err, constraint.ErrDimensionMismatch)
}
