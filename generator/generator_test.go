package generator_test

import (
	"testing"

	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/generator"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
	"github.com/stretchr/testify/require"
)

func TestPointDivisorAndCoordinate(t *testing.T) {
	// point (2,4)/2 = (1,2)
	expr := row.Var(1).Coeff(1, 2).Plus(row.Var(2).Coeff(2, 4))
	g, err := generator.Point(expr, 2, 2, core.Closed)
	require.NoError(t, err)
	require.True(t, g.IsPoint())
	require.Equal(t, "2", g.Divisor().String())

	c1, err := g.Coordinate(1)
	require.NoError(t, err)
	one, _ := scalar.NewRational(1, 1)
	require.Equal(t, 0, c1.Cmp(one))
}

func TestPointRejectsNonPositiveDivisor(t *testing.T) {
	_, err := generator.Point(row.Var(1), 0, 1, core.Closed)
	require.ErrorIs(t, err, generator.ErrNonPositiveDivisor)
}

func TestClosurePointRequiresNotClosed(t *testing.T) {
	_, err := generator.ClosurePoint(row.Var(1), 1, 1, core.Closed)
	require.ErrorIs(t, err, generator.ErrClosurePointOnClosedTopology)

	g, err := generator.ClosurePoint(row.Var(1), 1, 1, core.NotClosed)
	require.NoError(t, err)
	require.True(t, g.IsClosurePoint())
}

func TestLineAndRayIgnoreConstant(t *testing.T) {
	l, err := generator.Line(row.Var(1).PlusConst(99), 1, core.Closed)
	require.NoError(t, err)
	require.True(t, l.IsLine())
	require.Equal(t, "0", l.Row().Slot0().String())
}

func TestSystemInsertAndHasPoint(t *testing.T) {
	s := generator.NewSystem(2, core.Closed)
	l, _ := generator.Line(row.Var(1), 2, core.Closed)
	require.NoError(t, s.Insert(l))
	require.False(t, s.HasPoint())

	p, _ := generator.Point(row.Var(1), 1, 2, core.Closed)
	require.NoError(t, s.Insert(p))
	require.True(t, s.HasPoint())
	require.Equal(t, 2, s.Len())
}

func TestZeroDimPoint(t *testing.T) {
	g := generator.ZeroDimPoint(core.Closed)
	require.True(t, g.IsPoint())
	require.Equal(t, 0, g.Dim())
}
