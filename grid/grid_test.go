package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeforge/numdom/congruence"
	"github.com/latticeforge/numdom/grid"
	"github.com/latticeforge/numdom/row"
)

func mustCg(t *testing.T, c congruence.Congruence, err error) congruence.Congruence {
	t.Helper()
	require.NoError(t, err)
	return c
}

func evenCongruence(t *testing.T, dim int) congruence.Congruence {
	t.Helper()
	return mustCg(t, congruence.New(row.Var(1), 0, 2, dim))
}

func TestNewUniverseAndNewEmptyBasics(t *testing.T) {
	u := grid.NewUniverse(2)
	assert.False(t, u.Status().Empty)
	empty, err := u.IsEmpty()
	require.NoError(t, err)
	assert.False(t, empty)

	e := grid.NewEmpty(2)
	empty, err = e.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)

	zd := grid.NewUniverse(0)
	assert.True(t, zd.IsZeroDim())
	assert.True(t, zd.Status().ZeroDimUniv)
}

func TestFromCongruencesPinsExactDimensionAndFreesTheOther(t *testing.T) {
	cs := congruence.NewSystem(2)
	require.NoError(t, cs.Insert(evenCongruence(t, 2)))
	require.NoError(t, cs.Insert(mustCg(t, congruence.New(row.Var(2), 3, 0, 2))))
	g := grid.FromCongruences(cs)

	b, err := g.ToBox()
	require.NoError(t, err)
	iv1, err := b.Interval(1)
	require.NoError(t, err)
	assert.True(t, iv1.IsUniverse())
	iv2, err := b.Interval(2)
	require.NoError(t, err)
	assert.True(t, iv2.IsSingleton())
	assert.Equal(t, "3", iv2.Lower().Value().String())
}

func TestAddCongruenceInvalidatesGenerators(t *testing.T) {
	g := grid.NewUniverse(1)
	require.NoError(t, g.AddCongruence(evenCongruence(t, 1)))

	gg, err := g.Generators()
	require.NoError(t, err)
	assert.True(t, gg.HasPoint())

	b, err := g.ToBox()
	require.NoError(t, err)
	iv, err := b.Interval(1)
	require.NoError(t, err)
	assert.True(t, iv.IsUniverse())
}

func TestIntersectionAssignCombinesModuliByLcm(t *testing.T) {
	g2 := grid.FromCongruences(func() *congruence.System {
		cs := congruence.NewSystem(1)
		require.NoError(t, cs.Insert(evenCongruence(t, 1)))
		return cs
	}())
	g3 := grid.FromCongruences(func() *congruence.System {
		cs := congruence.NewSystem(1)
		require.NoError(t, cs.Insert(mustCg(t, congruence.New(row.Var(1), 0, 3, 1))))
		return cs
	}())

	require.NoError(t, g2.IntersectionAssign(g3))
	cg, err := g2.Congruences()
	require.NoError(t, err)
	require.Equal(t, 2, cg.Len())

	gg, err := g2.Generators()
	require.NoError(t, err)
	var step string
	for _, gen := range gg.All() {
		if gen.IsParameter() {
			v, err := gen.Row().At(1)
			require.NoError(t, err)
			step = v.String()
		}
	}
	assert.Equal(t, "6", step)
}

func TestGridHullAssignCoarsensStepToGcd(t *testing.T) {
	gEven := grid.FromCongruences(func() *congruence.System {
		cs := congruence.NewSystem(1)
		require.NoError(t, cs.Insert(evenCongruence(t, 1)))
		return cs
	}())
	gOdd := grid.FromCongruences(func() *congruence.System {
		cs := congruence.NewSystem(1)
		require.NoError(t, cs.Insert(mustCg(t, congruence.New(row.Var(1), 1, 2, 1))))
		return cs
	}())

	require.NoError(t, gEven.GridHullAssign(gOdd))
	cg, err := gEven.Congruences()
	require.NoError(t, err)
	require.Equal(t, 1, cg.Len())
	assert.Equal(t, "1", cg.All()[0].Modulus().String())
}

func TestConcatenateAssignBuildsCartesianProduct(t *testing.T) {
	g1 := grid.FromCongruences(func() *congruence.System {
		cs := congruence.NewSystem(1)
		require.NoError(t, cs.Insert(evenCongruence(t, 1)))
		return cs
	}())
	g2 := grid.FromCongruences(func() *congruence.System {
		cs := congruence.NewSystem(1)
		require.NoError(t, cs.Insert(mustCg(t, congruence.New(row.Var(1), 5, 0, 1))))
		return cs
	}())

	require.NoError(t, g1.ConcatenateAssign(g2))
	assert.Equal(t, 2, g1.Dim())

	b, err := g1.ToBox()
	require.NoError(t, err)
	iv2, err := b.Interval(2)
	require.NoError(t, err)
	assert.True(t, iv2.IsSingleton())
	assert.Equal(t, "5", iv2.Lower().Value().String())
}

func TestHGridWideningAssignDropsCongruenceNotHeldByLooserIterate(t *testing.T) {
	g := grid.FromCongruences(func() *congruence.System {
		cs := congruence.NewSystem(1)
		require.NoError(t, cs.Insert(evenCongruence(t, 1)))
		return cs
	}())
	h := grid.NewUniverse(1)

	require.NoError(t, g.HGridWideningAssign(h))
	cg, err := g.Congruences()
	require.NoError(t, err)
	assert.Equal(t, 0, cg.Len())
}

func TestToBoxEmptyGrid(t *testing.T) {
	g := grid.NewEmpty(2)
	b, err := g.ToBox()
	require.NoError(t, err)
	assert.True(t, b.IsEmpty())
}
