package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeforge/numdom/congruence"
	"github.com/latticeforge/numdom/grid"
	"github.com/latticeforge/numdom/row"
)

// relationalPair builds {2x ≡ 0 (mod 4), 2x+2y ≡ 0 (mod 4)}, whose only
// axis-aligned row on its own ("2x ≡ 0 mod 4") does not mention y at
// all: resolving the grid requires combining it with the relational
// second row to recover "y ≡ 0 (mod 2)".
func relationalPair(t *testing.T) *congruence.System {
	t.Helper()
	cs := congruence.NewSystem(2)
	require.NoError(t, cs.Insert(mustCg(t, congruence.New(row.Const(0).Coeff(1, 2), 0, 4, 2))))
	require.NoError(t, cs.Insert(mustCg(t, congruence.New(row.Const(0).Coeff(1, 2).Coeff(2, 2), 0, 4, 2))))
	return cs
}

func TestFromCongruencesReducesRelationalCongruence(t *testing.T) {
	g := grid.FromCongruences(relationalPair(t))

	empty, err := g.IsEmpty()
	require.NoError(t, err)
	assert.False(t, empty)

	b, err := g.ToBox()
	require.NoError(t, err)
	ivx, err := b.Interval(1)
	require.NoError(t, err)
	assert.True(t, ivx.IsUniverse())
	ivy, err := b.Interval(2)
	require.NoError(t, err)
	assert.True(t, ivy.IsUniverse())

	gg, err := g.Generators()
	require.NoError(t, err)
	assert.True(t, gg.HasPoint())
}

func TestMinimizeResolvesRelationalCongruenceIntoAxisAlignedForm(t *testing.T) {
	g := grid.FromCongruences(relationalPair(t))
	require.NoError(t, g.Minimize())

	cg, err := g.Congruences()
	require.NoError(t, err)
	for _, c := range cg.All() {
		nonzero := 0
		for i := 1; i <= c.Dim(); i++ {
			v, err := c.Coefficient(i)
			require.NoError(t, err)
			if !v.IsZero() {
				nonzero++
			}
		}
		assert.LessOrEqual(t, nonzero, 1, "expected an axis-aligned row after Minimize, got %v", c)
	}
}

func TestCongruenceSystemReduceCombinesRelationalRow(t *testing.T) {
	reduced, infeasible, ok, err := relationalPair(t).Reduce()
	require.NoError(t, err)
	require.False(t, infeasible)
	require.True(t, ok)

	seenX, seenY := false, false
	for _, c := range reduced.All() {
		idx := -1
		for i := 1; i <= c.Dim(); i++ {
			v, err := c.Coefficient(i)
			require.NoError(t, err)
			if !v.IsZero() {
				require.Equal(t, -1, idx, "row should be axis-aligned")
				idx = i
			}
		}
		switch idx {
		case 1:
			seenX = true
		case 2:
			seenY = true
		}
	}
	assert.True(t, seenX)
	assert.True(t, seenY)
}
