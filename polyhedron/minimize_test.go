package polyhedron_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/generator"
	"github.com/latticeforge/numdom/polyhedron"
	"github.com/latticeforge/numdom/row"
)

// TestStronglyMinimizeKeepsLoadBearingClosurePoint covers {point(0),
// closure_point(1)}, the generator system for "0 <= x < 1": the
// closure point marks a supremum the shape approaches but never
// reaches, and has no coinciding point, so StronglyMinimize must leave
// both generators untouched.
func TestStronglyMinimizeKeepsLoadBearingClosurePoint(t *testing.T) {
	gs := generator.NewSystem(1, core.NotClosed)
	pt, err := generator.Point(row.Const(0), 1, 1, core.NotClosed)
	require.NoError(t, err)
	cp, err := generator.ClosurePoint(row.Const(1), 1, 1, core.NotClosed)
	require.NoError(t, err)
	require.NoError(t, gs.Insert(pt))
	require.NoError(t, gs.Insert(cp))

	p, err := polyhedron.FromGenerators(gs)
	require.NoError(t, err)
	require.NoError(t, p.StronglyMinimize())

	out, err := p.Generators()
	require.NoError(t, err)
	var points, closurePoints int
	for _, g := range out.All() {
		if g.IsPoint() {
			points++
		}
		if g.IsClosurePoint() {
			closurePoints++
		}
	}
	assert.Equal(t, 1, points)
	assert.Equal(t, 1, closurePoints, "closure_point(1) has no coinciding point and must survive")
}

// TestStronglyMinimizeDropsClosurePointCoincidingWithPoint covers the
// case the review comment actually asked for: a closure point whose
// coordinates match an existing point contributes nothing once the
// point itself is present, and StronglyMinimize should remove it.
func TestStronglyMinimizeDropsClosurePointCoincidingWithPoint(t *testing.T) {
	gs := generator.NewSystem(1, core.NotClosed)
	pt, err := generator.Point(row.Const(0), 1, 1, core.NotClosed)
	require.NoError(t, err)
	cp, err := generator.ClosurePoint(row.Const(0), 1, 1, core.NotClosed)
	require.NoError(t, err)
	require.NoError(t, gs.Insert(pt))
	require.NoError(t, gs.Insert(cp))

	p, err := polyhedron.FromGenerators(gs)
	require.NoError(t, err)
	require.NoError(t, p.StronglyMinimize())

	out, err := p.Generators()
	require.NoError(t, err)
	var points, closurePoints int
	for _, g := range out.All() {
		if g.IsPoint() {
			points++
		}
		if g.IsClosurePoint() {
			closurePoints++
		}
	}
	assert.Equal(t, 1, points)
	assert.Equal(t, 0, closurePoints)
}
