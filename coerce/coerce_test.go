package coerce_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeforge/numdom/bdshape"
	"github.com/latticeforge/numdom/box"
	"github.com/latticeforge/numdom/coerce"
	"github.com/latticeforge/numdom/constraint"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/grid"
	"github.com/latticeforge/numdom/interval"
	"github.com/latticeforge/numdom/octagon"
	"github.com/latticeforge/numdom/polyhedron"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
)

// boundedBox builds the 2-dimensional box [0,2] x [0,3].
func boundedBox(t *testing.T) *box.Box {
	t.Helper()
	zero, err := scalar.NewRational(0, 1)
	require.NoError(t, err)
	two, err := scalar.NewRational(2, 1)
	require.NoError(t, err)
	three, err := scalar.NewRational(3, 1)
	require.NoError(t, err)

	b := box.New(2, false)
	require.NoError(t, b.SetInterval(1, interval.Universe().LowerSet(zero, false).UpperSet(two, false)))
	require.NoError(t, b.SetInterval(2, interval.Universe().LowerSet(zero, false).UpperSet(three, false)))
	return b
}

func TestBoxDomainRoundTrip(t *testing.T) {
	d := coerce.WrapBox(box.New(2, false))
	empty, err := d.IsEmpty()
	require.NoError(t, err)
	assert.False(t, empty)
	assert.Equal(t, 2, d.Dim())

	clone, err := d.Clone()
	require.NoError(t, err)
	assert.Equal(t, 2, clone.Dim())
}

func TestPolyhedronDomainMeetWithEmpty(t *testing.T) {
	a := coerce.WrapPolyhedron(polyhedron.NewUniverse(1, core.Closed))
	b := coerce.WrapPolyhedron(polyhedron.NewEmpty(1, core.Closed))

	require.NoError(t, a.IntersectionAssign(b))
	empty, err := a.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestGridDomainToBox(t *testing.T) {
	d := coerce.WrapGrid(grid.NewUniverse(1))
	b, err := d.ToBox()
	require.NoError(t, err)
	assert.Equal(t, 1, b.Dim())
}

func TestBDShapeAndOctagonDomainMismatchRejected(t *testing.T) {
	bd := coerce.WrapBDShape(bdshape.New(1, false))
	oc := coerce.WrapOctagon(octagon.New(1, false))
	assert.ErrorIs(t, bd.UpperBoundAssign(oc), coerce.ErrDomainMismatch)
	assert.ErrorIs(t, oc.IntersectionAssign(bd), coerce.ErrDomainMismatch)
}

func TestPolyhedronFromBoxRoundTrip(t *testing.T) {
	b := boundedBox(t)
	d, err := coerce.PolyhedronFromBox(b)
	require.NoError(t, err)
	pd := d.(coerce.PolyhedronDomain)

	empty, err := pd.IsEmpty()
	require.NoError(t, err)
	assert.False(t, empty)

	back, err := pd.ToBox()
	require.NoError(t, err)
	for i := 1; i <= 2; i++ {
		want, err := b.Interval(i)
		require.NoError(t, err)
		got, err := back.Interval(i)
		require.NoError(t, err)
		assert.Equal(t, want.Lower().Value().Float64(), got.Lower().Value().Float64())
		assert.Equal(t, want.Upper().Value().Float64(), got.Upper().Value().Float64())
	}
}

// TestPolyhedronFromBoxContainsNonBoxPolyhedron exercises
// Polyhedron::from(Box): ph is the triangle x>=0, y>=0, x+y<=1, whose
// Polynomial-complexity ToBox, read off the single-variable constraints
// alone, is the quadrant x>=0, y>=0. Converting that box back into a
// Polyhedron must produce a shape that contains every point of ph (ph
// minus the box is empty) while itself holding points ph does not
// (the box minus ph is not), i.e. strict containment.
func TestPolyhedronFromBoxContainsNonBoxPolyhedron(t *testing.T) {
	x := row.Var(1)
	y := row.Var(2)

	cXGeq0, err := constraint.Geq(x, 0, 2, core.Closed)
	require.NoError(t, err)
	cYGeq0, err := constraint.Geq(y, 0, 2, core.Closed)
	require.NoError(t, err)
	cSumLeq1, err := constraint.Leq(x.Plus(y), 1, 2, core.Closed)
	require.NoError(t, err)

	ph := polyhedron.NewUniverse(2, core.Closed)
	require.NoError(t, ph.AddConstraints([]constraint.Constraint{cXGeq0, cYGeq0, cSumLeq1}))

	square, err := ph.ToBox(context.Background(), core.Polynomial)
	require.NoError(t, err)

	d, err := coerce.PolyhedronFromBox(square)
	require.NoError(t, err)
	ph2 := d.(coerce.PolyhedronDomain).P

	containsDiff, err := ph.Clone()
	require.NoError(t, err)
	require.NoError(t, containsDiff.PolyDifferenceAssign(ph2))
	empty, err := containsDiff.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty, "ph should be entirely contained in Polyhedron::from(ph.ToBox())")

	strictDiff, err := ph2.Clone()
	require.NoError(t, err)
	require.NoError(t, strictDiff.PolyDifferenceAssign(ph))
	empty, err = strictDiff.IsEmpty()
	require.NoError(t, err)
	assert.False(t, empty, "Polyhedron::from(ph.ToBox()) should strictly contain ph")
}

func TestGridFromBoxPinsSingletonDimensions(t *testing.T) {
	b := box.New(2, false)
	one, err := scalar.NewRational(1, 1)
	require.NoError(t, err)
	require.NoError(t, b.SetInterval(1, interval.FromRational(one)))

	d, err := coerce.GridFromBox(b)
	require.NoError(t, err)
	gd := d.(coerce.GridDomain)

	empty, err := gd.IsEmpty()
	require.NoError(t, err)
	assert.False(t, empty)

	back, err := gd.ToBox()
	require.NoError(t, err)
	pinned, err := back.Interval(1)
	require.NoError(t, err)
	assert.True(t, pinned.IsSingleton())
	free, err := back.Interval(2)
	require.NoError(t, err)
	assert.True(t, free.IsUniverse())
}

func TestBDShapeAndOctagonFromBoxRoundTrip(t *testing.T) {
	b := boundedBox(t)

	bdDom, err := coerce.BDShapeFromBox(b)
	require.NoError(t, err)
	empty, err := bdDom.IsEmpty()
	require.NoError(t, err)
	assert.False(t, empty)

	ocDom, err := coerce.OctagonFromBox(b)
	require.NoError(t, err)
	empty, err = ocDom.IsEmpty()
	require.NoError(t, err)
	assert.False(t, empty)
}
