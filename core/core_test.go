package core_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/latticeforge/numdom/core"
	"github.com/stretchr/testify/require"
)

func TestDimensionErrorUnwraps(t *testing.T) {
	err := core.NewDimensionError("Foo", 2, 3)
	require.ErrorIs(t, err, core.ErrDimensionIncompatible)

	var de *core.DimensionError
	require.True(t, errors.As(err, &de))
	require.Equal(t, 2, de.LHSDim)
	require.Equal(t, 3, de.RHSDim)
}

func TestLengthErrorUnwraps(t *testing.T) {
	err := core.NewLengthError("Box.New", "space dimension exceeds maximum")
	require.ErrorIs(t, err, core.ErrLength)
}

func TestInvalidArgumentErrorUnwraps(t *testing.T) {
	err := core.NewInvalidArgumentError("GeneralizedAffineImage", "relation symbol NOT_EQUAL is disallowed")
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestRuntimeErrorUnwraps(t *testing.T) {
	err := core.NewRuntimeError("Polyhedron.minimize")
	require.ErrorIs(t, err, core.ErrRuntime)
}

func TestCheckAbandonedNilContext(t *testing.T) {
	require.NoError(t, core.CheckAbandoned(nil, "Polyhedron.minimize"))
}

func TestCheckAbandonedCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := core.CheckAbandoned(ctx, "Grid.strongReduce")
	require.ErrorIs(t, err, core.ErrAbandoned)

	var ae *core.AbandonedError
	require.True(t, errors.As(err, &ae))
	require.Equal(t, "Grid.strongReduce", ae.Method)
}

func TestCheckAbandonedDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)
	require.ErrorIs(t, core.CheckAbandoned(ctx, "Box.PropagateConstraint"), core.ErrAbandoned)
}

func TestCheckAbandonedLiveContext(t *testing.T) {
	require.NoError(t, core.CheckAbandoned(context.Background(), "Polyhedron.minimize"))
}

func TestInitTeardownIdempotent(t *testing.T) {
	core.Init()
	require.True(t, core.Initialized())
	core.Init() // no-op second call
	require.True(t, core.Initialized())

	core.Teardown()
	require.False(t, core.Initialized())
	core.Teardown() // no-op second call
	require.False(t, core.Initialized())
}

func TestRelationHas(t *testing.T) {
	r := core.IsIncluded | core.Saturates
	require.True(t, r.Has(core.IsIncluded))
	require.True(t, r.Has(core.Saturates))
	require.False(t, r.Has(core.IsDisjoint))
	require.False(t, core.Nothing.Has(core.IsIncluded))
}

func TestTopologyString(t *testing.T) {
	require.Equal(t, "NECESSARILY_CLOSED", core.Closed.String())
	require.Equal(t, "NOT_NECESSARILY_CLOSED", core.NotClosed.String())
}
