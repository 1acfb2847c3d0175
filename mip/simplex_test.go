package mip_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeforge/numdom/constraint"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/mip"
	"github.com/latticeforge/numdom/row"
)

func mustC(t *testing.T, c constraint.Constraint, err error) constraint.Constraint {
	t.Helper()
	require.NoError(t, err)
	return c
}

func TestMaximizeBoundedBox(t *testing.T) {
	dim := 2
	cs := constraint.NewSystem(dim, core.Closed)
	require.NoError(t, cs.Insert(mustC(t, constraint.Geq(row.Var(1), 0, dim, core.Closed))))
	require.NoError(t, cs.Insert(mustC(t, constraint.Leq(row.Var(1), 2, dim, core.Closed))))
	require.NoError(t, cs.Insert(mustC(t, constraint.Geq(row.Var(2), 0, dim, core.Closed))))
	require.NoError(t, cs.Insert(mustC(t, constraint.Leq(row.Var(2), 3, dim, core.Closed))))

	objective := row.Var(1).Plus(row.Var(2))
	res, err := mip.Maximize(context.Background(), cs, objective)
	require.NoError(t, err)
	require.Equal(t, mip.Optimal, res.Status)
	assert.Equal(t, "5", res.Value.String())
}

func TestMinimizeBoundedBox(t *testing.T) {
	dim := 2
	cs := constraint.NewSystem(dim, core.Closed)
	require.NoError(t, cs.Insert(mustC(t, constraint.Geq(row.Var(1), -1, dim, core.Closed))))
	require.NoError(t, cs.Insert(mustC(t, constraint.Leq(row.Var(1), 2, dim, core.Closed))))
	require.NoError(t, cs.Insert(mustC(t, constraint.Geq(row.Var(2), -4, dim, core.Closed))))
	require.NoError(t, cs.Insert(mustC(t, constraint.Leq(row.Var(2), 3, dim, core.Closed))))

	res, err := mip.Minimize(context.Background(), cs, row.Var(1).Plus(row.Var(2)))
	require.NoError(t, err)
	require.Equal(t, mip.Optimal, res.Status)
	assert.Equal(t, "-5", res.Value.String())
}

func TestInfeasibleSystemReportsInfeasible(t *testing.T) {
	dim := 1
	cs := constraint.NewSystem(dim, core.Closed)
	require.NoError(t, cs.Insert(mustC(t, constraint.Geq(row.Var(1), 1, dim, core.Closed))))
	require.NoError(t, cs.Insert(mustC(t, constraint.Leq(row.Var(1), 0, dim, core.Closed))))

	res, err := mip.Maximize(context.Background(), cs, row.Var(1))
	require.NoError(t, err)
	assert.Equal(t, mip.Infeasible, res.Status)
}

func TestUnboundedSystemReportsUnbounded(t *testing.T) {
	dim := 1
	cs := constraint.NewSystem(dim, core.Closed)
	require.NoError(t, cs.Insert(mustC(t, constraint.Geq(row.Var(1), 0, dim, core.Closed))))

	res, err := mip.Maximize(context.Background(), cs, row.Var(1))
	require.NoError(t, err)
	assert.Equal(t, mip.Unbounded, res.Status)
}

func TestAffineObjectiveAddsConstant(t *testing.T) {
	dim := 1
	cs := constraint.NewSystem(dim, core.Closed)
	require.NoError(t, cs.Insert(mustC(t, constraint.Geq(row.Var(1), 0, dim, core.Closed))))
	require.NoError(t, cs.Insert(mustC(t, constraint.Leq(row.Var(1), 1, dim, core.Closed))))

	res, err := mip.Maximize(context.Background(), cs, row.Var(1).PlusConst(10))
	require.NoError(t, err)
	require.Equal(t, mip.Optimal, res.Status)
	assert.Equal(t, "11", res.Value.String())
}

func TestContextCancellationAbandonsSolve(t *testing.T) {
	dim := 1
	cs := constraint.NewSystem(dim, core.Closed)
	require.NoError(t, cs.Insert(mustC(t, constraint.Geq(row.Var(1), 0, dim, core.Closed))))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := mip.Maximize(ctx, cs, row.Var(1))
	require.Error(t, err)
}
