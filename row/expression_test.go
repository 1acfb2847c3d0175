package row_test

import (
	"testing"

	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/row"
	"github.com/stretchr/testify/require"
)

func TestLinearExpressionBuild(t *testing.T) {
	e := row.Var(1).Scale(2).Plus(row.Var(2).Scale(3)).PlusConst(-5)
	require.Equal(t, 2, e.Dim())
	require.Equal(t, "2", e.CoefficientOf(1).String())
	require.Equal(t, "3", e.CoefficientOf(2).String())
	require.Equal(t, "-5", e.Constant().String())

	r, err := e.ToRow(2, core.Closed, row.RayPointOrInequality)
	require.NoError(t, err)
	v1, _ := r.At(1)
	v2, _ := r.At(2)
	require.Equal(t, "2", v1.String())
	require.Equal(t, "3", v2.String())
	require.Equal(t, "-5", r.Slot0().String())
}

func TestLinearExpressionToRowRejectsTooSmallDim(t *testing.T) {
	e := row.Var(3)
	_, err := e.ToRow(2, core.Closed, row.RayPointOrInequality)
	require.ErrorIs(t, err, row.ErrDimensionMismatch)
}
