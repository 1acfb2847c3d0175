package linsys_test

import (
	"testing"

	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/linsys"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
	"github.com/stretchr/testify/require"
)

func mkRow(dim int, slot0 int64, vars ...int64) row.Row {
	r := row.New(dim, core.Closed, row.RayPointOrInequality)
	r.SetSlot0(scalar.NewCoefficient(slot0))
	for i, v := range vars {
		_ = r.Set(i+1, scalar.NewCoefficient(v))
	}
	return r
}

func TestAddRowRejectsDimensionMismatch(t *testing.T) {
	s := linsys.New(2, core.Closed)
	err := s.AddRow(mkRow(3, 0, 1, 1, 1))
	require.ErrorIs(t, err, linsys.ErrDimensionMismatch)
}

func TestAddRowRejectsTopologyMismatch(t *testing.T) {
	s := linsys.New(2, core.Closed)
	r := row.New(2, core.NotClosed, row.RayPointOrInequality)
	require.ErrorIs(t, s.AddRow(r), linsys.ErrTopologyMismatch)
}

func TestAddRowThenAddPendingRowOrdering(t *testing.T) {
	s := linsys.New(1, core.Closed)
	require.NoError(t, s.AddRow(mkRow(1, 0, 1)))
	require.NoError(t, s.AddPendingRow(mkRow(1, 0, 2)))
	require.Equal(t, 1, s.FirstPending())
	require.Equal(t, 2, s.Len())

	require.NoError(t, s.AddRow(mkRow(1, 0, 3)))
	// the new up-to-date row must land before the pending one
	require.Equal(t, 2, s.FirstPending())
	up := s.UpToDateRows()
	require.Len(t, up, 2)
}

func TestUnsetPendingRowsPromotesAll(t *testing.T) {
	s := linsys.New(1, core.Closed)
	require.NoError(t, s.AddPendingRow(mkRow(1, 0, 5)))
	require.NoError(t, s.AddPendingRow(mkRow(1, 0, 1)))
	s.UnsetPendingRows(true)
	require.Equal(t, s.Len(), s.FirstPending())
	require.True(t, s.IsSorted())
	rows := s.Rows()
	v0, _ := rows[0].At(1)
	v1, _ := rows[1].At(1)
	require.Equal(t, "1", v0.String())
	require.Equal(t, "5", v1.String())
}

func TestSortRowsMergesDuplicatesInUpToDateOnly(t *testing.T) {
	s := linsys.New(1, core.Closed)
	require.NoError(t, s.AddRow(mkRow(1, 0, 1)))
	require.NoError(t, s.AddRow(mkRow(1, 0, 1)))
	require.NoError(t, s.AddPendingRow(mkRow(1, 0, 1)))
	s.SortRows()
	require.Equal(t, 1, s.FirstPending()) // duplicates among up-to-date merged
	require.Equal(t, 2, s.Len())          // pending row untouched
}

func TestAddRemoveColumns(t *testing.T) {
	s := linsys.New(1, core.Closed)
	require.NoError(t, s.AddRow(mkRow(1, 0, 9)))
	require.NoError(t, s.AddZeroColumns(2))
	require.Equal(t, 3, s.Dim())
	r, _ := s.Row(0)
	require.Equal(t, 3, r.Dim())

	require.NoError(t, s.RemoveTrailingColumns(2))
	require.Equal(t, 1, s.Dim())
}

func TestAddZeroColumnsOverflow(t *testing.T) {
	s := linsys.New(core.MaxSpaceDimension, core.Closed)
	err := s.AddZeroColumns(1)
	require.ErrorIs(t, err, core.ErrLength)
}

func TestPermuteColumnsRotatesCycle(t *testing.T) {
	s := linsys.New(3, core.Closed)
	require.NoError(t, s.AddRow(mkRow(3, 0, 10, 20, 30)))
	require.NoError(t, s.PermuteColumns([]int{1, 2, 3, 0}))
	r, _ := s.Row(0)
	v1, _ := r.At(1)
	v2, _ := r.At(2)
	v3, _ := r.At(3)
	require.Equal(t, "20", v1.String())
	require.Equal(t, "30", v2.String())
	require.Equal(t, "10", v3.String())
}
