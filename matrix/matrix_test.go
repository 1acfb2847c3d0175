package matrix_test

import (
	"testing"

	"github.com/latticeforge/numdom/matrix"
	"github.com/latticeforge/numdom/scalar"
	"github.com/stretchr/testify/require"
)

func rat(t *testing.T, n, d int64) scalar.Rational {
	t.Helper()
	r, err := scalar.NewRational(n, d)
	require.NoError(t, err)
	return r
}

func TestDenseSetAtRoundTrip(t *testing.T) {
	m := matrix.NewDense(2, 2)
	require.NoError(t, m.Set(0, 1, rat(t, 3, 1)))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0, v.Cmp(rat(t, 3, 1)))
}

func TestDenseOutOfRange(t *testing.T) {
	m := matrix.NewDense(1, 1)
	_, err := m.At(1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
}

func TestGaussianEliminateRank(t *testing.T) {
	// [1 2; 2 4] has rank 1.
	m := matrix.NewDense(2, 2)
	require.NoError(t, m.SetRow(0, []scalar.Rational{rat(t, 1, 1), rat(t, 2, 1)}))
	require.NoError(t, m.SetRow(1, []scalar.Rational{rat(t, 2, 1), rat(t, 4, 1)}))
	rank, err := matrix.GaussianEliminate(m)
	require.NoError(t, err)
	require.Equal(t, 1, rank)

	zero, err := matrix.IsZeroRow(m, 1)
	require.NoError(t, err)
	require.True(t, zero)
}

func TestBoundMatrixCloseDetectsInfeasible(t *testing.T) {
	bm := matrix.NewBoundMatrix(2)
	// x0 - x1 <= -1, x1 - x0 <= -1 => negative cycle of length -2.
	require.NoError(t, bm.Set(1, 0, scalar.NewBound(rat(t, -1, 1), false)))
	require.NoError(t, bm.Set(0, 1, scalar.NewBound(rat(t, -1, 1), false)))
	ok, err := bm.Close()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBoundMatrixCloseShortensPath(t *testing.T) {
	bm := matrix.NewBoundMatrix(3)
	require.NoError(t, bm.Set(0, 1, scalar.NewBound(rat(t, 1, 1), false)))
	require.NoError(t, bm.Set(1, 2, scalar.NewBound(rat(t, 2, 1), false)))
	ok, err := bm.Close()
	require.NoError(t, err)
	require.True(t, ok)

	v, err := bm.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 0, v.Cmp(rat(t, 3, 1)))
}

func TestBoundMatrixMeetAndJoin(t *testing.T) {
	a := matrix.NewBoundMatrix(2)
	b := matrix.NewBoundMatrix(2)
	require.NoError(t, a.Set(0, 1, scalar.NewBound(rat(t, 5, 1), false)))
	require.NoError(t, b.Set(0, 1, scalar.NewBound(rat(t, 3, 1), false)))

	meet := a.Clone()
	require.NoError(t, meet.Meet(b))
	v, _ := meet.At(0, 1)
	require.Equal(t, 0, v.Cmp(rat(t, 3, 1)))

	join := a.Clone()
	require.NoError(t, join.Join(b))
	v, _ = join.At(0, 1)
	require.Equal(t, 0, v.Cmp(rat(t, 5, 1)))
}
