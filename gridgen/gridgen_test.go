package gridgen_test

import (
	"testing"

	"github.com/latticeforge/numdom/gridgen"
	"github.com/latticeforge/numdom/row"
	"github.com/stretchr/testify/require"
)

func TestPointAndParameterDivisor(t *testing.T) {
	p, err := gridgen.Point(row.Var(1).Coeff(1, 2), 2, 1)
	require.NoError(t, err)
	require.True(t, p.IsPoint())
	require.Equal(t, "2", p.Divisor().String())

	q, err := gridgen.Parameter(row.Var(1), 3, 1)
	require.NoError(t, err)
	require.True(t, q.IsParameter())
	require.Equal(t, "3", q.Divisor().String())
}

func TestPointRejectsNonPositiveDivisor(t *testing.T) {
	_, err := gridgen.Point(row.Var(1), 0, 1)
	require.ErrorIs(t, err, gridgen.ErrNonPositiveDivisor)
}

func TestSystemInsertNormalizesSharedDivisor(t *testing.T) {
	s := gridgen.NewSystem(1)
	p, _ := gridgen.Point(row.Var(1), 2, 1)
	require.NoError(t, s.Insert(p))

	q, _ := gridgen.Parameter(row.Var(1), 3, 1)
	require.NoError(t, s.Insert(q))

	require.Equal(t, "6", s.Divisor().String())
	all := s.All()
	require.Len(t, all, 2)
	require.Equal(t, "6", all[0].Divisor().String())
	require.Equal(t, "6", all[1].Divisor().String())
	require.True(t, s.HasPoint())
}

func TestLineIgnoresConstant(t *testing.T) {
	l, err := gridgen.Line(row.Var(1).PlusConst(5), 1)
	require.NoError(t, err)
	require.True(t, l.IsLine())
	require.Equal(t, "0", l.Row().Slot0().String())
}
