package congruence_test

import (
	"testing"

	"github.com/latticeforge/numdom/congruence"
	"github.com/latticeforge/numdom/row"
	"github.com/stretchr/testify/require"
)

func TestNewEqualityWhenModulusZero(t *testing.T) {
	c, err := congruence.New(row.Var(1), -3, 0, 1)
	require.NoError(t, err)
	require.True(t, c.IsEquality())
	require.Equal(t, "3", c.Inhomogeneous().String())
}

func TestNewProperCongruence(t *testing.T) {
	c, err := congruence.New(row.Var(1).Coeff(2, 1), 0, 5, 2)
	require.NoError(t, err)
	require.False(t, c.IsEquality())
	require.Equal(t, "5", c.Modulus().String())
}

func TestNewRejectsNegativeModulus(t *testing.T) {
	_, err := congruence.New(row.Var(1), 0, -1, 1)
	require.ErrorIs(t, err, congruence.ErrNegativeModulus)
}

func TestIntegralityAndFalseSingletons(t *testing.T) {
	i := congruence.Integrality()
	require.Equal(t, "1", i.Modulus().String())
	require.Equal(t, 0, i.Dim())

	f := congruence.False()
	require.True(t, f.IsEquality())
	require.Equal(t, "1", f.Inhomogeneous().String())
}

func TestSystemInsertTracksModulusAndCounts(t *testing.T) {
	s := congruence.NewSystem(2)
	eq, _ := congruence.New(row.Var(1), 0, 0, 2)
	require.NoError(t, s.Insert(eq))

	proper, _ := congruence.New(row.Var(2), 0, 3, 2)
	require.NoError(t, s.Insert(proper))

	require.Equal(t, 2, s.Len())
	require.Equal(t, 1, s.NumEqualities())
	require.Equal(t, 1, s.NumProperCongruences())

	all := s.All()
	require.Len(t, all, 2)
	require.True(t, all[0].IsEquality())
	require.False(t, all[1].IsEquality())
}

func TestSystemInsertRejectsDimensionMismatch(t *testing.T) {
	s := congruence.NewSystem(1)
	c, _ := congruence.New(row.Var(1).Coeff(2, 1), 0, 0, 2)
	require.ErrorIs(t, s.Insert(c), congruence.ErrDimensionMismatch)
}
