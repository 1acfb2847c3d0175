package saturation_test

import (
	"testing"

	"github.com/latticeforge/numdom/saturation"
	"github.com/stretchr/testify/require"
)

func TestSetGetRoundTrip(t *testing.T) {
	m := saturation.New(3, 5)
	require.NoError(t, m.Set(1, 3, true))
	v, err := m.Get(1, 3)
	require.NoError(t, err)
	require.True(t, v)

	v, err = m.Get(0, 3)
	require.NoError(t, err)
	require.False(t, v)
}

func TestOutOfRange(t *testing.T) {
	m := saturation.New(2, 2)
	require.ErrorIs(t, m.Set(5, 0, true), saturation.ErrIndexOutOfRange)
	_, err := m.Get(0, 9)
	require.ErrorIs(t, err, saturation.ErrIndexOutOfRange)
}

func TestRowXOR(t *testing.T) {
	m := saturation.New(2, 4)
	require.NoError(t, m.Set(0, 0, true))
	require.NoError(t, m.Set(0, 2, true))
	require.NoError(t, m.Set(1, 2, true))
	require.NoError(t, m.RowXOR(0, 1))

	v0, _ := m.Get(0, 0)
	v2, _ := m.Get(0, 2)
	require.True(t, v0)
	require.False(t, v2) // 2 was set in both rows, XOR clears it
}

func TestTransposeMatchesOriginal(t *testing.T) {
	m := saturation.New(2, 70) // spans two words
	require.NoError(t, m.Set(0, 0, true))
	require.NoError(t, m.Set(1, 69, true))

	tr := m.Transpose()
	require.NotZero(t, tr[0][0]&1)
	require.NotZero(t, tr[69][0]&(1<<1)) // generator 1 is bit 1 of word 0
}

func TestCommonSaturatedCounts(t *testing.T) {
	m := saturation.New(2, 4)
	require.NoError(t, m.Set(0, 0, true))
	require.NoError(t, m.Set(0, 1, true))
	require.NoError(t, m.Set(1, 0, true))
	require.NoError(t, m.Set(1, 2, true))

	n, err := m.CommonSaturated(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestAddGeneratorAndConstraintGrow(t *testing.T) {
	m := saturation.New(1, 1)
	m.AddGenerator()
	require.Equal(t, 2, m.NumGenerators())
	m.AddConstraint()
	require.Equal(t, 2, m.NumConstraints())
	require.NoError(t, m.Set(1, 1, true))
}
