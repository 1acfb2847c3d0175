package scalar_test

import (
	"testing"

	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/scalar"
	"github.com/stretchr/testify/require"
)

func TestCoefficientArithmetic(t *testing.T) {
	a := scalar.NewCoefficient(12)
	b := scalar.NewCoefficient(8)

	require.Equal(t, "20", a.Add(b).String())
	require.Equal(t, "4", a.Sub(b).String())
	require.Equal(t, "96", a.Mul(b).String())
	require.Equal(t, "4", a.Gcd(b).String())
	require.Equal(t, "24", a.Lcm(b).String())
	require.Equal(t, -1, a.Neg().Sign())
}

func TestCoefficientExactDiv(t *testing.T) {
	a := scalar.NewCoefficient(12)
	q, err := a.ExactDiv(scalar.NewCoefficient(4))
	require.NoError(t, err)
	require.Equal(t, "3", q.String())

	_, err = a.ExactDiv(scalar.NewCoefficient(0))
	require.ErrorIs(t, err, scalar.ErrDivisionByZero)
}

func TestGcdAll(t *testing.T) {
	cs := []scalar.Coefficient{
		scalar.NewCoefficient(0),
		scalar.NewCoefficient(6),
		scalar.NewCoefficient(9),
	}
	require.Equal(t, "3", scalar.GcdAll(cs).String())
}

func TestRationalCanonicalization(t *testing.T) {
	r, err := scalar.NewRational(4, -8)
	require.NoError(t, err)
	require.Equal(t, "-1/2", r.String())

	_, err = scalar.NewRational(1, 0)
	require.ErrorIs(t, err, scalar.ErrDivisionByZero)
}

func TestRationalQuo(t *testing.T) {
	a, _ := scalar.NewRational(1, 1)
	zero := scalar.Zero()
	_, err := a.Quo(zero)
	require.ErrorIs(t, err, scalar.ErrDivisionByZero)
}

func TestBoundOrdering(t *testing.T) {
	neg := scalar.NegInf()
	pos := scalar.PosInf()
	one, _ := scalar.NewRational(1, 1)
	fin := scalar.NewBound(one, false)

	require.Equal(t, -1, neg.Cmp(fin))
	require.Equal(t, -1, fin.Cmp(pos))
	require.Equal(t, 1, pos.Cmp(neg))
	require.Equal(t, 0, neg.Cmp(scalar.NegInf()))
}

func TestBoundAddExact(t *testing.T) {
	one, _ := scalar.NewRational(1, 1)
	two, _ := scalar.NewRational(2, 1)
	sum, res, err := scalar.NewBound(one, false).Add(scalar.NewBound(two, true), core.RoundNotNeeded)
	require.NoError(t, err)
	require.Equal(t, scalar.VEQ, res)
	require.True(t, sum.Open())
	three, _ := scalar.NewRational(3, 1)
	require.Equal(t, 0, sum.Value().Cmp(three))
}

func TestBoundAddInfinityPropagates(t *testing.T) {
	one, _ := scalar.NewRational(1, 1)
	sum, _, err := scalar.PosInf().Add(scalar.NewBound(one, false), core.RoundNotNeeded)
	require.NoError(t, err)
	require.True(t, sum.IsPosInf())
}

func TestBoundAddOppositeInfinitiesIsRuntimeError(t *testing.T) {
	_, _, err := scalar.PosInf().Add(scalar.NegInf(), core.RoundNotNeeded)
	require.ErrorIs(t, err, core.ErrRuntime)
}

func TestTernaryCombinators(t *testing.T) {
	require.Equal(t, scalar.Yes, scalar.Yes.Or(scalar.No))
	require.Equal(t, scalar.No, scalar.No.And(scalar.Yes))
	require.Equal(t, scalar.Maybe, scalar.Maybe.Or(scalar.No))
	require.True(t, scalar.FromBool(true).Bool())
}
