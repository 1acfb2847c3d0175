package powerset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeforge/numdom/box"
	"github.com/latticeforge/numdom/coerce"
	"github.com/latticeforge/numdom/interval"
	"github.com/latticeforge/numdom/powerset"
	"github.com/latticeforge/numdom/scalar"
)

func boxWithInterval(t *testing.T, lo, hi int64) *box.Box {
	t.Helper()
	b := box.New(1, false)
	l, err := scalar.NewRational(lo, 1)
	require.NoError(t, err)
	h, err := scalar.NewRational(hi, 1)
	require.NoError(t, err)
	iv := interval.Universe().LowerSet(l, false).UpperSet(h, false)
	require.NoError(t, b.SetInterval(1, iv))
	return b
}

func TestSetIsEmptyWithNoDisjuncts(t *testing.T) {
	s := powerset.NewSet(1)
	empty, err := s.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestAddDisjunctRejectsDimensionMismatch(t *testing.T) {
	s := powerset.NewSet(1)
	err := s.AddDisjunct(coerce.WrapBox(box.New(2, false)))
	assert.ErrorIs(t, err, powerset.ErrDimensionMismatch)
}

func TestOmegaReduceDropsContainedDisjunct(t *testing.T) {
	s := powerset.NewSet(1)
	require.NoError(t, s.AddDisjunct(coerce.WrapBox(boxWithInterval(t, 0, 10))))
	require.NoError(t, s.AddDisjunct(coerce.WrapBox(boxWithInterval(t, 2, 4))))

	require.NoError(t, s.OmegaReduce())
	assert.Len(t, s.Disjuncts(), 1)
}

func TestPairwiseReduceMergesOverlappingDisjuncts(t *testing.T) {
	s := powerset.NewSet(1)
	require.NoError(t, s.AddDisjunct(coerce.WrapBox(boxWithInterval(t, 0, 5))))
	require.NoError(t, s.AddDisjunct(coerce.WrapBox(boxWithInterval(t, 3, 8))))
	require.NoError(t, s.AddDisjunct(coerce.WrapBox(boxWithInterval(t, 100, 200))))

	require.NoError(t, s.PairwiseReduce())
	assert.Len(t, s.Disjuncts(), 2)
}

func TestProductSmashCollapsesOnEmptyFactor(t *testing.T) {
	p, err := powerset.NewProduct(
		coerce.WrapBox(box.New(1, false)),
		coerce.WrapBox(box.New(1, true)),
		powerset.SmashReduction,
		powerset.PrimaryFirst,
	)
	require.NoError(t, err)
	require.NoError(t, p.Reduce())

	empty, err := p.First.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestProductConstraintsReduceNarrowsBoxFactors(t *testing.T) {
	p, err := powerset.NewProduct(
		coerce.WrapBox(boxWithInterval(t, 0, 10)),
		coerce.WrapBox(boxWithInterval(t, 5, 20)),
		powerset.ConstraintsReduction,
		powerset.PrimaryFirst,
	)
	require.NoError(t, err)
	require.NoError(t, p.Reduce())

	b, err := p.ToBox()
	require.NoError(t, err)
	iv, err := b.Interval(1)
	require.NoError(t, err)
	assert.Equal(t, "5", iv.Lower().Value().String())
	assert.Equal(t, "10", iv.Upper().Value().String())
}

func TestProductToBoxUnderNoReductionTrustsPrimaryOnly(t *testing.T) {
	p, err := powerset.NewProduct(
		coerce.WrapBox(boxWithInterval(t, 0, 1)),
		coerce.WrapBox(boxWithInterval(t, 100, 200)),
		powerset.NoReduction,
		powerset.PrimarySecond,
	)
	require.NoError(t, err)

	b, err := p.ToBox()
	require.NoError(t, err)
	iv, err := b.Interval(1)
	require.NoError(t, err)
	assert.Equal(t, "100", iv.Lower().Value().String())
}
