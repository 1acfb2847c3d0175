package box

import (
	"github.com/latticeforge/numdom/congruence"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
)

// ToCongruences extracts the subset of b's structure a Grid can
// represent exactly. A Grid has no notion of a bounded-but-not-a-point
// interval, only of a lattice's period, so a dimension pinned to a
// single value becomes an equality congruence and every other
// dimension (bounded on one or both sides but not collapsed to a
// point, or left unbounded) carries no lattice information at all and
// is skipped. The result is a sound over-approximation: the grid built
// from it contains every point b does, never fewer.
//
// Returns (nil, nil) for an empty box, the same convention
// ToConstraintSystem uses.
func (b *Box) ToCongruences() ([]congruence.Congruence, error) {
	if b.CheckEmpty() {
		return nil, nil
	}
	var out []congruence.Congruence
	for i := 1; i <= b.Dim(); i++ {
		iv, err := b.Interval(i)
		if err != nil {
			return nil, err
		}
		if !iv.IsSingleton() {
			continue
		}
		v := iv.Lower().Value()
		coeffs := make([]scalar.Coefficient, b.Dim()+1)
		coeffs[i] = v.Den()
		coeffs[0] = v.Num().Neg()
		r := row.FromCoefficients(coeffs, core.Closed, row.RayPointOrInequality)
		c, err := congruence.FromRow(r, scalar.NewCoefficient(0))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
