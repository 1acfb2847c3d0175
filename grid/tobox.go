package grid

import (
	"github.com/latticeforge/numdom/box"
	"github.com/latticeforge/numdom/interval"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
)

// ToBox computes the smallest Box enclosing g. A dimension along which a
// line or a parameter moves (any lattice step, however fine), or on
// which two points differ, is unbounded in both directions, since
// nothing caps how many steps may be taken; every other dimension is
// fixed at the base point's coordinate and contributes a singleton
// interval.
func (g *Grid) ToBox() (*box.Box, error) {
	if g.status.ZeroDimUniv {
		return box.New(0, false), nil
	}
	empty, err := g.IsEmpty()
	if err != nil {
		return nil, err
	}
	if empty {
		return box.New(g.dim, true), nil
	}

	gg, err := g.Generators()
	if err != nil {
		return nil, err
	}
	dim := gg.Dim()
	divisor := gg.Divisor()
	gens := gg.All()

	pinned := make([]bool, dim+1)
	for i := 1; i <= dim; i++ {
		pinned[i] = true
	}
	for _, gen := range gens {
		if !gen.IsLine() && !gen.IsParameter() {
			continue
		}
		for i := 1; i <= dim; i++ {
			if v, err := gen.Row().At(i); err == nil && !v.IsZero() {
				pinned[i] = false
			}
		}
	}

	var basePoint row.Row
	for _, gen := range gens {
		if gen.IsPoint() {
			basePoint = gen.Row()
			break
		}
	}
	for _, gen := range gens {
		if !gen.IsPoint() {
			continue
		}
		for i := 1; i <= dim; i++ {
			a, errA := gen.Row().At(i)
			b, errB := basePoint.At(i)
			if errA == nil && errB == nil && a.Cmp(b) != 0 {
				pinned[i] = false
			}
		}
	}

	out := box.New(dim, false)
	for i := 1; i <= dim; i++ {
		if !pinned[i] {
			if err := out.SetInterval(i, interval.Universe()); err != nil {
				return nil, err
			}
			continue
		}
		v, err := basePoint.At(i)
		if err != nil {
			return nil, err
		}
		coord, err := scalar.NewRationalFromCoefficient(v).Quo(scalar.NewRationalFromCoefficient(divisor))
		if err != nil {
			return nil, err
		}
		if err := out.SetInterval(i, interval.FromRational(coord)); err != nil {
			return nil, err
		}
	}
	return out, nil
}
