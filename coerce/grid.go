package coerce

import (
	"github.com/latticeforge/numdom/box"
	"github.com/latticeforge/numdom/congruence"
	"github.com/latticeforge/numdom/grid"
)

// GridDomain adapts *grid.Grid to Domain.
type GridDomain struct {
	G *grid.Grid
}

// WrapGrid lifts a Grid into a Domain.
func WrapGrid(g *grid.Grid) Domain { return GridDomain{G: g} }

func (d GridDomain) Dim() int { return d.G.Dim() }

func (d GridDomain) IsEmpty() (bool, error) { return d.G.IsEmpty() }

func (d GridDomain) Clone() (Domain, error) {
	c, err := d.G.Clone()
	if err != nil {
		return nil, err
	}
	return GridDomain{G: c}, nil
}

func (d GridDomain) UpperBoundAssign(other Domain) error {
	o, ok := other.(GridDomain)
	if !ok {
		return ErrDomainMismatch
	}
	return d.G.GridHullAssign(o.G)
}

func (d GridDomain) IntersectionAssign(other Domain) error {
	o, ok := other.(GridDomain)
	if !ok {
		return ErrDomainMismatch
	}
	return d.G.IntersectionAssign(o.G)
}

func (d GridDomain) ToBox() (*box.Box, error) { return d.G.ToBox() }

// GridFromBox builds the Grid that contains every point of b. A grid
// cannot express a bounded-but-not-a-point interval, only a lattice's
// period, so this is sound but lossy: only dimensions b pins to a
// single value carry a congruence (via box.Box.ToCongruences); every
// other dimension comes out unconstrained.
func GridFromBox(b *box.Box) (Domain, error) {
	if b.IsEmpty() {
		return GridDomain{G: grid.NewEmpty(b.Dim())}, nil
	}
	rows, err := b.ToCongruences()
	if err != nil {
		return nil, err
	}
	cs := congruence.NewSystem(b.Dim())
	for _, c := range rows {
		if err := cs.Insert(c); err != nil {
			return nil, err
		}
	}
	return GridDomain{G: grid.FromCongruences(cs)}, nil
}
