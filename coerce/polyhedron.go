package coerce

import (
	"context"

	"github.com/latticeforge/numdom/box"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/polyhedron"
)

// PolyhedronDomain adapts *polyhedron.Polyhedron to Domain.
type PolyhedronDomain struct {
	P *polyhedron.Polyhedron
}

// WrapPolyhedron lifts a Polyhedron into a Domain.
func WrapPolyhedron(p *polyhedron.Polyhedron) Domain { return PolyhedronDomain{P: p} }

func (d PolyhedronDomain) Dim() int { return d.P.Dim() }

func (d PolyhedronDomain) IsEmpty() (bool, error) { return d.P.IsEmpty() }

func (d PolyhedronDomain) Clone() (Domain, error) {
	c, err := d.P.Clone()
	if err != nil {
		return nil, err
	}
	return PolyhedronDomain{P: c}, nil
}

func (d PolyhedronDomain) UpperBoundAssign(other Domain) error {
	o, ok := other.(PolyhedronDomain)
	if !ok {
		return ErrDomainMismatch
	}
	return d.P.PolyHullAssign(o.P)
}

func (d PolyhedronDomain) IntersectionAssign(other Domain) error {
	o, ok := other.(PolyhedronDomain)
	if !ok {
		return ErrDomainMismatch
	}
	return d.P.IntersectionAssign(o.P)
}

func (d PolyhedronDomain) ToBox() (*box.Box, error) {
	return d.P.ToBox(context.Background(), core.Polynomial)
}

// PolyhedronFromBox builds the Polyhedron described by b's interval
// bounds, the reverse of ToBox: every finite bound becomes one
// half-space via box.Box.ToConstraintSystem, so the result is exactly
// b, not merely an over-approximation of it.
func PolyhedronFromBox(b *box.Box) (Domain, error) {
	if b.IsEmpty() {
		return PolyhedronDomain{P: polyhedron.NewEmpty(b.Dim(), core.Closed)}, nil
	}
	cs, err := b.ToConstraintSystem()
	if err != nil {
		return nil, err
	}
	return PolyhedronDomain{P: polyhedron.FromConstraints(cs)}, nil
}
