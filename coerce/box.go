package coerce

import "github.com/latticeforge/numdom/box"

// BoxDomain adapts *box.Box to Domain.
type BoxDomain struct {
	B *box.Box
}

// WrapBox lifts a Box into a Domain.
func WrapBox(b *box.Box) Domain { return BoxDomain{B: b} }

func (d BoxDomain) Dim() int { return d.B.Dim() }

func (d BoxDomain) IsEmpty() (bool, error) { return d.B.IsEmpty(), nil }

func (d BoxDomain) Clone() (Domain, error) { return BoxDomain{B: d.B.Clone()}, nil }

func (d BoxDomain) UpperBoundAssign(other Domain) error {
	o, ok := other.(BoxDomain)
	if !ok {
		return ErrDomainMismatch
	}
	return d.B.UpperBoundAssign(o.B)
}

func (d BoxDomain) IntersectionAssign(other Domain) error {
	o, ok := other.(BoxDomain)
	if !ok {
		return ErrDomainMismatch
	}
	return d.B.IntersectionAssign(o.B)
}

func (d BoxDomain) ToBox() (*box.Box, error) { return d.B.Clone(), nil }
