package coerce

import (
	"github.com/latticeforge/numdom/box"
	"github.com/latticeforge/numdom/octagon"
)

// OctagonDomain adapts *octagon.Shape to Domain.
type OctagonDomain struct {
	S *octagon.Shape
}

// WrapOctagon lifts a Shape into a Domain.
func WrapOctagon(s *octagon.Shape) Domain { return OctagonDomain{S: s} }

func (d OctagonDomain) Dim() int { return d.S.Dim() }

func (d OctagonDomain) IsEmpty() (bool, error) { return d.S.IsEmpty(), nil }

func (d OctagonDomain) Clone() (Domain, error) { return OctagonDomain{S: d.S.Clone()}, nil }

func (d OctagonDomain) UpperBoundAssign(other Domain) error {
	o, ok := other.(OctagonDomain)
	if !ok {
		return ErrDomainMismatch
	}
	return d.S.UpperBoundAssign(o.S)
}

func (d OctagonDomain) IntersectionAssign(other Domain) error {
	o, ok := other.(OctagonDomain)
	if !ok {
		return ErrDomainMismatch
	}
	return d.S.IntersectionAssign(o.S)
}

func (d OctagonDomain) ToBox() (*box.Box, error) { return d.S.ToBox() }

// OctagonFromBox builds the Shape described by b's interval bounds,
// each finite bound tightened directly via AddUpperBound/AddLowerBound.
// Exact, not an over-approximation: an octagon can represent any box.
func OctagonFromBox(b *box.Box) (Domain, error) {
	if b.IsEmpty() {
		return OctagonDomain{S: octagon.New(b.Dim(), true)}, nil
	}
	s := octagon.New(b.Dim(), false)
	for i := 1; i <= b.Dim(); i++ {
		iv, err := b.Interval(i)
		if err != nil {
			return nil, err
		}
		if lo := iv.Lower(); lo.IsFinite() {
			if err := s.AddLowerBound(i, lo.Value(), lo.Open()); err != nil {
				return nil, err
			}
		}
		if hi := iv.Upper(); hi.IsFinite() {
			if err := s.AddUpperBound(i, hi.Value(), hi.Open()); err != nil {
				return nil, err
			}
		}
	}
	if err := s.Close(); err != nil {
		return nil, err
	}
	return OctagonDomain{S: s}, nil
}
