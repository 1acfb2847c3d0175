package coerce

import (
	"github.com/latticeforge/numdom/bdshape"
	"github.com/latticeforge/numdom/box"
)

// BDShapeDomain adapts *bdshape.Shape to Domain.
type BDShapeDomain struct {
	S *bdshape.Shape
}

// WrapBDShape lifts a Shape into a Domain.
func WrapBDShape(s *bdshape.Shape) Domain { return BDShapeDomain{S: s} }

func (d BDShapeDomain) Dim() int { return d.S.Dim() }

func (d BDShapeDomain) IsEmpty() (bool, error) { return d.S.IsEmpty(), nil }

func (d BDShapeDomain) Clone() (Domain, error) { return BDShapeDomain{S: d.S.Clone()}, nil }

func (d BDShapeDomain) UpperBoundAssign(other Domain) error {
	o, ok := other.(BDShapeDomain)
	if !ok {
		return ErrDomainMismatch
	}
	return d.S.UpperBoundAssign(o.S)
}

func (d BDShapeDomain) IntersectionAssign(other Domain) error {
	o, ok := other.(BDShapeDomain)
	if !ok {
		return ErrDomainMismatch
	}
	return d.S.IntersectionAssign(o.S)
}

func (d BDShapeDomain) ToBox() (*box.Box, error) { return d.S.ToBox() }

// BDShapeFromBox builds the Shape described by b's interval bounds,
// each finite bound tightened directly via AddUpperBound/AddLowerBound
// against the DBM's fixed zero variable. Exact, not an
// over-approximation: a BD-shape can represent any box.
func BDShapeFromBox(b *box.Box) (Domain, error) {
	if b.IsEmpty() {
		return BDShapeDomain{S: bdshape.New(b.Dim(), true)}, nil
	}
	s := bdshape.New(b.Dim(), false)
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
	return BDShapeDomain{S: s}, nil
}
