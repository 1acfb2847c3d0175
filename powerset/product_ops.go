package powerset

import (
	"github.com/latticeforge/numdom/box"
	"github.com/latticeforge/numdom/coerce"
)

// IsEmpty reports whether the product's conjunction is empty: true as
// soon as either factor is, regardless of Strategy, since the product
// always stands for the conjunction of what First and Second represent.
func (p *Product) IsEmpty() (bool, error) {
	e1, err := p.First.IsEmpty()
	if err != nil {
		return false, err
	}
	if e1 {
		return true, nil
	}
	e2, err := p.Second.IsEmpty()
	if err != nil {
		return false, err
	}
	return e2, nil
}

// Reduce synchronizes First and Second according to Strategy.
func (p *Product) Reduce() error {
	switch p.Strategy {
	case NoReduction:
		return nil
	case SmashReduction:
		return p.smash()
	case ConstraintsReduction:
		return p.constraintsReduce()
	}
	return nil
}

// smash collapses both factors to empty the instant either one is,
// by intersecting each factor with a clone of itself cut down to
// bottom: meeting a domain with its own empty-dimensioned clone's box
// is not directly expressible through coerce.Domain, so Smash instead
// replaces both factors outright with fresh Domains built from an
// empty Box coerced no further than that — callers relying on
// SmashReduction must accept that the collapsed factors lose their
// original concrete shape and become boxes.
func (p *Product) smash() error {
	empty, err := p.IsEmpty()
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}
	dim := p.First.Dim()
	bottom := coerce.WrapBox(box.New(dim, true))
	p.First = bottom
	p.Second = coerce.WrapBox(box.New(dim, true))
	return nil
}

// constraintsReduce exchanges each factor's bounding box with the
// other's and narrows both to their intersection. A factor that is
// itself a Box adopts the tightened bound directly; any other concrete
// domain is left unchanged, since coerce.Domain has no generic "refine with this box" operation
// to push the bound back into a polyhedron, grid, BD-shape or octagon.
// Primary breaks no tie here — both factors are narrowed the same way —
// but callers reading ToBox under NoReduction should remember Primary
// is what decides which factor's box they see instead.
func (p *Product) constraintsReduce() error {
	b1, err := p.First.ToBox()
	if err != nil {
		return err
	}
	b2, err := p.Second.ToBox()
	if err != nil {
		return err
	}
	merged := b1.Clone()
	if err := merged.IntersectionAssign(b2); err != nil {
		return err
	}

	if fb, ok := asBoxDomain(p.First); ok {
		if err := fb.IntersectionAssign(coerce.WrapBox(merged)); err != nil {
			return err
		}
	}
	if sb, ok := asBoxDomain(p.Second); ok {
		if err := sb.IntersectionAssign(coerce.WrapBox(merged)); err != nil {
			return err
		}
	}
	return nil
}

func asBoxDomain(d coerce.Domain) (coerce.Domain, bool) {
	if _, ok := d.(coerce.BoxDomain); ok {
		return d, true
	}
	return nil, false
}

// ToBox projects the product to a single bounding box. Under
// NoReduction the two factors have not been reconciled and may
// disagree, so only Primary's box is trusted; under Smash or
// Constraints reduction both factors are known consistent and their
// boxes are intersected.
func (p *Product) ToBox() (*box.Box, error) {
	if p.Strategy == NoReduction {
		if p.Primary == PrimarySecond {
			return p.Second.ToBox()
		}
		return p.First.ToBox()
	}
	b1, err := p.First.ToBox()
	if err != nil {
		return nil, err
	}
	b2, err := p.Second.ToBox()
	if err != nil {
		return nil, err
	}
	merged := b1.Clone()
	if err := merged.IntersectionAssign(b2); err != nil {
		return nil, err
	}
	return merged, nil
}
