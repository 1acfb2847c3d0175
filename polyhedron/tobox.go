package polyhedron

import (
	"context"

	"github.com/latticeforge/numdom/box"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/interval"
	"github.com/latticeforge/numdom/mip"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
)

// ToBox computes a Box enclosing p; at Simplex or Any complexity it is
// the smallest one.
//
// At Polynomial complexity, this reads bounds off whichever
// representation is already up to date without forcing a conversion: a
// ready V-representation gives an exact box by direct per-axis
// projection (box.FromGeneratorSystem, a linear scan, not a conversion);
// otherwise the H-representation is scanned for constraints that bound a
// single variable directly (box.FromConstraintSystem), which can be
// looser than the true bounding box when tightness only follows from
// combining several relational constraints.
//
// At Simplex or Any complexity, the exact bounding box is computed by
// solving 2*dim linear programs (minimize and maximize each coordinate)
// over the constraint system via the mip package, regardless of which
// representation was already available.
func (p *Polyhedron) ToBox(ctx context.Context, complexity core.Complexity) (*box.Box, error) {
	if p.status.ZeroDimUniv {
		return box.New(0, false), nil
	}
	empty, err := p.IsEmpty()
	if err != nil {
		return nil, err
	}
	if empty {
		return box.New(p.dim, true), nil
	}

	if complexity == core.Polynomial {
		if p.status.GeneratorsUpToDate {
			return box.FromGeneratorSystem(p.gs)
		}
		cs, err := p.Constraints()
		if err != nil {
			return nil, err
		}
		return box.FromConstraintSystem(cs)
	}

	cs, err := p.Constraints()
	if err != nil {
		return nil, err
	}
	out := box.New(p.dim, false)
	for i := 1; i <= p.dim; i++ {
		lo, err := mip.Minimize(ctx, cs, row.Var(i))
		if err != nil {
			return nil, err
		}
		hi, err := mip.Maximize(ctx, cs, row.Var(i))
		if err != nil {
			return nil, err
		}
		iv, err := intervalFromLP(lo, hi)
		if err != nil {
			return nil, err
		}
		if err := out.SetInterval(i, iv); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func intervalFromLP(lo, hi mip.Result) (interval.Interval, error) {
	if lo.Status == mip.Infeasible || hi.Status == mip.Infeasible {
		return interval.Empty(), nil
	}
	lower := scalar.NegInf()
	if lo.Status == mip.Optimal {
		lower = scalar.NewBound(lo.Value, false)
	}
	upper := scalar.PosInf()
	if hi.Status == mip.Optimal {
		upper = scalar.NewBound(hi.Value, false)
	}
	return interval.FromBounds(lower, upper), nil
}
