package polyhedron

import (
	"github.com/latticeforge/numdom/constraint"
	"github.com/latticeforge/numdom/generator"
	"github.com/latticeforge/numdom/row"
)

// ensureGenerators derives the V-representation from the H-representation
// when only the latter is up to date, latching Empty if the conversion
// finds no point.
func (p *Polyhedron) ensureGenerators() error {
	if p.status.Empty || p.status.ZeroDimUniv {
		return nil
	}
	if p.status.GeneratorsUpToDate {
		return nil
	}
	gs, err := constraintsToGenerators(p.cs)
	if err != nil {
		return err
	}
	if gs == nil {
		p.cs, p.gs = nil, nil
		p.status = Status{Empty: true}
		return nil
	}
	p.gs = gs
	p.status.GeneratorsUpToDate = true
	return nil
}

// ensureConstraints derives the H-representation from the V-representation
// when only the latter is up to date.
func (p *Polyhedron) ensureConstraints() error {
	if p.status.Empty {
		if p.cs == nil {
			cs := constraint.NewSystem(p.dim, p.topology)
			c, _ := constraint.Leq(row.Const(0), -1, p.dim, p.topology)
			_ = cs.Insert(c)
			p.cs = cs
		}
		p.status.ConstraintsUpToDate = true
		return nil
	}
	if p.status.ZeroDimUniv {
		if p.cs == nil {
			p.cs = constraint.NewSystem(0, p.topology)
		}
		return nil
	}
	if p.status.ConstraintsUpToDate {
		return nil
	}
	if err := p.ensureGenerators(); err != nil {
		return err
	}
	if p.status.Empty {
		return p.ensureConstraints()
	}
	cs, err := generatorsToConstraints(p.gs)
	if err != nil {
		return err
	}
	p.cs = cs
	p.status.ConstraintsUpToDate = true
	return nil
}

// Constraints returns the polyhedron's H-representation, converting from
// the V-representation first if necessary.
func (p *Polyhedron) Constraints() (*constraint.System, error) {
	if err := p.ensureConstraints(); err != nil {
		return nil, err
	}
	return p.cs, nil
}

// Generators returns the polyhedron's V-representation, converting from
// the H-representation first if necessary. Returns nil for an empty
// polyhedron, which has no meaningful generator system.
func (p *Polyhedron) Generators() (*generator.System, error) {
	if p.status.Empty {
		return nil, nil
	}
	if err := p.ensureGenerators(); err != nil {
		return nil, err
	}
	return p.gs, nil
}

// IsEmpty resolves and reports emptiness.
func (p *Polyhedron) IsEmpty() (bool, error) {
	if p.status.Empty {
		return true, nil
	}
	if p.status.ZeroDimUniv {
		return false, nil
	}
	if err := p.ensureGenerators(); err != nil {
		return false, err
	}
	return p.status.Empty, nil
}

// Clone returns a deep-enough copy of p (systems are rebuilt fresh by
// re-inserting every row, since linsys.System rows are owned by exactly
// one system at a time).
func (p *Polyhedron) Clone() (*Polyhedron, error) {
	out := &Polyhedron{dim: p.dim, topology: p.topology, status: p.status}
	if p.cs != nil {
		cs := constraint.NewSystem(p.dim, p.topology)
		for _, c := range p.cs.All() {
			if err := cs.Insert(c); err != nil {
				return nil, err
			}
		}
		out.cs = cs
	}
	if p.gs != nil {
		gs := generator.NewSystem(p.dim, p.topology)
		for _, g := range p.gs.All() {
			if err := gs.Insert(g); err != nil {
				return nil, err
			}
		}
		out.gs = gs
	}
	return out, nil
}
