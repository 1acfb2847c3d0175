package polyhedron

import (
	"github.com/latticeforge/numdom/constraint"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/generator"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/saturation"
)

// Status tracks which of the two representations are meaningful, which
// are up to date, and which are in minimized (redundancy-free, sorted)
// form.
type Status struct {
	ZeroDimUniv          bool
	Empty                bool
	ConstraintsUpToDate  bool
	GeneratorsUpToDate   bool
	ConstraintsMinimized bool
	GeneratorsMinimized  bool
}

// Polyhedron is the (ConSys, GenSys, Status) triple. At least one of the
// two representations is up to date for any non-empty, nonzero-dimension
// polyhedron; the other is (re)derived lazily by conversion.
type Polyhedron struct {
	dim      int
	topology core.Topology
	cs       *constraint.System
	gs       *generator.System
	satC     *saturation.Matrix
	satValid bool
	status   Status
}

// NewUniverse builds the universe polyhedron of the given dimension: no
// constraints, generators {origin point, one line per axis}.
func NewUniverse(dim int, topology core.Topology) *Polyhedron {
	p := &Polyhedron{dim: dim, topology: topology}
	if dim == 0 {
		p.status.ZeroDimUniv = true
		return p
	}
	gs := generator.NewSystem(dim, topology)
	origin, err := generator.Point(row.Const(0), 1, dim, topology)
	if err == nil {
		_ = gs.Insert(origin)
	}
	for i := 1; i <= dim; i++ {
		l, err := generator.Line(row.Var(i), dim, topology)
		if err == nil {
			_ = gs.Insert(l)
		}
	}
	p.gs = gs
	p.status.GeneratorsUpToDate = true
	p.status.GeneratorsMinimized = true
	return p
}

// NewEmpty builds the empty polyhedron of the given dimension.
func NewEmpty(dim int, topology core.Topology) *Polyhedron {
	p := &Polyhedron{dim: dim, topology: topology}
	p.status.Empty = true
	return p
}

// FromConstraints seeds a polyhedron from a caller-built constraint
// system, taking ownership of it.
func FromConstraints(cs *constraint.System) *Polyhedron {
	p := &Polyhedron{dim: cs.Dim(), topology: cs.Topology(), cs: cs}
	if cs.Dim() == 0 {
		p.status.ZeroDimUniv = true
		for _, c := range cs.All() {
			if c.Inhomogeneous().Sign() < 0 {
				p.status.ZeroDimUniv = false
				p.status.Empty = true
			}
		}
		return p
	}
	p.status.ConstraintsUpToDate = true
	return p
}

// FromGenerators seeds a polyhedron from a caller-built generator system,
// which must contain at least one point or closure point.
func FromGenerators(gs *generator.System) (*Polyhedron, error) {
	if !gs.HasPoint() {
		return nil, ErrNoPoint
	}
	p := &Polyhedron{dim: gs.Dim(), topology: gs.Topology(), gs: gs}
	if gs.Dim() == 0 {
		p.status.ZeroDimUniv = true
		return p, nil
	}
	p.status.GeneratorsUpToDate = true
	return p, nil
}

// Dim returns the polyhedron's space dimension.
func (p *Polyhedron) Dim() int { return p.dim }

// Topology reports whether the polyhedron is necessarily closed.
func (p *Polyhedron) Topology() core.Topology { return p.topology }

// Status exposes a snapshot of the current status bits.
func (p *Polyhedron) Status() Status { return p.status }

// IsZeroDim reports whether the polyhedron has space dimension 0.
func (p *Polyhedron) IsZeroDim() bool { return p.dim == 0 }
