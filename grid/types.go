package grid

import (
	"github.com/latticeforge/numdom/congruence"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/gridgen"
	"github.com/latticeforge/numdom/row"
)

// Status tracks which of the two representations are meaningful and
// which are up to date, mirroring polyhedron.Status.
type Status struct {
	ZeroDimUniv         bool
	Empty               bool
	CongruencesUpToDate bool
	GeneratorsUpToDate  bool
}

// Grid is the (Congruence_System, Grid_Generator_System, Status) triple.
type Grid struct {
	dim    int
	cg     *congruence.System
	gg     *gridgen.System
	status Status
}

// NewUniverse builds the universe grid of the given dimension: no
// congruences, generators {origin point, one line per axis}.
func NewUniverse(dim int) *Grid {
	g := &Grid{dim: dim}
	if dim == 0 {
		g.status.ZeroDimUniv = true
		return g
	}
	gg := gridgen.NewSystem(dim)
	origin, err := gridgen.Point(row.Const(0), 1, dim)
	if err == nil {
		_ = gg.Insert(origin)
	}
	for i := 1; i <= dim; i++ {
		l, err := gridgen.Line(row.Var(i), dim)
		if err == nil {
			_ = gg.Insert(l)
		}
	}
	g.gg = gg
	g.status.GeneratorsUpToDate = true
	return g
}

// falseCongruence returns the dim-dimensional "1 ≡ 0 (mod 0)" congruence
// encoding the empty grid, generalizing congruence.False (which is
// zero-dimensional) to an arbitrary dimension.
func falseCongruence(dim int) congruence.Congruence {
	c, _ := congruence.New(row.Const(0), -1, 0, dim)
	return c
}

// NewEmpty builds the empty grid of the given dimension.
func NewEmpty(dim int) *Grid {
	g := &Grid{dim: dim}
	g.status.Empty = true
	return g
}

// FromCongruences seeds a grid from a caller-built congruence system,
// taking ownership of it.
func FromCongruences(cs *congruence.System) *Grid {
	g := &Grid{dim: cs.Dim(), cg: cs}
	if cs.Dim() == 0 {
		g.status.ZeroDimUniv = true
		for _, c := range cs.All() {
			if c.IsEquality() && c.Inhomogeneous().Sign() != 0 {
				g.status.ZeroDimUniv = false
				g.status.Empty = true
			}
		}
		return g
	}
	g.status.CongruencesUpToDate = true
	return g
}

// FromGenerators seeds a grid from a caller-built grid-generator system,
// which must contain at least one point.
func FromGenerators(gg *gridgen.System) (*Grid, error) {
	if !gg.HasPoint() {
		return nil, ErrNoPoint
	}
	g := &Grid{dim: gg.Dim(), gg: gg}
	if gg.Dim() == 0 {
		g.status.ZeroDimUniv = true
		return g, nil
	}
	g.status.GeneratorsUpToDate = true
	return g, nil
}

// Dim returns the grid's space dimension.
func (g *Grid) Dim() int { return g.dim }

// Status exposes a snapshot of the current status bits.
func (g *Grid) Status() Status { return g.status }

// IsZeroDim reports whether the grid has space dimension 0.
func (g *Grid) IsZeroDim() bool { return g.dim == 0 }

// Topology exposes the fixed topology grids use throughout: Grid never
// carries strict relations, so every row is Closed.
func (g *Grid) Topology() core.Topology { return core.Closed }
