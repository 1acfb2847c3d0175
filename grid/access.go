package grid

import "github.com/latticeforge/numdom/congruence"
import "github.com/latticeforge/numdom/gridgen"

// ensureGenerators derives the V-representation from the congruence
// representation when only the latter is up to date, latching Empty if
// the conversion finds a contradiction.
func (g *Grid) ensureGenerators() error {
	if g.status.Empty || g.status.ZeroDimUniv {
		return nil
	}
	if g.status.GeneratorsUpToDate {
		return nil
	}
	gg, err := congruencesToGenerators(g.cg)
	if err != nil {
		return err
	}
	if gg == nil {
		g.cg, g.gg = nil, nil
		g.status = Status{Empty: true}
		return nil
	}
	g.gg = gg
	g.status.GeneratorsUpToDate = true
	return nil
}

// ensureCongruences derives the congruence representation from the
// V-representation when only the latter is up to date.
func (g *Grid) ensureCongruences() error {
	if g.status.Empty {
		if g.cg == nil {
			cg := congruence.NewSystem(g.dim)
			_ = cg.Insert(falseCongruence(g.dim))
			g.cg = cg
		}
		g.status.CongruencesUpToDate = true
		return nil
	}
	if g.status.ZeroDimUniv {
		if g.cg == nil {
			g.cg = congruence.NewSystem(0)
		}
		return nil
	}
	if g.status.CongruencesUpToDate {
		return nil
	}
	if err := g.ensureGenerators(); err != nil {
		return err
	}
	if g.status.Empty {
		return g.ensureCongruences()
	}
	cg, err := generatorsToCongruences(g.gg)
	if err != nil {
		return err
	}
	g.cg = cg
	g.status.CongruencesUpToDate = true
	return nil
}

// Congruences returns the grid's congruence representation, converting
// from generators first if necessary.
func (g *Grid) Congruences() (*congruence.System, error) {
	if err := g.ensureCongruences(); err != nil {
		return nil, err
	}
	return g.cg, nil
}

// Generators returns the grid's generator representation, converting
// from congruences first if necessary. Returns nil for an empty grid,
// which has no meaningful generator system.
func (g *Grid) Generators() (*gridgen.System, error) {
	if g.status.Empty {
		return nil, nil
	}
	if err := g.ensureGenerators(); err != nil {
		return nil, err
	}
	return g.gg, nil
}

// IsEmpty resolves and reports emptiness.
func (g *Grid) IsEmpty() (bool, error) {
	if g.status.Empty {
		return true, nil
	}
	if g.status.ZeroDimUniv {
		return false, nil
	}
	if err := g.ensureGenerators(); err != nil {
		return false, err
	}
	return g.status.Empty, nil
}

// Clone returns a deep-enough copy of g (systems are rebuilt fresh by
// re-inserting every row, since linsys.System rows are owned by exactly
// one system at a time).
func (g *Grid) Clone() (*Grid, error) {
	out := &Grid{dim: g.dim, status: g.status}
	if g.cg != nil {
		cg := congruence.NewSystem(g.dim)
		for _, c := range g.cg.All() {
			if err := cg.Insert(c); err != nil {
				return nil, err
			}
		}
		out.cg = cg
	}
	if g.gg != nil {
		gg := gridgen.NewSystem(g.dim)
		for _, gen := range g.gg.All() {
			if err := gg.Insert(gen); err != nil {
				return nil, err
			}
		}
		out.gg = gg
	}
	return out, nil
}
