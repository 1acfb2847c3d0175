package grid

// Minimize applies the modular Hermite-like strong reduction to g's
// congruence representation, combining relational rows down to
// axis-aligned form wherever the system permits it (see
// congruence.System.Reduce). Unlike polyhedron's Minimize, which only
// removes syntactic redundancy, this can change how many dimensions
// carry an explicit congruence at all, so both representations are
// invalidated and the congruences are rebuilt from the reduced system.
func (g *Grid) Minimize() error {
	if g.status.Empty || g.status.ZeroDimUniv {
		return nil
	}
	if err := g.ensureCongruences(); err != nil {
		return err
	}
	if g.status.Empty {
		return nil
	}
	reduced, infeasible, ok, err := g.cg.Reduce()
	if err != nil {
		return err
	}
	if infeasible {
		g.cg, g.gg = nil, nil
		g.status = Status{Empty: true}
		return nil
	}
	if !ok {
		return nil
	}
	g.cg = reduced
	g.gg = nil
	g.status.GeneratorsUpToDate = false
	return nil
}
