package grid

import (
	"math/big"

	"github.com/latticeforge/numdom/congruence"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/gridgen"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
)

// soleNonzeroExcluding scans r's variable slots (1..dim), skipping any
// index present in excluded, and reports the one nonzero slot found
// among the rest. idx == -1 means every remaining slot is zero; idx ==
// -2 means more than one remaining slot is nonzero (the row is not
// axis-aligned relative to excluded).
func soleNonzeroExcluding(r row.Row, dim int, excluded map[int]bool) (idx int, val scalar.Coefficient, err error) {
	idx = -1
	for i := 1; i <= dim; i++ {
		if excluded[i] {
			continue
		}
		v, e := r.At(i)
		if e != nil {
			return 0, scalar.Coefficient{}, e
		}
		if v.IsZero() {
			continue
		}
		if idx != -1 {
			return -2, scalar.Coefficient{}, nil
		}
		idx, val = i, v
	}
	return idx, val, nil
}

// subtractRows returns a-b over the variable slots 1..dim, slot 0 zero.
func subtractRows(a, b row.Row, dim int) (row.Row, error) {
	coeffs := make([]scalar.Coefficient, dim+1)
	for i := 1; i <= dim; i++ {
		av, err := a.At(i)
		if err != nil {
			return row.Row{}, err
		}
		bv, err := b.At(i)
		if err != nil {
			return row.Row{}, err
		}
		coeffs[i] = av.Sub(bv)
	}
	return row.FromCoefficients(coeffs, core.Closed, row.RayPointOrInequality), nil
}

// generatorsToCongruences computes a Congruence_System equivalent to gg,
// restricted to grids whose lines and parameters are all axis-aligned
// (see ErrNonAxisAlignedLine). Given that restriction the construction
// below is exact: each dimension either carries no lattice structure at
// all (a line covers it: no congruence), is free to step by the gcd of
// every parameter's component on that axis, or is pinned to the base
// point's coordinate with no step at all.
func generatorsToCongruences(gg *gridgen.System) (*congruence.System, error) {
	dim := gg.Dim()
	var lines, params, points []gridgen.Generator
	for _, g := range gg.All() {
		switch {
		case g.IsLine():
			lines = append(lines, g)
		case g.IsParameter():
			params = append(params, g)
		case g.IsPoint():
			points = append(points, g)
		}
	}
	if len(points) == 0 {
		return nil, ErrNoPoint
	}
	base := points[0]
	d := gg.Divisor()

	free := map[int]bool{}
	for _, l := range lines {
		idx, _, err := soleNonzeroExcluding(l.Row(), dim, nil)
		if err != nil {
			return nil, err
		}
		if idx == -2 {
			return nil, ErrNonAxisAlignedLine
		}
		if idx >= 1 {
			free[idx] = true
		}
	}

	axisStep := map[int]scalar.Coefficient{}
	fold := func(r row.Row) error {
		idx, val, err := soleNonzeroExcluding(r, dim, free)
		if err != nil {
			return err
		}
		if idx == -2 {
			return ErrNonAxisAlignedLine
		}
		if idx == -1 {
			return nil
		}
		if cur, ok := axisStep[idx]; ok {
			axisStep[idx] = cur.Gcd(val)
		} else {
			axisStep[idx] = val.Abs()
		}
		return nil
	}
	for _, p := range params {
		if err := fold(p.Row()); err != nil {
			return nil, err
		}
	}
	for _, p := range points[1:] {
		diff, err := subtractRows(p.Row(), base.Row(), dim)
		if err != nil {
			return nil, err
		}
		if err := fold(diff); err != nil {
			return nil, err
		}
	}

	cs := congruence.NewSystem(dim)
	for i := 1; i <= dim; i++ {
		if free[i] {
			continue
		}
		bv, err := base.Row().At(i)
		if err != nil {
			return nil, err
		}
		coeffs := make([]scalar.Coefficient, dim+1)
		coeffs[i] = d
		coeffs[0] = bv.Neg()
		modulus := scalar.NewCoefficient(0)
		if s, ok := axisStep[i]; ok && !s.IsZero() {
			modulus = s
		}
		r := row.FromCoefficients(coeffs, core.Closed, row.RayPointOrInequality)
		c, err := congruence.FromRow(r, modulus)
		if err != nil {
			return nil, err
		}
		if err := cs.Insert(c); err != nil {
			return nil, err
		}
	}
	return cs, nil
}

// congruencesToGenerators computes a Grid_Generator_System equivalent to
// cs. Relational congruences (more than one nonzero variable slot) are
// not rejected outright: cs is first run through congruence.System.Reduce,
// the modular Hermite-like reduction that combines rows sharing a
// variable until each has at most one, which resolves the common case
// (e.g. {2x ≡ 0 mod 4, 2x+2y ≡ 0 mod 4} reduces to {2x ≡ 0 mod 4, 2y ≡ 0
// mod 4}) before this function ever sees a relational row. Only a
// genuinely inseparable residual (no combination of rows pins a
// variable on its own) still falls back to ErrNonAxisAlignedLine. Each
// axis is then solved independently as a rational coset, merging
// multiple congruences on the same axis via CRT; axes untouched by any
// congruence become a free LINE, and axes whose coset has zero step
// become a pinned point coordinate.
func congruencesToGenerators(cs *congruence.System) (*gridgen.System, error) {
	dim := cs.Dim()
	perAxis := map[int]coset{}

	reducedCs, infeasible, ok, err := cs.Reduce()
	if err != nil {
		return nil, err
	}
	if infeasible {
		return nil, nil
	}
	if ok {
		cs = reducedCs
	}

	for _, c := range cs.All() {
		idx, val, err := soleNonzeroExcluding(c.Row(), dim, nil)
		if err != nil {
			return nil, err
		}
		if idx == -2 {
			return nil, ErrNonAxisAlignedLine
		}
		b := c.Inhomogeneous()
		m := c.Modulus()
		if idx == -1 {
			if m.IsZero() {
				if !b.IsZero() {
					return nil, nil
				}
				continue
			}
			bm := new(big.Int).Mod(b.BigInt(), m.BigInt())
			if bm.Sign() != 0 {
				return nil, nil
			}
			continue
		}

		var cs1 coset
		if m.IsZero() {
			rat := new(big.Rat).SetFrac(new(big.Int).Neg(b.BigInt()), val.BigInt())
			cs1 = coset{x0: scalar.NewRationalFromBigRat(rat), step: scalar.Zero()}
		} else {
			cs1 = solveLinearCongruence(val, b, m)
		}

		if existing, ok := perAxis[idx]; ok {
			merged, ok2 := mergeCosets(existing, cs1)
			if !ok2 {
				return nil, nil
			}
			perAxis[idx] = merged
		} else {
			perAxis[idx] = cs1
		}
	}

	d := scalar.NewCoefficient(1)
	for _, c := range perAxis {
		d = d.Lcm(c.x0.Den())
		if !c.step.IsZero() {
			d = d.Lcm(c.step.Den())
		}
	}
	dRat := scalar.NewRationalFromCoefficient(d)

	pointCoeffs := make([]scalar.Coefficient, dim+1)
	for i, c := range perAxis {
		v := c.x0.Mul(dRat)
		pointCoeffs[i] = v.Num()
	}
	pointRow := row.FromCoefficients(pointCoeffs, core.Closed, row.RayPointOrInequality)
	gg := gridgen.NewSystem(dim)
	if err := gg.Insert(gridgen.FromRow(pointRow, gridgen.PointType, d)); err != nil {
		return nil, err
	}

	for i := 1; i <= dim; i++ {
		c, ok := perAxis[i]
		if !ok {
			coeffs := make([]scalar.Coefficient, dim+1)
			coeffs[i] = scalar.NewCoefficient(1)
			lr := row.FromCoefficients(coeffs, core.Closed, row.LineOrEquality)
			if err := gg.Insert(gridgen.FromRow(lr, gridgen.LineType, scalar.NewCoefficient(1))); err != nil {
				return nil, err
			}
			continue
		}
		if c.step.IsZero() {
			continue
		}
		stepScaled := c.step.Mul(dRat)
		coeffs := make([]scalar.Coefficient, dim+1)
		coeffs[i] = stepScaled.Num()
		pr := row.FromCoefficients(coeffs, core.Closed, row.RayPointOrInequality)
		if err := gg.Insert(gridgen.FromRow(pr, gridgen.ParameterType, d)); err != nil {
			return nil, err
		}
	}
	return gg, nil
}
