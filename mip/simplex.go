// SPDX-License-Identifier: MIT
package mip

import (
	"context"

	"github.com/latticeforge/numdom/constraint"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/matrix"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
)

// Status is the outcome of a linear program.
type Status int

const (
	Optimal Status = iota
	Infeasible
	Unbounded
)

// Result is the outcome of Maximize/Minimize: a Status, and when
// Optimal, the attained objective Value.
type Result struct {
	Status Status
	Value  scalar.Rational
}

const maxIterations = 20000

// Maximize solves max{objective(x) : x satisfies every constraint of
// cs}, where objective is a linear form in cs's variables (its constant
// term is added to the optimum, not optimized over).
//
// Variables are unrestricted in sign (this is a polyhedron's own
// coordinate space, not a standard-form LP's), so each is split
// internally into a difference of two nonnegative variables, and
// StrictInequalityType constraints are treated as non-strict, the same
// epsilon-blind, boundary-inclusive over-approximation the rest of this
// module's conversion and widening logic makes.
func Maximize(ctx context.Context, cs *constraint.System, objective row.LinearExpression) (Result, error) {
	return solve(ctx, cs, objective, false)
}

// Minimize solves min{objective(x) : x satisfies every constraint of cs}.
func Minimize(ctx context.Context, cs *constraint.System, objective row.LinearExpression) (Result, error) {
	return solve(ctx, cs, objective, true)
}

func solve(ctx context.Context, cs *constraint.System, objective row.LinearExpression, minimize bool) (Result, error) {
	n := cs.Dim()
	rows := cs.All()
	m := len(rows)

	slackCol := make([]int, m)
	numSlack := 0
	for j, c := range rows {
		if c.IsEquality() {
			slackCol[j] = -1
		} else {
			slackCol[j] = numSlack
			numSlack++
		}
	}
	numU, numV := n, n
	baseCols := numU + numV
	slackStart := baseCols
	artStart := slackStart + numSlack
	numArt := m
	totalVars := artStart + numArt
	cols := totalVars + 1

	t := matrix.NewDense(m, cols)
	basis := make([]int, m)
	one := scalar.One()

	for j, c := range rows {
		rhsVal := scalar.NewRationalFromCoefficient(c.Inhomogeneous()).Neg()
		sign := one
		if rhsVal.Sign() < 0 {
			sign = one.Neg()
			rhsVal = rhsVal.Neg()
		}
		for i := 1; i <= n; i++ {
			coef, err := c.Coefficient(i)
			if err != nil {
				return Result{}, err
			}
			v := scalar.NewRationalFromCoefficient(coef).Mul(sign)
			_ = t.Set(j, i-1, v)
			_ = t.Set(j, numU+i-1, v.Neg())
		}
		if slackCol[j] >= 0 {
			_ = t.Set(j, slackStart+slackCol[j], one.Neg().Mul(sign))
		}
		_ = t.Set(j, artStart+j, one)
		_ = t.Set(j, cols-1, rhsVal)
		basis[j] = artStart + j
	}

	phase1Costs := make([]scalar.Rational, totalVars)
	for k := artStart; k < totalVars; k++ {
		phase1Costs[k] = one.Neg()
	}
	status, err := runSimplex(ctx, t, basis, phase1Costs, cols, artStart)
	if err != nil {
		return Result{}, err
	}
	if status == Unbounded {
		// The phase-1 objective (minimizing a sum of nonnegative
		// artificials) is always bounded below by zero; reaching this
		// branch means the feasible region itself degenerated in a way
		// this simplification does not expect, treated conservatively
		// as infeasible rather than propagating a contradiction.
		return Result{Status: Infeasible}, nil
	}
	w := objectiveValue(t, basis, phase1Costs, cols)
	if !w.IsZero() {
		return Result{Status: Infeasible}, nil
	}

	linear := objective.WithoutConstant()
	constant := scalar.NewRationalFromCoefficient(objective.Constant())
	effective := linear
	if minimize {
		effective = linear.Scale(-1)
	}
	phase2Costs := make([]scalar.Rational, totalVars)
	for i := 1; i <= n; i++ {
		a := scalar.NewRationalFromCoefficient(effective.CoefficientOf(i))
		phase2Costs[i-1] = a
		phase2Costs[numU+i-1] = a.Neg()
	}
	status, err = runSimplex(ctx, t, basis, phase2Costs, cols, artStart)
	if err != nil {
		return Result{}, err
	}
	if status == Unbounded {
		return Result{Status: Unbounded}, nil
	}
	raw := objectiveValue(t, basis, phase2Costs, cols)
	value := raw.Add(constant)
	if minimize {
		value = raw.Neg().Add(constant)
	}
	return Result{Status: Optimal, Value: value}, nil
}

// runSimplex runs the primal simplex method on t starting from basis,
// maximizing Σ costs[k]*x_k, considering only the first candidateCols
// columns as entering candidates (excluding the trailing artificial
// block keeps them pinned at their current, phase-1-driven-to-zero
// value instead of letting the method reintroduce them). Bland's rule
// (always pick the smallest-index improving column, and the
// smallest-index basic variable to break ratio-test ties) is used
// throughout to guarantee termination without a more elaborate
// anti-cycling pivot rule.
func runSimplex(ctx context.Context, t *matrix.Dense, basis []int, costs []scalar.Rational, cols, candidateCols int) (Status, error) {
	for iter := 0; iter < maxIterations; iter++ {
		if err := core.CheckAbandoned(ctx, "mip.simplex"); err != nil {
			return Infeasible, err
		}
		rc := reducedCosts(t, basis, costs, candidateCols)
		enter := -1
		for k := 0; k < candidateCols; k++ {
			if rc[k].Sign() > 0 {
				enter = k
				break
			}
		}
		if enter == -1 {
			return Optimal, nil
		}
		leave := -1
		var bestRatio scalar.Rational
		for i := 0; i < t.Rows(); i++ {
			aik, err := t.At(i, enter)
			if err != nil {
				return Infeasible, err
			}
			if aik.Sign() <= 0 {
				continue
			}
			rhs, err := t.At(i, cols-1)
			if err != nil {
				return Infeasible, err
			}
			ratio, _ := rhs.Quo(aik)
			if leave == -1 || ratio.Cmp(bestRatio) < 0 || (ratio.Cmp(bestRatio) == 0 && basis[i] < basis[leave]) {
				leave, bestRatio = i, ratio
			}
		}
		if leave == -1 {
			return Unbounded, nil
		}
		if err := pivotOn(t, leave, enter, cols); err != nil {
			return Infeasible, err
		}
		basis[leave] = enter
	}
	return Infeasible, core.NewRuntimeError("mip.simplex")
}

func reducedCosts(t *matrix.Dense, basis []int, costs []scalar.Rational, candidateCols int) []scalar.Rational {
	out := make([]scalar.Rational, candidateCols)
	for k := 0; k < candidateCols; k++ {
		z := scalar.Zero()
		for i := 0; i < t.Rows(); i++ {
			aik, _ := t.At(i, k)
			z = z.Add(costs[basis[i]].Mul(aik))
		}
		out[k] = costs[k].Sub(z)
	}
	return out
}

func objectiveValue(t *matrix.Dense, basis []int, costs []scalar.Rational, cols int) scalar.Rational {
	v := scalar.Zero()
	for i, b := range basis {
		rhs, _ := t.At(i, cols-1)
		v = v.Add(costs[b].Mul(rhs))
	}
	return v
}

func pivotOn(t *matrix.Dense, leave, enter, cols int) error {
	piv, err := t.At(leave, enter)
	if err != nil {
		return err
	}
	for c := 0; c < cols; c++ {
		v, err := t.At(leave, c)
		if err != nil {
			return err
		}
		nv, err := v.Quo(piv)
		if err != nil {
			return err
		}
		if err := t.Set(leave, c, nv); err != nil {
			return err
		}
	}
	for r := 0; r < t.Rows(); r++ {
		if r == leave {
			continue
		}
		factor, err := t.At(r, enter)
		if err != nil {
			return err
		}
		if factor.IsZero() {
			continue
		}
		for c := 0; c < cols; c++ {
			lv, _ := t.At(leave, c)
			rv, _ := t.At(r, c)
			if err := t.Set(r, c, rv.Sub(factor.Mul(lv))); err != nil {
				return err
			}
		}
	}
	return nil
}
