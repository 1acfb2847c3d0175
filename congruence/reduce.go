package congruence

import (
	"math/big"

	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
)

// relRow is a mutable congruence row used by Reduce: coeffs[0] is the
// inhomogeneous term b, coeffs[i] (1<=i<=dim) the coefficient of
// variable i.
type relRow struct {
	coeffs  []scalar.Coefficient
	modulus scalar.Coefficient
}

func (c Congruence) toRelRow(dim int) (relRow, error) {
	coeffs := make([]scalar.Coefficient, dim+1)
	coeffs[0] = c.Inhomogeneous()
	for i := 1; i <= dim; i++ {
		v, err := c.Coefficient(i)
		if err != nil {
			return relRow{}, err
		}
		coeffs[i] = v
	}
	return relRow{coeffs: coeffs, modulus: c.Modulus()}, nil
}

func (r relRow) toCongruence() (Congruence, error) {
	kind := row.RayPointOrInequality
	if r.modulus.IsZero() {
		kind = row.LineOrEquality
	}
	rr := row.FromCoefficients(r.coeffs, core.Closed, kind)
	return FromRow(rr, r.modulus)
}

// nonzeroCount reports how many of r's variable slots are nonzero.
func (r relRow) nonzeroCount() int {
	n := 0
	for _, c := range r.coeffs[1:] {
		if !c.IsZero() {
			n++
		}
	}
	return n
}

// subtractScaled returns a-q*b, elementwise over every coefficient slot
// including the constant term. Only a ever loses precision: scaling b by
// an integer and subtracting it still holds modulo b's own modulus, so
// the combination is only as precise as whichever modulus is coarser,
// except when one side is an equality (modulus 0), where Gcd(0, m) = m
// leaves the other side's modulus untouched.
func subtractScaled(a, b relRow, q *big.Int) relRow {
	qc := scalar.NewCoefficientFromBigInt(q)
	coeffs := make([]scalar.Coefficient, len(a.coeffs))
	for i := range coeffs {
		coeffs[i] = a.coeffs[i].Sub(b.coeffs[i].Mul(qc))
	}
	return relRow{coeffs: coeffs, modulus: a.modulus.Gcd(b.modulus)}
}

// betterDivisor reports whether candidate should be preferred over
// current as the divisor row when eliminating dimension d: fewer
// nonzero variable coefficients overall, ties broken by the smaller
// coefficient at d. Whether a row is an equality plays no part.
func betterDivisor(candidate, current relRow, d int) bool {
	cc, cu := candidate.nonzeroCount(), current.nonzeroCount()
	if cc != cu {
		return cc < cu
	}
	return candidate.coeffs[d].Abs().Cmp(current.coeffs[d].Abs()) < 0
}

// eliminateDimension drives every row but one toward a zero coefficient
// at d, each step subtracting a multiple of the divisor (the sparsest
// row) from the other row of largest magnitude there (a
// Euclidean-algorithm reduction run per-dimension rather than over a
// single pair). When the divisor's coefficient is the larger one the two
// swap roles, so the sparsest row can be rewritten too. q truncates
// toward zero the way scalar.Coefficient's own division helpers do. When
// every row with a nonzero coefficient at d is already axis-aligned, the
// rows are left untouched: combining two of them would keep only the gcd
// of their moduli.
func eliminateDimension(rows []relRow, d int) bool {
	changed := false
	for {
		var idxs []int
		for i := range rows {
			if !rows[i].coeffs[d].IsZero() {
				idxs = append(idxs, i)
			}
		}
		if len(idxs) < 2 {
			return changed
		}
		aligned := true
		for _, i := range idxs {
			if rows[i].nonzeroCount() > 1 {
				aligned = false
			}
		}
		if aligned {
			return changed
		}

		divisor := idxs[0]
		for _, i := range idxs[1:] {
			if betterDivisor(rows[i], rows[divisor], d) {
				divisor = i
			}
		}
		target := -1
		for _, i := range idxs {
			if i == divisor {
				continue
			}
			if target == -1 || rows[i].coeffs[d].Abs().Cmp(rows[target].coeffs[d].Abs()) > 0 {
				target = i
			}
		}

		q := new(big.Int).Quo(rows[target].coeffs[d].BigInt(), rows[divisor].coeffs[d].BigInt())
		if q.Sign() == 0 {
			divisor, target = target, divisor
			q = new(big.Int).Quo(rows[target].coeffs[d].BigInt(), rows[divisor].coeffs[d].BigInt())
			if q.Sign() == 0 {
				return changed
			}
		}
		rows[target] = subtractScaled(rows[target], rows[divisor], q)
		changed = true
	}
}

// Reduce puts s into an axis-aligned form where every row has at most
// one nonzero variable coefficient: the modular Hermite-like reduction
// that combines any two rows still sharing a nonzero coefficient on some
// dimension, one dimension at a time, until no dimension is shared by
// more than one row or a fixed cap of passes is reached. Several rows
// that are each already axis-aligned on the same dimension are kept as
// separate rows rather than combined. Equalities are
// not processed first: an equality rewritten using a proper congruence
// takes that congruence's modulus, so the result can be coarser than s.
//
// infeasible reports that some row reduced to an unsatisfiable constant
// (an inhomogeneous term that is not a multiple of its own modulus, or a
// nonzero equality constant); reduced is then nil. ok reports whether
// every row reached axis-aligned form; a system with a row spanning two
// or more variables with no way to separate them (e.g. "x+y ≡ 0 (mod
// 2)" standing alone) is a genuine relational residual, not a reduction
// failure, and ok is false with reduced nil so the caller can fall back.
func (s *System) Reduce() (reduced *System, infeasible bool, ok bool, err error) {
	dim := s.Dim()
	all := s.All()
	rows := make([]relRow, len(all))
	for i, c := range all {
		rows[i], err = c.toRelRow(dim)
		if err != nil {
			return nil, false, false, err
		}
	}

	const maxPasses = 64
	for pass := 0; pass < maxPasses; pass++ {
		changed := false
		for d := 1; d <= dim; d++ {
			if eliminateDimension(rows, d) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	out := NewSystem(dim)
	for _, r := range rows {
		switch r.nonzeroCount() {
		case 0:
			b := r.coeffs[0]
			if r.modulus.IsZero() {
				if !b.IsZero() {
					return nil, true, true, nil
				}
				continue
			}
			bm := new(big.Int).Mod(b.BigInt(), r.modulus.BigInt())
			if bm.Sign() != 0 {
				return nil, true, true, nil
			}
			continue
		case 1:
			c, cerr := r.toCongruence()
			if cerr != nil {
				return nil, false, false, cerr
			}
			if ierr := out.Insert(c); ierr != nil {
				return nil, false, false, ierr
			}
		default:
			return nil, false, false, nil
		}
	}
	return out, false, true, nil
}
