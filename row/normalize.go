package row

import "github.com/latticeforge/numdom/scalar"

// StronglyNormalize returns r divided by the gcd of its non-zero
// coefficients (slot 0, variables, and epsilon) with a sign applied so
// that, for LineOrEquality rows, the first non-zero homogeneous
// coefficient is positive. RayPointOrInequality rows keep their sign
// (dividing by a negative gcd would invert the half-space/ray they
// denote).
//
// Returns ErrEqualityEpsilonNonzero if r is a LineOrEquality row with
// topology NotClosed and a non-zero epsilon coefficient.
// Returns ErrZeroRow if every coefficient is zero.
func (r Row) StronglyNormalize() (Row, error) {
	if r.kind == LineOrEquality && r.hasEps && !r.epsilon.IsZero() {
		return Row{}, ErrEqualityEpsilonNonzero
	}
	if r.IsZero() {
		return Row{}, ErrZeroRow
	}

	all := make([]scalar.Coefficient, 0, len(r.coeffs)+1)
	all = append(all, r.coeffs...)
	if r.hasEps {
		all = append(all, r.epsilon)
	}
	g := scalar.GcdAll(all)
	if g.IsZero() {
		return Row{}, ErrZeroRow
	}

	out := r.clone()
	for i := range out.coeffs {
		q, err := out.coeffs[i].ExactDiv(g)
		if err != nil {
			return Row{}, err
		}
		out.coeffs[i] = q
	}
	if out.hasEps {
		q, err := out.epsilon.ExactDiv(g)
		if err != nil {
			return Row{}, err
		}
		out.epsilon = q
	}

	if out.kind == LineOrEquality {
		if sign := firstNonZeroHomogeneousSign(out); sign < 0 {
			out = out.negateAll()
		}
	}
	return out, nil
}

// firstNonZeroHomogeneousSign returns the sign of the first non-zero
// coefficient among coeffs[1..dim]; if all are zero, falls back to the
// sign of slot 0 (the only remaining candidate for a non-zero coefficient
// once StronglyNormalize has rejected the all-zero row).
func firstNonZeroHomogeneousSign(r Row) int {
	for i := 1; i <= r.Dim(); i++ {
		if s := r.coeffs[i].Sign(); s != 0 {
			return s
		}
	}
	return r.coeffs[0].Sign()
}

func (r Row) negateAll() Row {
	out := r.clone()
	for i := range out.coeffs {
		out.coeffs[i] = out.coeffs[i].Neg()
	}
	if out.hasEps {
		out.epsilon = out.epsilon.Neg()
	}
	return out
}

// IsStronglyNormalized reports whether r already equals its own
// StronglyNormalize() result, by recomputing gcd and sign without
// allocating the normalized copy's full arithmetic twice.
func (r Row) IsStronglyNormalized() bool {
	n, err := r.StronglyNormalize()
	if err != nil {
		return false
	}
	return r.Equal(n)
}

// Equal reports exact coefficient-wise equality, including the epsilon
// slot when present, ignoring kind (callers compare kind separately when
// it matters).
func (r Row) Equal(o Row) bool {
	if r.Dim() != o.Dim() || r.topology != o.topology {
		return false
	}
	for i := range r.coeffs {
		if r.coeffs[i].Cmp(o.coeffs[i]) != 0 {
			return false
		}
	}
	if r.hasEps != o.hasEps {
		return false
	}
	if r.hasEps && r.epsilon.Cmp(o.epsilon) != 0 {
		return false
	}
	return true
}
