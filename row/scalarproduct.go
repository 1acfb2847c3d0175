package row

import "github.com/latticeforge/numdom/scalar"

// ScalarProduct computes Σ r.coeffs[i] * o.coeffs[i] over the full row
// (slot 0 included), the product consulted throughout conversion and
// relation tests. Factored into one shared routine rather than inlined
// at each call site, since polyhedron and grid relation tests and
// conversion both need it.
//
// Returns ErrDimensionMismatch if the two rows have different dimension.
func ScalarProduct(r, o Row) (scalar.Coefficient, error) {
	if r.Dim() != o.Dim() {
		return scalar.Coefficient{}, ErrDimensionMismatch
	}
	sum := scalar.NewCoefficient(0)
	for i := range r.coeffs {
		sum = sum.Add(r.coeffs[i].Mul(o.coeffs[i]))
	}
	return sum, nil
}

// HomogeneousScalarProduct computes Σ r.coeffs[i] * o.coeffs[i] over
// variables only (i = 1..dim), used when a generator's slot 0 (its
// divisor) must not participate, e.g. when testing whether a ray is
// parallel to a constraint's direction.
func HomogeneousScalarProduct(r, o Row) (scalar.Coefficient, error) {
	if r.Dim() != o.Dim() {
		return scalar.Coefficient{}, ErrDimensionMismatch
	}
	sum := scalar.NewCoefficient(0)
	for i := 1; i <= r.Dim(); i++ {
		sum = sum.Add(r.coeffs[i].Mul(o.coeffs[i]))
	}
	return sum, nil
}
