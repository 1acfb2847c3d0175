package box

import "github.com/latticeforge/numdom/scalar"

// CC76WideningAssign widens b towards other, per dimension, using
// interval.Interval.CC76WideningAssign with a shared stop-point set and
// token budget so at most tokenBudget dimensions may each absorb one
// otherwise-imprecise widening step before falling back to the standard
// stop-point relaxation.
func (b *Box) CC76WideningAssign(other *Box, stopPoints []scalar.Rational, tokenBudget *int) error {
	if b.Dim() != other.Dim() {
		return ErrDimensionMismatch
	}
	if other.IsEmpty() {
		return nil
	}
	if b.IsEmpty() {
		copy(b.dims, other.dims)
		b.state = other.state
		return nil
	}
	for i := range b.dims {
		b.dims[i] = b.dims[i].CC76WideningAssign(other.dims[i], stopPoints, tokenBudget)
	}
	b.state = UnknownEmpty
	return nil
}
