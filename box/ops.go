package box

import "github.com/latticeforge/numdom/interval"

// intervalEqual reports whether a and b have identical endpoints.
func intervalEqual(a, b interval.Interval) bool {
	return a.Lower().Cmp(b.Lower()) == 0 && a.Lower().Open() == b.Lower().Open() &&
		a.Upper().Cmp(b.Upper()) == 0 && a.Upper().Open() == b.Upper().Open()
}

// IntersectionAssign narrows b to b ∩ other, per-dimension.
func (b *Box) IntersectionAssign(other *Box) error {
	if b.Dim() != other.Dim() {
		return ErrDimensionMismatch
	}
	for i := range b.dims {
		b.dims[i] = b.dims[i].IntersectAssign(other.dims[i])
	}
	b.state = UnknownEmpty
	return nil
}

// UpperBoundAssign widens b to the smallest box containing b ∪ other,
// i.e. the per-dimension convex hull. The result can hold points of
// neither operand; UpperBoundAssignIfExact joins only when it does not.
func (b *Box) UpperBoundAssign(other *Box) error {
	if b.Dim() != other.Dim() {
		return ErrDimensionMismatch
	}
	if b.IsEmpty() {
		copy(b.dims, other.dims)
		b.state = other.state
		return nil
	}
	if other.IsEmpty() {
		return nil
	}
	for i := range b.dims {
		b.dims[i] = b.dims[i].JoinAssign(other.dims[i])
	}
	b.state = UnknownEmpty
	return nil
}

// UpperBoundAssignIfExact behaves like UpperBoundAssign but leaves b
// unchanged and returns false when the union is not itself representable
// as a box: some dimension's pair of intervals neither overlaps nor
// touches (CanBeExactlyJoinedTo is false), or the two boxes differ on
// more than one dimension and neither contains the other.
func (b *Box) UpperBoundAssignIfExact(other *Box) (bool, error) {
	if b.Dim() != other.Dim() {
		return false, ErrDimensionMismatch
	}
	if b.IsEmpty() || other.IsEmpty() {
		return true, b.UpperBoundAssign(other)
	}
	differing := 0
	bContains, otherContains := true, true
	for i := range b.dims {
		if !b.dims[i].CanBeExactlyJoinedTo(other.dims[i]) {
			return false, nil
		}
		if !intervalEqual(b.dims[i], other.dims[i]) {
			differing++
		}
		bContains = bContains && b.dims[i].Contains(other.dims[i])
		otherContains = otherContains && other.dims[i].Contains(b.dims[i])
	}
	if differing > 1 && !bContains && !otherContains {
		return false, nil
	}
	return true, b.UpperBoundAssign(other)
}

// DifferenceAssign narrows b to b \ other when the result is exactly
// representable as a box: the two boxes must differ along at most one
// dimension, matching interval.Interval.DifferenceAssign's single-axis
// exactness contract generalized across the whole vector.
func (b *Box) DifferenceAssign(other *Box) (bool, error) {
	if b.Dim() != other.Dim() {
		return false, ErrDimensionMismatch
	}
	if b.IsEmpty() {
		return true, nil
	}
	if other.IsEmpty() {
		return true, nil
	}
	differingAxis := -1
	for i := range b.dims {
		if !intervalEqual(b.dims[i], other.dims[i]) {
			if differingAxis != -1 {
				return false, nil
			}
			differingAxis = i
		}
	}
	if differingAxis == -1 {
		// other covers b entirely on every axis: the difference is empty.
		for i := range b.dims {
			b.dims[i] = interval.Empty()
		}
		b.state = Empty
		return true, nil
	}
	cut, ok := b.dims[differingAxis].DifferenceAssign(other.dims[differingAxis])
	if !ok {
		return false, nil
	}
	b.dims[differingAxis] = cut
	b.state = UnknownEmpty
	return true, nil
}
