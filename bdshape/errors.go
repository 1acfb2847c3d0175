package bdshape

import "errors"

// ErrDimensionMismatch is returned when two shapes of different space
// dimension are combined.
var ErrDimensionMismatch = errors.New("bdshape: dimension mismatch")

// ErrNotDifferenceConstraint is returned when a constraint offered to
// AddConstraint involves more than two variables or a non-unit
// coefficient pattern that cannot be expressed as a difference bound.
var ErrNotDifferenceConstraint = errors.New("bdshape: not a difference-bound constraint")
