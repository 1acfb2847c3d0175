package octagon

import "errors"

// ErrDimensionMismatch is returned when two shapes of different space
// dimension are combined.
var ErrDimensionMismatch = errors.New("octagon: dimension mismatch")

// ErrNotOctagonalConstraint is returned when a constraint offered to
// AddConstraint has more than two non-zero variables, or a two-variable
// coefficient pair other than ±1/±1.
var ErrNotOctagonalConstraint = errors.New("octagon: not an octagonal constraint")
