package polyhedron

import "errors"

// ErrDimensionMismatch is returned when two polyhedra of different space
// dimension are combined.
var ErrDimensionMismatch = errors.New("polyhedron: dimension mismatch")

// ErrNoPoint is returned when a generator system offered as the seed of a
// polyhedron contains no point or closure point.
var ErrNoPoint = errors.New("polyhedron: generator system has no point")

// ErrNotEqualRelation is returned when NotEqual is passed to an operation
// that does not accept it (generalized affine image).
var ErrNotEqualRelation = errors.New("polyhedron: NOT_EQUAL relation symbol not allowed here")

// ErrZeroDivisor is returned when an affine image's divisor is zero or
// negative.
var ErrZeroDivisor = errors.New("polyhedron: zero or negative divisor")

// ErrExprReferencesVar is returned by GeneralizedAffineImage and
// BoundedAffineImage when the bounding expression references the
// variable being transformed, a case their forget-then-constrain
// construction does not handle (use AffineImage instead, which does).
var ErrExprReferencesVar = errors.New("polyhedron: expression references the transformed variable")
