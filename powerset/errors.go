package powerset

import "errors"

// ErrDimensionMismatch is returned when a disjunct's dimension does not
// match the set it is being added to, or when a Product's two factors
// disagree on dimension.
var ErrDimensionMismatch = errors.New("powerset: dimension mismatch")

// ErrEmptySet names a set with no disjuncts. No function in this package
// returns it: a Set with no disjuncts is treated as bottom.
var ErrEmptySet = errors.New("powerset: set has no disjuncts")
