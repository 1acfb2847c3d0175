package box

import "errors"

// ErrDimensionMismatch is returned when two boxes of different space
// dimension are combined.
var ErrDimensionMismatch = errors.New("box: dimension mismatch")

// ErrNotIntervalConstraint is returned by AddConstraintNoCheck when the
// constraint has non-zero coefficients on more than one variable.
var ErrNotIntervalConstraint = errors.New("box: not an interval constraint")

// ErrStrictOnClosedKind names the failure of offering a strict
// inequality to a Box whose interval kind has no open bounds. Every Box
// here is built on interval.Interval, whose bounds can be open, so no
// function in this package returns it.
var ErrStrictOnClosedKind = errors.New("box: strict inequality requires an open-capable interval kind")
