package constraint

import "errors"

// ErrStrictOnClosedTopology is returned when a STRICT_INEQUALITY is
// requested on a system of topology core.Closed, which has no epsilon
// slot to encode strictness.
var ErrStrictOnClosedTopology = errors.New("constraint: strict inequality requires NOT_CLOSED topology")

// ErrDimensionMismatch is returned when a constraint's dimension does not
// match the system it is being added to.
var ErrDimensionMismatch = errors.New("constraint: dimension mismatch")
