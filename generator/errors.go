package generator

import "errors"

// ErrNonPositiveDivisor is returned when a POINT or CLOSURE_POINT is
// built with a divisor <= 0.
var ErrNonPositiveDivisor = errors.New("generator: divisor must be positive")

// ErrClosurePointOnClosedTopology is returned when a CLOSURE_POINT is
// requested on a Closed topology, which admits no distinction between a
// point and its closure.
var ErrClosurePointOnClosedTopology = errors.New("generator: closure point requires NOT_CLOSED topology")

// ErrDimensionMismatch is returned when a generator's dimension does not
// match the system it is being added to.
var ErrDimensionMismatch = errors.New("generator: dimension mismatch")

// ErrNoPointInSystem is returned when a Generator system lacking any
// POINT or CLOSURE_POINT is used where at least one is required (e.g.
// building a Box from a Generator system).
var ErrNoPointInSystem = errors.New("generator: system has no point")
