package gridgen

import "errors"

// ErrNonPositiveDivisor is returned when a POINT or PARAMETER is built
// with a divisor <= 0.
var ErrNonPositiveDivisor = errors.New("gridgen: divisor must be positive")

// ErrDimensionMismatch is returned when a grid generator's dimension does
// not match the system it is being added to.
var ErrDimensionMismatch = errors.New("gridgen: dimension mismatch")

// ErrNoPointInSystem is returned when a Grid_Generator system lacking any
// POINT is used where one is required.
var ErrNoPointInSystem = errors.New("gridgen: system has no point")
