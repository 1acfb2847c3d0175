package congruence

import "errors"

// ErrNegativeModulus is returned when a congruence is built with a
// negative modulus.
var ErrNegativeModulus = errors.New("congruence: modulus must be non-negative")

// ErrDimensionMismatch is returned when a congruence's dimension does not
// match the system it is being added to.
var ErrDimensionMismatch = errors.New("congruence: dimension mismatch")
