package grid

import "errors"

// ErrDimensionMismatch is returned when an operand's space dimension
// does not match the receiver's.
var ErrDimensionMismatch = errors.New("grid: dimension mismatch")

// ErrNoPoint is returned by FromGenerators when the supplied generator
// system has no point, so describes no grid at all.
var ErrNoPoint = errors.New("grid: generator system has no point")

// ErrNonAxisAlignedLine is returned by the congruence/generator
// conversion when a grid-generator LINE is not a single coordinate axis
// (exactly one nonzero coefficient). Oblique lines are a documented
// scope limitation of this conversion (see DESIGN.md): the dual
// congruence system for an oblique free direction requires expressing
// the quotient by an arbitrary subspace, which this package does not
// implement.
var ErrNonAxisAlignedLine = errors.New("grid: line generator is not axis-aligned")

// ErrZeroDivisor is returned when a divisor argument is not positive.
var ErrZeroDivisor = errors.New("grid: divisor must be positive")
