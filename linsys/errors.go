package linsys

import "errors"

// ErrTopologyMismatch is returned when a row's topology does not match
// the system's topology.
var ErrTopologyMismatch = errors.New("linsys: topology mismatch")

// ErrDimensionMismatch is returned when a row's space dimension does not
// match the system's space dimension.
var ErrDimensionMismatch = errors.New("linsys: dimension mismatch")

// ErrPendingIndexOutOfRange is returned when a first-pending index does
// not lie within [0, len(rows)].
var ErrPendingIndexOutOfRange = errors.New("linsys: pending index out of range")

// ErrTooManyColumns names a space dimension pushed past the platform
// maximum. No function in this package returns it: AddZeroColumns
// reports that case as a core.LengthError.
var ErrTooManyColumns = errors.New("linsys: space dimension overflow")
