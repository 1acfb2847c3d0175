package row

import "errors"

// ErrDimensionMismatch is returned when two rows of different space
// dimension are combined.
var ErrDimensionMismatch = errors.New("row: dimension mismatch")

// ErrIndexOutOfRange is returned by At/Set when the variable index is
// outside [1, dim].
var ErrIndexOutOfRange = errors.New("row: index out of range")

// ErrEpsilonOnClosed is returned when the epsilon coefficient is accessed
// on a CLOSED row, which has no epsilon slot.
var ErrEpsilonOnClosed = errors.New("row: no epsilon slot on a closed row")

// ErrEqualityEpsilonNonzero is returned by StronglyNormalize when an
// equality row with topology NOT_CLOSED carries a non-zero epsilon
// coefficient: an equality has no strict side, so epsilon must be zero.
var ErrEqualityEpsilonNonzero = errors.New("row: equality row has non-zero epsilon coefficient")

// ErrZeroRow is returned by StronglyNormalize when every coefficient
// (homogeneous and inhomogeneous) is zero; such a row has no canonical
// sign and must be handled by the caller before normalization.
var ErrZeroRow = errors.New("row: all-zero row has no canonical form")
