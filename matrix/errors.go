package matrix

import "errors"

// ErrIndexOutOfRange is returned by At/Set when a row or column index is
// outside the matrix's bounds.
var ErrIndexOutOfRange = errors.New("matrix: index out of range")

// ErrDimensionMismatch is returned when two matrices of incompatible
// shape are combined.
var ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

// ErrNotSquare names a square-only operation applied to a non-square
// matrix. No function in this package returns it: a BoundMatrix is
// always built square.
var ErrNotSquare = errors.New("matrix: matrix must be square")
