package saturation

import "errors"

// ErrIndexOutOfRange is returned when a generator or constraint index is
// outside the matrix's bounds.
var ErrIndexOutOfRange = errors.New("saturation: index out of range")
