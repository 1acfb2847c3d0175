package scalar

import "errors"

// ErrDivisionByZero is returned by any operation that would divide by zero.
var ErrDivisionByZero = errors.New("scalar: division by zero")

// ErrNonPositiveDenominator names a non-positive denominator. No function
// returns it: NewRational canonicalizes a negative denominator and
// reports a zero one as ErrDivisionByZero.
var ErrNonPositiveDenominator = errors.New("scalar: denominator must be positive")

// ErrOverflow names a value a fixed-width conversion cannot represent.
// No function returns it: Coefficient.Int64 reports an inexact
// conversion through its bool result.
var ErrOverflow = errors.New("scalar: overflow")
