package scalar

// Result classifies the outcome of an operation on a Bound: exact, or
// rounded in a documented direction, or an overflow. Bound.Add takes a
// RoundingDir (see core.RoundingDir) and reports back one of these so
// callers can tell whether precision was lost.
type Result int

const (
	VEQ Result = iota // exact
	VLT               // rounded down, result strictly less than the true value
	VGT               // rounded up, result strictly greater than the true value
	VLE               // result less than or equal to the true value, exactness unknown
	VGE               // result greater than or equal to the true value, exactness unknown
	VOverflow
)

// IsExact reports whether the Result represents an exact outcome.
func (r Result) IsExact() bool { return r == VEQ }

// Ternary tracks open/closed propagation through interval computations:
// NO (definitely closed), YES (definitely open), MAYBE (depends on a
// value not yet known, e.g. because one side is a Result-rounded Bound).
type Ternary int

const (
	No Ternary = iota
	Maybe
	Yes
)

// Or combines openness when two bounds are merged by an operation that
// keeps the more permissive (open) side if either contributor is open.
func (t Ternary) Or(o Ternary) Ternary {
	if t == Yes || o == Yes {
		return Yes
	}
	if t == Maybe || o == Maybe {
		return Maybe
	}
	return No
}

// And combines openness when both sides must independently hold (e.g.
// intersection): open only if both are open, closed if either is closed.
func (t Ternary) And(o Ternary) Ternary {
	if t == No || o == No {
		return No
	}
	if t == Maybe || o == Maybe {
		return Maybe
	}
	return Yes
}

// Bool converts a definite Ternary to bool; Maybe panics, since callers
// must resolve Maybe before treating openness as a plain bool.
func (t Ternary) Bool() bool {
	switch t {
	case Yes:
		return true
	case No:
		return false
	default:
		panic("scalar: Ternary.Bool called on Maybe")
	}
}

// FromBool lifts a definite boolean into a Ternary.
func FromBool(b bool) Ternary {
	if b {
		return Yes
	}
	return No
}
