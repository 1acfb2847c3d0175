package core

import "context"

// MaxSpaceDimension is the platform-defined maximum space dimension any
// system or domain object may reach. Operations that would exceed it
// raise a LengthError rather than allocating an unbounded row.
const MaxSpaceDimension = 1 << 20

// Topology distinguishes necessarily-closed linear systems from
// not-necessarily-closed ones that carry an implicit epsilon dimension
// for encoding strict inequalities.
type Topology int

const (
	// Closed marks a system with no strict inequalities and no epsilon slot.
	Closed Topology = iota
	// NotClosed marks a system whose rows reserve a trailing epsilon coefficient.
	NotClosed
)

func (t Topology) String() string {
	if t == Closed {
		return "NECESSARILY_CLOSED"
	}
	return "NOT_NECESSARILY_CLOSED"
}

// RelSym is a relation symbol used by generalized affine image/preimage
// and by relation-with-constraint queries.
type RelSym int

const (
	LessThan RelSym = iota
	LessOrEqual
	Equal
	GreaterOrEqual
	GreaterThan
	NotEqual
)

// Complexity bounds the effort a coercion or query may spend.
type Complexity int

const (
	Polynomial Complexity = iota
	Simplex
	Any
)

// ReductionStrategy selects how a Partially_Reduced_Product keeps its two
// components in sync.
type ReductionStrategy int

const (
	// NoReduction performs no cross-component refinement.
	NoReduction ReductionStrategy = iota
	// SmashReduction collapses both components to empty when either is empty.
	SmashReduction
	// ConstraintsReduction refines each component by the other. No numdom
	// package consumes this enum: powerset.Product has its own Reduction,
	// whose ConstraintsReduction exchanges bounding boxes once, with no
	// fixpoint iteration and no context check.
	ConstraintsReduction
)

// Relation is a bitset of the outcomes relation_with(Constraint)/
// relation_with(Congruence) may return.
type Relation uint8

const (
	IsIncluded Relation = 1 << iota
	Saturates
	IsDisjoint
	StrictlyIntersects
	Subsumes
	Nothing Relation = 0
)

// Has reports whether r contains the bit f.
func (r Relation) Has(f Relation) bool { return r&f != 0 }

// CheckAbandoned returns an AbandonedError wrapping ctx.Err() if ctx has
// been canceled or has exceeded its deadline, and nil otherwise. Every
// long-running loop in numdom calls this at its head, the same way an
// augmenting-path search checks ctx.Err() before each phase.
func CheckAbandoned(ctx context.Context, method string) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return NewAbandonedError(method, ctx.Err())
	default:
		return nil
	}
}
