package row

import (
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/scalar"
)

// Kind distinguishes a row that denotes a line or an equality (both
// describe a bidirectional linear constraint/direction) from one that
// denotes a ray, point, or inequality (a one-sided constraint/direction).
type Kind int

const (
	// LineOrEquality rows admit both signs: equalities (Σaᵢxᵢ+b=0) and lines.
	LineOrEquality Kind = iota
	// RayPointOrInequality rows are one-sided: inequalities, rays, points.
	RayPointOrInequality
)

// Row is the shared representation of a linear row: slot 0 plus one slot
// per dimension, an optional epsilon slot present only under topology
// NotClosed, a topology, and a kind.
//
// Slot 0 carries whichever meaning the wrapping view assigns it (the
// inhomogeneous term b for constraints/congruences, the divisor for
// generators/grid-generators); row itself is agnostic.
type Row struct {
	coeffs   []scalar.Coefficient // length dim+1: coeffs[0] = slot 0, coeffs[1..dim] = variables
	epsilon  scalar.Coefficient
	hasEps   bool
	topology core.Topology
	kind     Kind
}

// New builds a zero Row of the given space dimension.
func New(dim int, topology core.Topology, kind Kind) Row {
	coeffs := make([]scalar.Coefficient, dim+1)
	for i := range coeffs {
		coeffs[i] = scalar.NewCoefficient(0)
	}
	return Row{
		coeffs:   coeffs,
		epsilon:  scalar.NewCoefficient(0),
		hasEps:   topology == core.NotClosed,
		topology: topology,
		kind:     kind,
	}
}

// FromCoefficients builds a Row copying the given slot-0-through-dim
// coefficients verbatim.
func FromCoefficients(coeffs []scalar.Coefficient, topology core.Topology, kind Kind) Row {
	cp := make([]scalar.Coefficient, len(coeffs))
	copy(cp, coeffs)
	return Row{
		coeffs:   cp,
		epsilon:  scalar.NewCoefficient(0),
		hasEps:   topology == core.NotClosed,
		topology: topology,
		kind:     kind,
	}
}

// Dim returns the space dimension (number of variable slots, excluding slot 0).
func (r Row) Dim() int { return len(r.coeffs) - 1 }

// Topology returns the row's topology.
func (r Row) Topology() core.Topology { return r.topology }

// Kind returns the row's kind.
func (r Row) Kind() Kind { return r.kind }

// WithKind returns a copy of r with a different kind tag.
func (r Row) WithKind(k Kind) Row {
	out := r.clone()
	out.kind = k
	return out
}

// Slot0 returns coeffs[0].
func (r Row) Slot0() scalar.Coefficient { return r.coeffs[0] }

// SetSlot0 sets coeffs[0].
func (r *Row) SetSlot0(c scalar.Coefficient) { r.coeffs[0] = c }

// At returns the coefficient of variable i (1-origin, 1..Dim()).
func (r Row) At(i int) (scalar.Coefficient, error) {
	if i < 1 || i > r.Dim() {
		return scalar.Coefficient{}, ErrIndexOutOfRange
	}
	return r.coeffs[i], nil
}

// Set sets the coefficient of variable i (1-origin).
func (r *Row) Set(i int, c scalar.Coefficient) error {
	if i < 1 || i > r.Dim() {
		return ErrIndexOutOfRange
	}
	r.coeffs[i] = c
	return nil
}

// Epsilon returns the epsilon coefficient. Returns ErrEpsilonOnClosed
// when the row's topology is Closed.
func (r Row) Epsilon() (scalar.Coefficient, error) {
	if !r.hasEps {
		return scalar.Coefficient{}, ErrEpsilonOnClosed
	}
	return r.epsilon, nil
}

// SetEpsilon sets the epsilon coefficient. Returns ErrEpsilonOnClosed
// when the row's topology is Closed.
func (r *Row) SetEpsilon(c scalar.Coefficient) error {
	if !r.hasEps {
		return ErrEpsilonOnClosed
	}
	r.epsilon = c
	return nil
}

// HomogeneousCoefficients returns a defensive copy of coeffs[1..dim].
func (r Row) HomogeneousCoefficients() []scalar.Coefficient {
	out := make([]scalar.Coefficient, r.Dim())
	copy(out, r.coeffs[1:])
	return out
}

// AllCoefficients returns a defensive copy of coeffs[0..dim].
func (r Row) AllCoefficients() []scalar.Coefficient {
	out := make([]scalar.Coefficient, len(r.coeffs))
	copy(out, r.coeffs)
	return out
}

// IsZero reports whether every coefficient (slot 0, variables, and
// epsilon if present) is zero.
func (r Row) IsZero() bool {
	for _, c := range r.coeffs {
		if !c.IsZero() {
			return false
		}
	}
	return !r.hasEps || r.epsilon.IsZero()
}

func (r Row) clone() Row {
	out := Row{
		coeffs:   make([]scalar.Coefficient, len(r.coeffs)),
		epsilon:  r.epsilon,
		hasEps:   r.hasEps,
		topology: r.topology,
		kind:     r.kind,
	}
	copy(out.coeffs, r.coeffs)
	return out
}

// Clone returns a deep copy of r.
func (r Row) Clone() Row { return r.clone() }

// AddZeroColumns returns a copy of r with k new zero variable slots
// appended after the current last dimension.
func (r Row) AddZeroColumns(k int) Row {
	out := r.clone()
	zeros := make([]scalar.Coefficient, k)
	for i := range zeros {
		zeros[i] = scalar.NewCoefficient(0)
	}
	out.coeffs = append(out.coeffs, zeros...)
	return out
}

// RemoveTrailingColumns returns a copy of r with its last k variable
// slots removed.
func (r Row) RemoveTrailingColumns(k int) (Row, error) {
	if k < 0 || k > r.Dim() {
		return Row{}, ErrIndexOutOfRange
	}
	out := r.clone()
	out.coeffs = out.coeffs[:len(out.coeffs)-k]
	return out, nil
}

// PermuteColumns reorders variable coefficients (1-origin indices)
// according to cycles: each cycle is a sequence of 1-origin indices
// terminated implicitly by returning to its first element, e.g. [2,3,1]
// means slot 2 receives what was in slot 3, slot 3 receives what was in
// slot 1, slot 1 receives what was in slot 2. The caller supplies the
// permutation as a single array mapping newIndex -> oldIndex (1-origin),
// which is the form linsys.PermuteColumns produces from PPL-style cycles.
func (r Row) PermuteColumns(newFromOld []int) (Row, error) {
	if len(newFromOld) != r.Dim() {
		return Row{}, ErrDimensionMismatch
	}
	out := r.clone()
	for newIdx, oldIdx := range newFromOld {
		if oldIdx < 1 || oldIdx > r.Dim() {
			return Row{}, ErrIndexOutOfRange
		}
		out.coeffs[newIdx+1] = r.coeffs[oldIdx]
	}
	return out, nil
}
