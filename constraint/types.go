// SPDX-License-Identifier: MIT
package constraint

import (
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/linsys"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
)

// Type distinguishes the three constraint relations.
type Type int

const (
	EqualityType Type = iota
	NonStrictInequalityType
	StrictInequalityType
)

// Constraint is a row.Row interpreted as Σaᵢxᵢ+b {=0, ≥0, >0}. Slot 0
// holds b. Strict inequalities are encoded, on a NotClosed row, by a
// negative epsilon coefficient.
type Constraint struct {
	r row.Row
}

// FromRow wraps r as a Constraint of the given type, validating the
// strictness/topology relationship.
func FromRow(r row.Row, typ Type) (Constraint, error) {
	if typ == StrictInequalityType && r.Topology() == core.Closed {
		return Constraint{}, ErrStrictOnClosedTopology
	}
	kind := row.RayPointOrInequality
	if typ == EqualityType {
		kind = row.LineOrEquality
	}
	r = r.WithKind(kind)
	if r.Topology() == core.NotClosed {
		switch typ {
		case StrictInequalityType:
			_ = r.SetEpsilon(scalar.NewCoefficient(-1))
		case EqualityType:
			_ = r.SetEpsilon(scalar.NewCoefficient(0))
		default:
			_ = r.SetEpsilon(scalar.NewCoefficient(0))
		}
	}
	return Constraint{r: r}, nil
}

// Type reports the constraint's relation.
func (c Constraint) Type() Type {
	if c.r.Kind() == row.LineOrEquality {
		return EqualityType
	}
	if c.r.Topology() == core.NotClosed {
		if eps, err := c.r.Epsilon(); err == nil && eps.Sign() < 0 {
			return StrictInequalityType
		}
	}
	return NonStrictInequalityType
}

// IsEquality, IsInequality, IsStrict report the constraint's type.
func (c Constraint) IsEquality() bool   { return c.Type() == EqualityType }
func (c Constraint) IsInequality() bool { return c.Type() != EqualityType }
func (c Constraint) IsStrict() bool     { return c.Type() == StrictInequalityType }

// Row exposes the underlying row.
func (c Constraint) Row() row.Row { return c.r }

// Dim returns the constraint's space dimension.
func (c Constraint) Dim() int { return c.r.Dim() }

// Inhomogeneous returns the constant term b.
func (c Constraint) Inhomogeneous() scalar.Coefficient { return c.r.Slot0() }

// Coefficient returns the coefficient of variable i (1-origin).
func (c Constraint) Coefficient(i int) (scalar.Coefficient, error) { return c.r.At(i) }

// Eq builds Σaᵢxᵢ+b = 0 of the given topology from a LinearExpression
// compared to a constant k (i.e. expr == k).
func Eq(expr row.LinearExpression, k int64, dim int, topology core.Topology) (Constraint, error) {
	return build(expr, k, dim, topology, EqualityType)
}

// Leq builds expr <= k.
func Leq(expr row.LinearExpression, k int64, dim int, topology core.Topology) (Constraint, error) {
	return build(expr.Scale(-1).PlusConst(k), 0, dim, topology, NonStrictInequalityType)
}

// Geq builds expr >= k.
func Geq(expr row.LinearExpression, k int64, dim int, topology core.Topology) (Constraint, error) {
	return build(expr.PlusConst(-k), 0, dim, topology, NonStrictInequalityType)
}

// Lt builds expr < k (requires topology NotClosed).
func Lt(expr row.LinearExpression, k int64, dim int, topology core.Topology) (Constraint, error) {
	return build(expr.Scale(-1).PlusConst(k), 0, dim, topology, StrictInequalityType)
}

// Gt builds expr > k (requires topology NotClosed).
func Gt(expr row.LinearExpression, k int64, dim int, topology core.Topology) (Constraint, error) {
	return build(expr.PlusConst(-k), 0, dim, topology, StrictInequalityType)
}

func build(expr row.LinearExpression, extra int64, dim int, topology core.Topology, typ Type) (Constraint, error) {
	expr = expr.PlusConst(extra)
	kind := row.RayPointOrInequality
	if typ == EqualityType {
		kind = row.LineOrEquality
	}
	r, err := expr.ToRow(dim, topology, kind)
	if err != nil {
		return Constraint{}, err
	}
	return FromRow(r, typ)
}

// Positivity returns the zero-dimensional positivity constraint "1 >= 0".
func Positivity(topology core.Topology) Constraint {
	r := row.New(0, topology, row.RayPointOrInequality)
	r.SetSlot0(scalar.NewCoefficient(1))
	c, _ := FromRow(r, NonStrictInequalityType)
	return c
}

// False returns the zero-dimensional false constraint "-1 >= 0", encoding
// the empty set.
func False(topology core.Topology) Constraint {
	r := row.New(0, topology, row.RayPointOrInequality)
	r.SetSlot0(scalar.NewCoefficient(-1))
	c, _ := FromRow(r, NonStrictInequalityType)
	return c
}

// EpsilonGeqZero and EpsilonLeqOne are the zero-dimensional singletons
// bounding the implicit epsilon dimension of a NotClosed system.
func EpsilonGeqZero() Constraint {
	r := row.New(0, core.NotClosed, row.RayPointOrInequality)
	_ = r.SetEpsilon(scalar.NewCoefficient(1))
	return Constraint{r: r}
}

func EpsilonLeqOne() Constraint {
	r := row.New(0, core.NotClosed, row.RayPointOrInequality)
	r.SetSlot0(scalar.NewCoefficient(1))
	_ = r.SetEpsilon(scalar.NewCoefficient(-1))
	return Constraint{r: r}
}

// System is a Constraint_System: a linsys.System whose rows are all
// interpreted as constraints.
type System struct {
	ls *linsys.System
}

// NewSystem builds an empty Constraint_System of the given dimension/topology.
func NewSystem(dim int, topology core.Topology) *System {
	return &System{ls: linsys.New(dim, topology)}
}

// Dim, Topology, Len, IsSorted delegate to the underlying linsys.System.
func (s *System) Dim() int               { return s.ls.Dim() }
func (s *System) Topology() core.Topology { return s.ls.Topology() }
func (s *System) Len() int               { return s.ls.Len() }
func (s *System) IsSorted() bool         { return s.ls.IsSorted() }
func (s *System) FirstPending() int      { return s.ls.FirstPending() }

// Insert appends c as an up-to-date row.
func (s *System) Insert(c Constraint) error {
	if c.Dim() != s.Dim() {
		return ErrDimensionMismatch
	}
	return s.ls.AddRow(c.r)
}

// InsertPending appends c to the pending partition.
func (s *System) InsertPending(c Constraint) error {
	if c.Dim() != s.Dim() {
		return ErrDimensionMismatch
	}
	return s.ls.AddPendingRow(c.r)
}

// UnsetPendingRows promotes pending rows to up-to-date.
func (s *System) UnsetPendingRows(resort bool) { s.ls.UnsetPendingRows(resort) }

// SortRows sorts the up-to-date partition.
func (s *System) SortRows() { s.ls.SortRows() }

// At returns the constraint at position i.
func (s *System) At(i int) (Constraint, error) {
	r, err := s.ls.Row(i)
	if err != nil {
		return Constraint{}, err
	}
	return rowToConstraint(r), nil
}

// All returns every constraint in the system, up-to-date followed by pending.
func (s *System) All() []Constraint {
	rows := s.ls.Rows()
	out := make([]Constraint, len(rows))
	for i, r := range rows {
		out[i] = rowToConstraint(r)
	}
	return out
}

func rowToConstraint(r row.Row) Constraint {
	return Constraint{r: r}
}

// LinearSystem exposes the underlying linsys.System for packages (e.g.
// polyhedron) that need raw row access beyond the typed view.
func (s *System) LinearSystem() *linsys.System { return s.ls }
