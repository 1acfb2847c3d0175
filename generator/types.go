// SPDX-License-Identifier: MIT
package generator

import (
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/linsys"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
)

// Type distinguishes the four generator kinds.
type Type int

const (
	LineType Type = iota
	RayType
	PointType
	ClosurePointType
)

// Generator is a row.Row interpreted per Type.
type Generator struct {
	r   row.Row
	typ Type
}

// Line builds a LINE generator from expr's homogeneous part (its
// constant term is ignored: a line is a direction).
func Line(expr row.LinearExpression, dim int, topology core.Topology) (Generator, error) {
	r, err := expr.WithoutConstant().ToRow(dim, topology, row.LineOrEquality)
	if err != nil {
		return Generator{}, err
	}
	return Generator{r: r, typ: LineType}, nil
}

// Ray builds a RAY generator from expr's homogeneous part.
func Ray(expr row.LinearExpression, dim int, topology core.Topology) (Generator, error) {
	r, err := expr.WithoutConstant().ToRow(dim, topology, row.RayPointOrInequality)
	if err != nil {
		return Generator{}, err
	}
	return Generator{r: r, typ: RayType}, nil
}

// Point builds a POINT generator at coordinates expr/d (default d=1).
func Point(expr row.LinearExpression, d int64, dim int, topology core.Topology) (Generator, error) {
	return point(expr, d, dim, topology, PointType)
}

// ClosurePoint builds a CLOSURE_POINT generator at coordinates expr/d.
// Requires topology NotClosed.
func ClosurePoint(expr row.LinearExpression, d int64, dim int, topology core.Topology) (Generator, error) {
	if topology == core.Closed {
		return Generator{}, ErrClosurePointOnClosedTopology
	}
	return point(expr, d, dim, topology, ClosurePointType)
}

func point(expr row.LinearExpression, d int64, dim int, topology core.Topology, typ Type) (Generator, error) {
	if d <= 0 {
		return Generator{}, ErrNonPositiveDivisor
	}
	r, err := expr.ToRow(dim, topology, row.RayPointOrInequality)
	if err != nil {
		return Generator{}, err
	}
	r.SetSlot0(scalar.NewCoefficient(d))
	// slot0 was also carrying expr's constant term via ToRow; points use
	// slot0 strictly as the divisor, so any constant in expr must have
	// been folded into the coordinates beforehand by the caller via
	// Coeff/PlusConst on individual variables, not the expression's
	// overall constant term.
	if topology == core.NotClosed {
		switch typ {
		case PointType:
			_ = r.SetEpsilon(scalar.NewCoefficient(d))
		case ClosurePointType:
			_ = r.SetEpsilon(scalar.NewCoefficient(0))
		}
	}
	return Generator{r: r, typ: typ}, nil
}

// Type returns the generator's kind.
func (g Generator) Type() Type { return g.typ }

// IsLine, IsRay, IsPoint, IsClosurePoint report the generator's type.
func (g Generator) IsLine() bool         { return g.typ == LineType }
func (g Generator) IsRay() bool          { return g.typ == RayType }
func (g Generator) IsPoint() bool        { return g.typ == PointType }
func (g Generator) IsClosurePoint() bool { return g.typ == ClosurePointType }

// IsLineOrRay, IsPointOrClosurePoint group the two topological classes.
func (g Generator) IsLineOrRay() bool         { return g.typ == LineType || g.typ == RayType }
func (g Generator) IsPointOrClosurePoint() bool {
	return g.typ == PointType || g.typ == ClosurePointType
}

// FromRow wraps r as a Generator of the given type, without validating
// the type-specific invariants the coordinate-based builders above
// check (divisor positivity for points, and so on). It exists for
// conversion algorithms that compute a generator's row via linear
// combination of existing rows rather than from coordinates.
func FromRow(r row.Row, typ Type) Generator {
	kind := row.RayPointOrInequality
	if typ == LineType {
		kind = row.LineOrEquality
	}
	return Generator{r: r.WithKind(kind), typ: typ}
}

// Row exposes the underlying row.
func (g Generator) Row() row.Row { return g.r }

// Dim returns the generator's space dimension.
func (g Generator) Dim() int { return g.r.Dim() }

// Divisor returns slot 0, meaningful only for POINT/CLOSURE_POINT.
func (g Generator) Divisor() scalar.Coefficient { return g.r.Slot0() }

// Coordinate returns the geometric coordinate coeff(i)/divisor as a
// Rational, for POINT/CLOSURE_POINT. For LINE/RAY it returns the raw
// direction coefficient coeff(i).
func (g Generator) Coordinate(i int) (scalar.Rational, error) {
	c, err := g.r.At(i)
	if err != nil {
		return scalar.Rational{}, err
	}
	if g.IsLineOrRay() {
		return scalar.NewRationalFromCoefficient(c), nil
	}
	num, _ := scalar.NewRational(0, 1)
	num = scalar.NewRationalFromCoefficient(c)
	den := scalar.NewRationalFromCoefficient(g.Divisor())
	return num.Quo(den)
}

// ZeroDimPoint returns the zero-dimensional point generator singleton.
func ZeroDimPoint(topology core.Topology) Generator {
	r := row.New(0, topology, row.RayPointOrInequality)
	r.SetSlot0(scalar.NewCoefficient(1))
	if topology == core.NotClosed {
		_ = r.SetEpsilon(scalar.NewCoefficient(1))
	}
	return Generator{r: r, typ: PointType}
}

// System is a Generator_System: a linsys.System of generator rows, each
// tagged by the typ byte carried alongside.
type System struct {
	ls    *linsys.System
	types []Type
}

// NewSystem builds an empty Generator_System of the given dimension/topology.
func NewSystem(dim int, topology core.Topology) *System {
	return &System{ls: linsys.New(dim, topology)}
}

func (s *System) Dim() int                { return s.ls.Dim() }
func (s *System) Topology() core.Topology { return s.ls.Topology() }
func (s *System) Len() int                { return s.ls.Len() }

// Insert appends g as an up-to-date row.
func (s *System) Insert(g Generator) error {
	if g.Dim() != s.Dim() {
		return ErrDimensionMismatch
	}
	pos := s.ls.FirstPending()
	if err := s.ls.AddRow(g.r); err != nil {
		return err
	}
	s.types = append(s.types, Type(0))
	copy(s.types[pos+1:], s.types[pos:len(s.types)-1])
	s.types[pos] = g.typ
	return nil
}

// All returns every generator in the system.
func (s *System) All() []Generator {
	rows := s.ls.Rows()
	out := make([]Generator, len(rows))
	for i, r := range rows {
		out[i] = Generator{r: r, typ: s.types[i]}
	}
	return out
}

// HasPoint reports whether the system contains at least one POINT or
// CLOSURE_POINT, a precondition for converting a generator system into
// a bounded representation.
func (s *System) HasPoint() bool {
	for _, g := range s.All() {
		if g.IsPointOrClosurePoint() {
			return true
		}
	}
	return false
}

// LinearSystem exposes the underlying linsys.System.
func (s *System) LinearSystem() *linsys.System { return s.ls }
