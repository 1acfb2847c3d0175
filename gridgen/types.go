// SPDX-License-Identifier: MIT
package gridgen

import (
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/linsys"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
)

// Type distinguishes the three grid-generator kinds.
type Type int

const (
	LineType Type = iota
	ParameterType
	PointType
)

// Generator is a row.Row interpreted per Type, carrying its divisor
// alongside (PARAMETER and POINT; LINE ignores it).
type Generator struct {
	r       row.Row
	typ     Type
	divisor scalar.Coefficient
}

// Line builds a LINE grid generator from expr's homogeneous part.
func Line(expr row.LinearExpression, dim int) (Generator, error) {
	r, err := expr.WithoutConstant().ToRow(dim, core.Closed, row.LineOrEquality)
	if err != nil {
		return Generator{}, err
	}
	return Generator{r: r, typ: LineType, divisor: scalar.NewCoefficient(1)}, nil
}

// Parameter builds a PARAMETER grid generator from expr's homogeneous
// part, scaled by 1/d.
func Parameter(expr row.LinearExpression, d int64, dim int) (Generator, error) {
	if d <= 0 {
		return Generator{}, ErrNonPositiveDivisor
	}
	r, err := expr.WithoutConstant().ToRow(dim, core.Closed, row.RayPointOrInequality)
	if err != nil {
		return Generator{}, err
	}
	return Generator{r: r, typ: ParameterType, divisor: scalar.NewCoefficient(d)}, nil
}

// Point builds a POINT grid generator at coordinates expr/d.
func Point(expr row.LinearExpression, d int64, dim int) (Generator, error) {
	if d <= 0 {
		return Generator{}, ErrNonPositiveDivisor
	}
	r, err := expr.ToRow(dim, core.Closed, row.RayPointOrInequality)
	if err != nil {
		return Generator{}, err
	}
	return Generator{r: r, typ: PointType, divisor: scalar.NewCoefficient(d)}, nil
}

// FromRow builds a Generator directly from an already-assembled row,
// type and divisor, for callers (grid's congruence/generator duality)
// that compute arbitrary-precision coefficients directly rather than
// through the int64-literal constructors above.
func FromRow(r row.Row, typ Type, divisor scalar.Coefficient) Generator {
	kind := row.RayPointOrInequality
	if typ == LineType {
		kind = row.LineOrEquality
	}
	return Generator{r: r.WithKind(kind), typ: typ, divisor: divisor}
}

// Type returns the generator's kind.
func (g Generator) Type() Type { return g.typ }

func (g Generator) IsLine() bool      { return g.typ == LineType }
func (g Generator) IsParameter() bool { return g.typ == ParameterType }
func (g Generator) IsPoint() bool     { return g.typ == PointType }

// Row exposes the underlying row.
func (g Generator) Row() row.Row { return g.r }

// Dim returns the generator's space dimension.
func (g Generator) Dim() int { return g.r.Dim() }

// Divisor returns the shared positive divisor, meaningful for
// PARAMETER/POINT.
func (g Generator) Divisor() scalar.Coefficient { return g.divisor }

// WithDivisor returns a copy of g rescaled to a new shared divisor nd
// (nd must be a positive multiple of the current divisor); used by
// NormalizeDivisors.
func (g Generator) WithDivisor(nd scalar.Coefficient) (Generator, error) {
	if g.typ == LineType {
		return g, nil
	}
	factor, err := nd.ExactDiv(g.divisor)
	if err != nil {
		return Generator{}, err
	}
	out := g
	out.divisor = nd
	coeffs := g.r.AllCoefficients()
	for i := range coeffs {
		coeffs[i] = coeffs[i].Mul(factor)
	}
	out.r = row.FromCoefficients(coeffs, core.Closed, g.r.Kind())
	return out, nil
}

// ZeroDimPoint returns the zero-dimensional grid point singleton.
func ZeroDimPoint() Generator {
	r := row.New(0, core.Closed, row.RayPointOrInequality)
	r.SetSlot0(scalar.NewCoefficient(1))
	return Generator{r: r, typ: PointType, divisor: scalar.NewCoefficient(1)}
}

// System is a Grid_Generator system: a linsys.System of grid-generator
// rows sharing one positive divisor across every PARAMETER/POINT.
type System struct {
	ls      *linsys.System
	types   []Type
	divisor scalar.Coefficient
}

// NewSystem builds an empty Grid_Generator system of the given dimension.
func NewSystem(dim int) *System {
	return &System{ls: linsys.New(dim, core.Closed), divisor: scalar.NewCoefficient(1)}
}

func (s *System) Dim() int                 { return s.ls.Dim() }
func (s *System) Len() int                 { return s.ls.Len() }
func (s *System) Divisor() scalar.Coefficient { return s.divisor }

// Insert appends g as an up-to-date row, rescaling it to the system's
// shared divisor first via NormalizeDivisors semantics (lcm of the two).
func (s *System) Insert(g Generator) error {
	if g.Dim() != s.Dim() {
		return ErrDimensionMismatch
	}
	if !g.IsLine() {
		lcm := s.divisor.Lcm(g.divisor)
		if lcm.Cmp(s.divisor) != 0 {
			if err := s.rescaleAll(lcm); err != nil {
				return err
			}
		}
		rescaled, err := g.WithDivisor(lcm)
		if err != nil {
			return err
		}
		g = rescaled
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

func (s *System) rescaleAll(nd scalar.Coefficient) error {
	rows := s.ls.Rows()
	for i, r := range rows {
		if s.types[i] == LineType {
			continue
		}
		g := Generator{r: r, typ: s.types[i], divisor: s.divisor}
		rescaled, err := g.WithDivisor(nd)
		if err != nil {
			return err
		}
		rows[i] = rescaled.r
	}
	s.divisor = nd
	return nil
}

// All returns every grid generator in the system.
func (s *System) All() []Generator {
	rows := s.ls.Rows()
	out := make([]Generator, len(rows))
	for i, r := range rows {
		d := s.divisor
		if s.types[i] == LineType {
			d = scalar.NewCoefficient(1)
		}
		out[i] = Generator{r: r, typ: s.types[i], divisor: d}
	}
	return out
}

// HasPoint reports whether the system contains at least one POINT.
func (s *System) HasPoint() bool {
	for _, t := range s.types {
		if t == PointType {
			return true
		}
	}
	return false
}

// NormalizeDivisors rescales every PARAMETER/POINT row to the lcm of all
// current divisors. A freshly built System is already normalized by
// construction (every Insert keeps the shared divisor up to date), so
// this is a no-op kept for callers that mutate rows directly via
// LinearSystem().
func (s *System) NormalizeDivisors() error {
	return s.rescaleAll(s.divisor)
}

// LinearSystem exposes the underlying linsys.System.
func (s *System) LinearSystem() *linsys.System { return s.ls }
