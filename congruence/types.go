// SPDX-License-Identifier: MIT
package congruence

import (
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/linsys"
	"github.com/latticeforge/numdom/row"
	"github.com/latticeforge/numdom/scalar"
)

// Congruence is Σaᵢxᵢ+b ≡ 0 (mod m). m == 0 denotes a plain equality.
type Congruence struct {
	r       row.Row
	modulus scalar.Coefficient
}

// New builds Σ expr + (-k) ≡ 0 (mod modulus) of the given space dimension.
func New(expr row.LinearExpression, k int64, modulus int64, dim int) (Congruence, error) {
	if modulus < 0 {
		return Congruence{}, ErrNegativeModulus
	}
	kind := row.RayPointOrInequality
	if modulus == 0 {
		kind = row.LineOrEquality
	}
	r, err := expr.PlusConst(-k).ToRow(dim, core.Closed, kind)
	if err != nil {
		return Congruence{}, err
	}
	return Congruence{r: r, modulus: scalar.NewCoefficient(modulus)}, nil
}

// FromRow builds a Congruence directly from an already-assembled row and
// modulus, for callers (grid's congruence/generator duality) that
// compute arbitrary-precision coefficients directly rather than through
// the LinearExpression builder's int64 literals.
func FromRow(r row.Row, modulus scalar.Coefficient) (Congruence, error) {
	if modulus.Sign() < 0 {
		return Congruence{}, ErrNegativeModulus
	}
	kind := row.RayPointOrInequality
	if modulus.IsZero() {
		kind = row.LineOrEquality
	}
	return Congruence{r: r.WithKind(kind), modulus: modulus}, nil
}

// IsEquality reports whether the modulus is zero.
func (c Congruence) IsEquality() bool { return c.modulus.IsZero() }

// Modulus returns m.
func (c Congruence) Modulus() scalar.Coefficient { return c.modulus }

// Row exposes the underlying row (slot 0 is the inhomogeneous term b).
func (c Congruence) Row() row.Row { return c.r }

// Dim returns the congruence's space dimension.
func (c Congruence) Dim() int { return c.r.Dim() }

// Coefficient returns the coefficient of variable i (1-origin).
func (c Congruence) Coefficient(i int) (scalar.Coefficient, error) { return c.r.At(i) }

// Inhomogeneous returns the constant term b.
func (c Congruence) Inhomogeneous() scalar.Coefficient { return c.r.Slot0() }

// Integrality returns the zero-dimensional integrality congruence
// "0 ≡ 0 (mod 1)" singleton.
func Integrality() Congruence {
	r := row.New(0, core.Closed, row.RayPointOrInequality)
	return Congruence{r: r, modulus: scalar.NewCoefficient(1)}
}

// False returns the zero-dimensional false congruence "1 ≡ 0 (mod 0)",
// i.e. the equality "1 = 0", encoding the empty set.
func False() Congruence {
	r := row.New(0, core.Closed, row.LineOrEquality)
	r.SetSlot0(scalar.NewCoefficient(1))
	return Congruence{r: r, modulus: scalar.NewCoefficient(0)}
}

// System is a Congruence_System.
type System struct {
	ls      *linsys.System
	modulus []scalar.Coefficient
}

// NewSystem builds an empty Congruence_System of the given dimension.
func NewSystem(dim int) *System {
	return &System{ls: linsys.New(dim, core.Closed)}
}

func (s *System) Dim() int { return s.ls.Dim() }
func (s *System) Len() int { return s.ls.Len() }

// Insert appends c as an up-to-date row.
func (s *System) Insert(c Congruence) error {
	if c.Dim() != s.Dim() {
		return ErrDimensionMismatch
	}
	pos := s.ls.FirstPending()
	if err := s.ls.AddRow(c.r); err != nil {
		return err
	}
	s.modulus = append(s.modulus, scalar.NewCoefficient(0))
	copy(s.modulus[pos+1:], s.modulus[pos:len(s.modulus)-1])
	s.modulus[pos] = c.modulus
	return nil
}

// All returns every congruence in the system.
func (s *System) All() []Congruence {
	rows := s.ls.Rows()
	out := make([]Congruence, len(rows))
	for i, r := range rows {
		out[i] = Congruence{r: r, modulus: s.modulus[i]}
	}
	return out
}

// NumEqualities returns the count of rows with modulus 0.
func (s *System) NumEqualities() int {
	n := 0
	for _, m := range s.modulus {
		if m.IsZero() {
			n++
		}
	}
	return n
}

// NumProperCongruences returns the count of rows with non-zero modulus.
func (s *System) NumProperCongruences() int { return s.Len() - s.NumEqualities() }

// LinearSystem exposes the underlying linsys.System.
func (s *System) LinearSystem() *linsys.System { return s.ls }
