package bdshape

import (
	"github.com/latticeforge/numdom/box"
	"github.com/latticeforge/numdom/constraint"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/interval"
	"github.com/latticeforge/numdom/matrix"
	"github.com/latticeforge/numdom/scalar"
)

// Shape is a BD-shape: a closed difference-bound matrix of dimension
// dim+1, index 0 being the fixed zero variable.
type Shape struct {
	dim    int
	dbm    *matrix.BoundMatrix
	closed bool
	empty  bool
}

// New builds a Shape of dim variables, either universe (no constraints)
// or empty.
func New(dim int, empty bool) *Shape {
	s := &Shape{dim: dim, dbm: matrix.NewBoundMatrix(dim + 1), closed: true}
	if empty {
		s.empty = true
	}
	return s
}

// Dim returns the shape's number of variables.
func (s *Shape) Dim() int { return s.dim }

// setDifference tightens the bound on x_p - x_q <= c in place, q and p
// being 0-origin DBM indices (0 is the zero variable).
func (s *Shape) setDifference(q, p int, c scalar.Rational, open bool) error {
	cur, err := s.dbm.At(q, p)
	if err != nil {
		return err
	}
	nb := scalar.NewBound(c, open)
	if nb.Cmp(cur) < 0 || (nb.Cmp(cur) == 0 && open && !cur.Open()) {
		if err := s.dbm.Set(q, p, nb); err != nil {
			return err
		}
		s.closed = false
	}
	return nil
}

// AddDifference tightens the shape with xVar1 - xVar2 <= c (var index 0
// means the fixed zero variable, 1..dim the shape's own variables).
func (s *Shape) AddDifference(var1, var2 int, c scalar.Rational, strict bool) error {
	if var1 < 0 || var1 > s.dim || var2 < 0 || var2 > s.dim {
		return core.NewDimensionError("Shape.AddDifference", var1, s.dim)
	}
	return s.setDifference(var2, var1, c, strict)
}

// AddUpperBound tightens xVar <= c.
func (s *Shape) AddUpperBound(v int, c scalar.Rational, strict bool) error {
	return s.AddDifference(v, 0, c, strict)
}

// AddLowerBound tightens xVar >= c, i.e. x0 - xVar <= -c.
func (s *Shape) AddLowerBound(v int, c scalar.Rational, strict bool) error {
	return s.AddDifference(0, v, c.Neg(), strict)
}

// AddConstraint folds an interval or difference constraint c into the
// shape: a one-variable constraint may have any non-zero coefficient; a
// two-variable one must have coefficients +1 and -1. Anything else
// yields ErrNotDifferenceConstraint.
func (s *Shape) AddConstraint(c constraint.Constraint) error {
	if c.Dim() != s.dim {
		return ErrDimensionMismatch
	}
	if c.IsEquality() {
		if err := s.addRelational(c, false); err != nil {
			return err
		}
		return s.addRelational(c, true)
	}
	return s.addRelational(c, false)
}

// addRelational folds one direction of c ("as stated" or negated, for an
// equality's second half) into the shape.
func (s *Shape) addRelational(c constraint.Constraint, negate bool) error {
	vars := make([]int, 0, 2)
	coeffs := make([]scalar.Coefficient, 0, 2)
	for i := 1; i <= c.Dim(); i++ {
		coeff, err := c.Coefficient(i)
		if err != nil {
			return err
		}
		if coeff.IsZero() {
			continue
		}
		if len(vars) == 2 {
			return ErrNotDifferenceConstraint
		}
		vars = append(vars, i)
		coeffs = append(coeffs, coeff)
	}
	b := c.Inhomogeneous()
	if negate {
		for i := range coeffs {
			coeffs[i] = coeffs[i].Neg()
		}
		b = b.Neg()
	}
	// Row encodes Σaᵢxᵢ+b >= 0 (or > 0 if strict); a difference-bound
	// constraint has at most two unit-magnitude coefficients.
	switch len(vars) {
	case 0:
		return nil
	case 1:
		a := coeffs[0]
		bound, err := scalar.NewRationalFromCoefficient(b.Neg()).Quo(scalar.NewRationalFromCoefficient(a))
		if err != nil {
			return err
		}
		if a.Sign() > 0 {
			return s.AddLowerBound(vars[0], bound, c.IsStrict())
		}
		return s.AddUpperBound(vars[0], bound, c.IsStrict())
	case 2:
		a1, a2 := coeffs[0], coeffs[1]
		if a1.Abs().Cmp(scalar.NewCoefficient(1)) != 0 || a2.Abs().Cmp(scalar.NewCoefficient(1)) != 0 || a1.Sign() == a2.Sign() {
			return ErrNotDifferenceConstraint
		}
		// a1*x1 + a2*x2 + b >= 0. If a1 > 0: x1 - x2 >= -b, i.e. x2 - x1 <= b.
		if a1.Sign() > 0 {
			return s.AddDifference(vars[1], vars[0], scalar.NewRationalFromCoefficient(b), c.IsStrict())
		}
		return s.AddDifference(vars[0], vars[1], scalar.NewRationalFromCoefficient(b), c.IsStrict())
	default:
		return ErrNotDifferenceConstraint
	}
}

// Close runs the DBM's all-pairs shortest-path closure, latching empty
// if a negative cycle is found.
func (s *Shape) Close() error {
	if s.closed || s.empty {
		return nil
	}
	consistent, err := s.dbm.Close()
	if err != nil {
		return err
	}
	s.closed = true
	if !consistent {
		s.empty = true
	}
	return nil
}

// IsEmpty resolves and reports emptiness.
func (s *Shape) IsEmpty() bool {
	_ = s.Close()
	return s.empty
}

// Clone returns a deep copy of s.
func (s *Shape) Clone() *Shape {
	return &Shape{dim: s.dim, dbm: s.dbm.Clone(), closed: s.closed, empty: s.empty}
}

// IntersectionAssign narrows s to s ⊓ other (conjunction of constraints).
func (s *Shape) IntersectionAssign(other *Shape) error {
	if s.dim != other.dim {
		return ErrDimensionMismatch
	}
	if err := s.dbm.Meet(other.dbm); err != nil {
		return err
	}
	s.closed = false
	return s.Close()
}

// UpperBoundAssign widens s to the smallest shape containing both s and
// other: closes both sides first, then takes the pairwise maximum bound.
func (s *Shape) UpperBoundAssign(other *Shape) error {
	if s.dim != other.dim {
		return ErrDimensionMismatch
	}
	if err := s.Close(); err != nil {
		return err
	}
	if err := other.Close(); err != nil {
		return err
	}
	if other.empty {
		return nil
	}
	if s.empty {
		s.dbm = other.dbm.Clone()
		s.empty = false
		s.closed = true
		return nil
	}
	return s.dbm.Join(other.dbm)
}

// WideningAssign applies the standard BHMZ05 DBM widening: an entry is
// kept only if it did not grow relative to s (the stabilized shape);
// every entry that grew between s and other is relaxed to +inf.
func (s *Shape) WideningAssign(other *Shape) error {
	if s.dim != other.dim {
		return ErrDimensionMismatch
	}
	if err := s.Close(); err != nil {
		return err
	}
	if err := other.Close(); err != nil {
		return err
	}
	if s.empty {
		s.dbm = other.dbm.Clone()
		s.empty = other.empty
		s.closed = true
		return nil
	}
	if other.empty {
		return nil
	}
	n := s.dim + 1
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cur, err := s.dbm.At(i, j)
			if err != nil {
				return err
			}
			nxt, err := other.dbm.At(i, j)
			if err != nil {
				return err
			}
			if nxt.Cmp(cur) > 0 {
				if err := s.dbm.Set(i, j, scalar.PosInf()); err != nil {
					return err
				}
			}
		}
	}
	s.closed = false
	return nil
}

// ToBox projects each variable's DBM bounds into an independent interval.
func (s *Shape) ToBox() (*box.Box, error) {
	if err := s.Close(); err != nil {
		return nil, err
	}
	b := box.New(s.dim, s.empty)
	if s.empty {
		return b, nil
	}
	for v := 1; v <= s.dim; v++ {
		upper, err := s.dbm.At(0, v)
		if err != nil {
			return nil, err
		}
		lowerNeg, err := s.dbm.At(v, 0)
		if err != nil {
			return nil, err
		}
		iv := interval.Universe()
		if upper.IsFinite() {
			iv = iv.UpperSet(upper.Value(), upper.Open())
		}
		if lowerNeg.IsFinite() {
			iv = iv.LowerSet(lowerNeg.Value().Neg(), lowerNeg.Open())
		}
		if err := b.SetInterval(v, iv); err != nil {
			return nil, err
		}
	}
	return b, nil
}
