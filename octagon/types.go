package octagon

import (
	"github.com/latticeforge/numdom/box"
	"github.com/latticeforge/numdom/constraint"
	"github.com/latticeforge/numdom/interval"
	"github.com/latticeforge/numdom/matrix"
	"github.com/latticeforge/numdom/scalar"
)

// Shape is an Octagonal-shape over dim variables, backed by a 2*dim
// potential-graph DBM (two nodes per variable: pos(i) for xᵢ, neg(i) for
// -xᵢ).
type Shape struct {
	dim    int
	dbm    *matrix.BoundMatrix
	closed bool
	empty  bool
}

// New builds a Shape of dim variables, either universe or empty.
func New(dim int, empty bool) *Shape {
	s := &Shape{dim: dim, dbm: matrix.NewBoundMatrix(2 * dim), closed: true}
	if empty {
		s.empty = true
	}
	return s
}

// Dim returns the shape's number of variables.
func (s *Shape) Dim() int { return s.dim }

// Clone returns a deep copy of s.
func (s *Shape) Clone() *Shape {
	return &Shape{dim: s.dim, dbm: s.dbm.Clone(), closed: s.closed, empty: s.empty}
}

func posIdx(i int) int { return 2 * (i - 1) }
func negIdx(i int) int { return 2*(i-1) + 1 }

func (s *Shape) tighten(q, p int, v scalar.Bound) error {
	cur, err := s.dbm.At(q, p)
	if err != nil {
		return err
	}
	if v.Cmp(cur) < 0 || (v.Cmp(cur) == 0 && v.Open() && !cur.Open()) {
		if err := s.dbm.Set(q, p, v); err != nil {
			return err
		}
		s.closed = false
	}
	return nil
}

// AddUpperBound tightens xᵢ ≤ c: pos(i) - neg(i) ≤ 2c.
func (s *Shape) AddUpperBound(i int, c scalar.Rational, strict bool) error {
	return s.tighten(negIdx(i), posIdx(i), scalar.NewBound(c.Add(c), strict))
}

// AddLowerBound tightens xᵢ ≥ c: neg(i) - pos(i) ≤ -2c.
func (s *Shape) AddLowerBound(i int, c scalar.Rational, strict bool) error {
	return s.tighten(posIdx(i), negIdx(i), scalar.NewBound(c.Add(c).Neg(), strict))
}

// AddDifference tightens xᵢ - xⱼ ≤ c.
func (s *Shape) AddDifference(i, j int, c scalar.Rational, strict bool) error {
	if err := s.tighten(posIdx(j), posIdx(i), scalar.NewBound(c, strict)); err != nil {
		return err
	}
	return s.tighten(negIdx(i), negIdx(j), scalar.NewBound(c, strict))
}

// AddSumUpper tightens xᵢ + xⱼ ≤ c.
func (s *Shape) AddSumUpper(i, j int, c scalar.Rational, strict bool) error {
	if err := s.tighten(negIdx(j), posIdx(i), scalar.NewBound(c, strict)); err != nil {
		return err
	}
	return s.tighten(negIdx(i), posIdx(j), scalar.NewBound(c, strict))
}

// AddSumLower tightens xᵢ + xⱼ ≥ -c (equivalently -xᵢ - xⱼ ≤ c).
func (s *Shape) AddSumLower(i, j int, c scalar.Rational, strict bool) error {
	if err := s.tighten(posIdx(j), negIdx(i), scalar.NewBound(c, strict)); err != nil {
		return err
	}
	return s.tighten(posIdx(i), negIdx(j), scalar.NewBound(c, strict))
}

// AddConstraint folds a unary or octagonal difference/sum constraint c
// into the shape; two-variable constraints must have ±1 coefficients.
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
			return ErrNotOctagonalConstraint
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
		unit := scalar.NewCoefficient(1)
		if a1.Abs().Cmp(unit) != 0 || a2.Abs().Cmp(unit) != 0 {
			return ErrNotOctagonalConstraint
		}
		bound := scalar.NewRationalFromCoefficient(b)
		switch {
		case a1.Sign() > 0 && a2.Sign() < 0:
			return s.AddDifference(vars[1], vars[0], bound, c.IsStrict())
		case a1.Sign() < 0 && a2.Sign() > 0:
			return s.AddDifference(vars[0], vars[1], bound, c.IsStrict())
		case a1.Sign() > 0 && a2.Sign() > 0:
			return s.AddSumLower(vars[0], vars[1], bound, c.IsStrict())
		default: // both negative
			return s.AddSumUpper(vars[0], vars[1], bound, c.IsStrict())
		}
	default:
		return ErrNotOctagonalConstraint
	}
}

// Close runs the DBM's all-pairs shortest-path closure, latching empty
// on a negative cycle.
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

// IntersectionAssign narrows s to s ⊓ other.
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

// UpperBoundAssign widens s to a shape containing both s and other: the
// entrywise maximum of the two closed DBMs. Close performs no octagonal
// strengthening step, so this is not always the smallest such shape; a
// relation implied only through unary bounds (such as x = y when both
// shapes fix x and y to one shared value) is lost.
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

// WideningAssign applies the BHMZ05-style widening shared with bdshape:
// an entry that grew between s and other is relaxed to +inf.
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
	n := 2 * s.dim
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

// ToBox projects each variable's tightest unary bounds into an
// independent interval.
func (s *Shape) ToBox() (*box.Box, error) {
	if err := s.Close(); err != nil {
		return nil, err
	}
	b := box.New(s.dim, s.empty)
	if s.empty {
		return b, nil
	}
	for v := 1; v <= s.dim; v++ {
		upperDouble, err := s.dbm.At(negIdx(v), posIdx(v))
		if err != nil {
			return nil, err
		}
		lowerDoubleNeg, err := s.dbm.At(posIdx(v), negIdx(v))
		if err != nil {
			return nil, err
		}
		iv := interval.Universe()
		if upperDouble.IsFinite() {
			half, err := upperDouble.Value().Quo(scalar.NewRationalFromCoefficient(scalar.NewCoefficient(2)))
			if err != nil {
				return nil, err
			}
			iv = iv.UpperSet(half, upperDouble.Open())
		}
		if lowerDoubleNeg.IsFinite() {
			half, err := lowerDoubleNeg.Value().Quo(scalar.NewRationalFromCoefficient(scalar.NewCoefficient(2)))
			if err != nil {
				return nil, err
			}
			iv = iv.LowerSet(half.Neg(), lowerDoubleNeg.Open())
		}
		if err := b.SetInterval(v, iv); err != nil {
			return nil, err
		}
	}
	return b, nil
}
