package row

import (
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/scalar"
)

// LinearExpression is the builder-DSL's symbolic representation of
// Σaᵢxᵢ+b, used before a concrete Row is materialized against a known
// space dimension. It backs named builder constructors (Eq, Leq, Geq,
// Lt, Gt, Line, Ray, Point, …) standing in for the operator overloads
// (==, <=, >=, <, >) that a host language with them would use here; Go
// has none, so each relation gets its own named function instead.
type LinearExpression struct {
	coeffs map[int]scalar.Coefficient // 1-origin variable index -> coefficient
	dim    int                        // highest variable index referenced, for sizing
	cst    scalar.Coefficient
}

// Var returns the linear expression equal to variable i (1-origin).
func Var(i int) LinearExpression {
	return LinearExpression{coeffs: map[int]scalar.Coefficient{i: scalar.NewCoefficient(1)}, dim: i, cst: scalar.NewCoefficient(0)}
}

// Const returns the linear expression equal to the constant c.
func Const(c int64) LinearExpression {
	return LinearExpression{coeffs: map[int]scalar.Coefficient{}, cst: scalar.NewCoefficient(c)}
}

// Coeff scales variable i by c and adds it to the expression (fluent).
func (e LinearExpression) Coeff(i int, c int64) LinearExpression {
	out := e.clone()
	if out.coeffs == nil {
		out.coeffs = map[int]scalar.Coefficient{}
	}
	existing := out.coeffs[i]
	out.coeffs[i] = existing.Add(scalar.NewCoefficient(c))
	if i > out.dim {
		out.dim = i
	}
	return out
}

// Plus returns e + o.
func (e LinearExpression) Plus(o LinearExpression) LinearExpression {
	out := e.clone()
	for i, c := range o.coeffs {
		existing := out.coeffs[i]
		out.coeffs[i] = existing.Add(c)
		if i > out.dim {
			out.dim = i
		}
	}
	out.cst = out.cst.Add(o.cst)
	return out
}

// Minus returns e - o.
func (e LinearExpression) Minus(o LinearExpression) LinearExpression { return e.Plus(o.Scale(-1)) }

// Scale returns k*e.
func (e LinearExpression) Scale(k int64) LinearExpression {
	out := e.clone()
	kk := scalar.NewCoefficient(k)
	for i, c := range out.coeffs {
		out.coeffs[i] = c.Mul(kk)
	}
	out.cst = out.cst.Mul(kk)
	return out
}

// PlusConst returns e + c.
func (e LinearExpression) PlusConst(c int64) LinearExpression {
	out := e.clone()
	out.cst = out.cst.Add(scalar.NewCoefficient(c))
	return out
}

func scalarZero() scalar.Coefficient { return scalar.NewCoefficient(0) }

func (e LinearExpression) clone() LinearExpression {
	cp := make(map[int]scalar.Coefficient, len(e.coeffs))
	for k, v := range e.coeffs {
		cp[k] = v
	}
	return LinearExpression{coeffs: cp, dim: e.dim, cst: e.cst}
}

// WithoutConstant returns e with its inhomogeneous term zeroed, used by
// generator/gridgen builders where only the homogeneous (direction)
// part of an expression is meaningful.
func (e LinearExpression) WithoutConstant() LinearExpression {
	out := e.clone()
	out.cst = scalarZero()
	return out
}

// Dim returns the highest variable index referenced (the minimum space
// dimension needed to host this expression).
func (e LinearExpression) Dim() int { return e.dim }

// CoefficientOf returns the coefficient of variable i (zero if unreferenced).
func (e LinearExpression) CoefficientOf(i int) scalar.Coefficient {
	if c, ok := e.coeffs[i]; ok {
		return c
	}
	return scalar.NewCoefficient(0)
}

// Constant returns the inhomogeneous term.
func (e LinearExpression) Constant() scalar.Coefficient { return e.cst }

// ToRow materializes the expression as a Row of the given space dimension
// (which must be >= e.Dim()) and topology/kind, with slot 0 set to the
// expression's constant term.
func (e LinearExpression) ToRow(dim int, topology core.Topology, kind Kind) (Row, error) {
	if dim < e.dim {
		return Row{}, ErrDimensionMismatch
	}
	r := New(dim, topology, kind)
	r.SetSlot0(e.cst)
	for i, c := range e.coeffs {
		if err := r.Set(i, c); err != nil {
			return Row{}, err
		}
	}
	return r, nil
}
