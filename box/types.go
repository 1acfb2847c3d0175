// SPDX-License-Identifier: MIT
package box

import (
	"github.com/latticeforge/numdom/constraint"
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/generator"
	"github.com/latticeforge/numdom/interval"
	"github.com/latticeforge/numdom/scalar"
)

// State is the Box emptiness state machine: Empty and KnownNonEmpty are
// resolved; UnknownEmpty means an operation may have introduced
// emptiness and CheckEmpty must scan the intervals to resolve it.
type State int

const (
	KnownNonEmpty State = iota
	Empty
	UnknownEmpty
)

// Box is a finite vector of intervals, one per space dimension.
type Box struct {
	dims  []interval.Interval
	state State
}

// New builds a Box of dimension n, either universe (every interval
// unbounded) or empty.
func New(n int, empty bool) *Box {
	b := &Box{dims: make([]interval.Interval, n)}
	if empty {
		for i := range b.dims {
			b.dims[i] = interval.Empty()
		}
		b.state = Empty
	} else {
		for i := range b.dims {
			b.dims[i] = interval.Universe()
		}
		b.state = KnownNonEmpty
	}
	return b
}

// Dim returns the box's space dimension.
func (b *Box) Dim() int { return len(b.dims) }

// Interval returns the interval at dimension i (1-origin, matching the
// rest of the module's row/variable indexing).
func (b *Box) Interval(i int) (interval.Interval, error) {
	if i < 1 || i > len(b.dims) {
		return interval.Interval{}, core.NewDimensionError("Box.Interval", i, len(b.dims))
	}
	return b.dims[i-1], nil
}

// SetInterval overwrites the interval at dimension i and marks the box
// UnknownEmpty (the caller may have just made it empty).
func (b *Box) SetInterval(i int, iv interval.Interval) error {
	if i < 1 || i > len(b.dims) {
		return core.NewDimensionError("Box.SetInterval", i, len(b.dims))
	}
	b.dims[i-1] = iv
	b.state = UnknownEmpty
	return nil
}

// CheckEmpty resolves an UnknownEmpty state by scanning every interval,
// latching Empty or KnownNonEmpty.
func (b *Box) CheckEmpty() bool {
	if b.state != UnknownEmpty {
		return b.state == Empty
	}
	for _, iv := range b.dims {
		if iv.IsEmpty() {
			b.state = Empty
			return true
		}
	}
	b.state = KnownNonEmpty
	return false
}

// IsEmpty reports emptiness, resolving UnknownEmpty first.
func (b *Box) IsEmpty() bool { return b.CheckEmpty() }

// Clone returns a deep copy of b.
func (b *Box) Clone() *Box {
	out := &Box{dims: make([]interval.Interval, len(b.dims)), state: b.state}
	copy(out.dims, b.dims)
	return out
}

// FromConstraintSystem builds a Box by refining a universe box with the
// interval constraints of cs; proper relational constraints (more than
// one non-zero coefficient) are ignored, matching refine_with_* semantics.
func FromConstraintSystem(cs *constraint.System) (*Box, error) {
	b := New(cs.Dim(), false)
	for _, c := range cs.All() {
		if err := b.RefineWithConstraint(c); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// RefineWithConstraint narrows the box with c if c is an interval
// constraint (at most one variable with non-zero coefficient); a proper
// relational constraint is silently ignored.
func (b *Box) RefineWithConstraint(c constraint.Constraint) error {
	idx, coeff, ok := soleVariable(c.Dim(), func(i int) (scalar.Coefficient, error) { return c.Coefficient(i) })
	if !ok {
		return nil
	}
	return b.refineInterval(idx, coeff, c.Inhomogeneous(), c.IsEquality(), c.IsStrict())
}

// AddConstraintNoCheck behaves like RefineWithConstraint but raises
// ErrNotIntervalConstraint instead of silently ignoring a proper
// relational constraint.
func (b *Box) AddConstraintNoCheck(c constraint.Constraint) error {
	idx, coeff, ok := soleVariable(c.Dim(), func(i int) (scalar.Coefficient, error) { return c.Coefficient(i) })
	if !ok {
		return ErrNotIntervalConstraint
	}
	return b.refineInterval(idx, coeff, c.Inhomogeneous(), c.IsEquality(), c.IsStrict())
}

func soleVariable(dim int, at func(int) (scalar.Coefficient, error)) (idx int, coeff scalar.Coefficient, ok bool) {
	found := -1
	var c scalar.Coefficient
	for i := 1; i <= dim; i++ {
		v, err := at(i)
		if err != nil {
			return 0, scalar.Coefficient{}, false
		}
		if !v.IsZero() {
			if found != -1 {
				return 0, scalar.Coefficient{}, false
			}
			found = i
			c = v
		}
	}
	if found == -1 {
		return 0, scalar.Coefficient{}, false
	}
	return found, c, true
}

// refineInterval narrows dimension idx given aᵢxᵢ + b {=0, >=0, >0}.
func (b *Box) refineInterval(idx int, a, bnst scalar.Coefficient, isEq, isStrict bool) error {
	// aᵢxᵢ + b {rel} 0  =>  xᵢ {rel'} -b/aᵢ  (flip relation if aᵢ < 0)
	num := scalar.NewRationalFromCoefficient(bnst.Neg())
	den := scalar.NewRationalFromCoefficient(a)
	bound, err := num.Quo(den)
	if err != nil {
		return err
	}
	iv, err := b.Interval(idx)
	if err != nil {
		return err
	}
	negative := a.Sign() < 0
	switch {
	case isEq:
		iv = iv.IntersectAssign(interval.FromRational(bound))
	case isStrict && negative:
		iv = iv.UpperNarrow(bound, true)
	case isStrict && !negative:
		iv = iv.LowerNarrow(bound, true)
	case !isStrict && negative:
		iv = iv.UpperNarrow(bound, false)
	default:
		iv = iv.LowerNarrow(bound, false)
	}
	return b.SetInterval(idx, iv)
}

// FromGeneratorSystem builds the convex hull of gs projected onto each
// axis: points contribute to both bounds, rays open the sign-matching
// bound, lines reset the dimension to universe. Closure points are
// joined like points, with closed bounds: a bound reached only by a
// closure point is not marked open. Requires gs to contain at least one
// point; returns ErrNoPointInSystem (via generator.ErrNoPointInSystem)
// otherwise.
func FromGeneratorSystem(gs *generator.System) (*Box, error) {
	if !gs.HasPoint() {
		return nil, generator.ErrNoPointInSystem
	}
	n := gs.Dim()
	b := New(n, true)
	b.state = KnownNonEmpty
	for i := range b.dims {
		b.dims[i] = interval.Empty()
	}
	// Points and closure points are folded in before rays and lines, so a
	// ray or line listed ahead of a point is not undone by that point.
	all := gs.All()
	ordered := make([]generator.Generator, 0, len(all))
	for _, g := range all {
		if g.IsPointOrClosurePoint() {
			ordered = append(ordered, g)
		}
	}
	for _, g := range all {
		if !g.IsPointOrClosurePoint() {
			ordered = append(ordered, g)
		}
	}
	first := true
	for _, g := range ordered {
		if g.IsLine() {
			for i := 1; i <= n; i++ {
				c, _ := g.Coordinate(i)
				if !c.IsZero() {
					b.dims[i-1] = interval.Universe()
				}
			}
			continue
		}
		for i := 1; i <= n; i++ {
			c, err := g.Coordinate(i)
			if err != nil {
				return nil, err
			}
			cur := b.dims[i-1]
			switch {
			case g.IsPoint():
				if first {
					cur = interval.FromRational(c)
				} else {
					cur = cur.JoinAssign(interval.FromRational(c))
				}
			case g.IsClosurePoint():
				cur = cur.JoinAssign(interval.FromRational(c))
			case g.IsRay():
				switch c.Sign() {
				case 1:
					cur = cur.UnboundAbove()
				case -1:
					cur = cur.UnboundBelow()
				}
			}
			b.dims[i-1] = cur
		}
		first = false
	}
	return b, nil
}
