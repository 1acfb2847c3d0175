// Package powerset lifts any of the coerce.Domain-wrapped abstract
// domains into a finite disjunction (a powerset completion) and a pair
// product, the two ways of recovering precision a single domain cannot
// express on its own: a disjunction tracks several cases exactly apart
// at the cost of their count, a product tracks two orthogonal domains
// together at the cost of keeping them in sync.
package powerset

import "github.com/latticeforge/numdom/coerce"

// Set is a finite disjunction of same-dimension domains: the points it
// represents are the union of what each disjunct represents.
type Set struct {
	dim       int
	disjuncts []coerce.Domain
}

// NewSet creates an empty disjunction over dim variables.
func NewSet(dim int) *Set {
	return &Set{dim: dim}
}

// Dim returns the set's space dimension.
func (s *Set) Dim() int { return s.dim }

// Disjuncts returns the set's current disjuncts. The returned slice
// aliases the set's internal storage; callers must not mutate it.
func (s *Set) Disjuncts() []coerce.Domain { return s.disjuncts }

// AddDisjunct appends d to the set.
func (s *Set) AddDisjunct(d coerce.Domain) error {
	if d.Dim() != s.dim {
		return ErrDimensionMismatch
	}
	s.disjuncts = append(s.disjuncts, d)
	return nil
}

// Reduction selects how Product.Reduce synchronizes its two factors.
type Reduction int

const (
	// NoReduction leaves the two factors independent; their conjunction
	// is only as precise as whichever factor is consulted.
	NoReduction Reduction = iota
	// SmashReduction collapses the whole product to bottom the instant
	// either factor is empty, since an empty factor makes the
	// conjunction empty regardless of the other factor's shape.
	SmashReduction
	// ConstraintsReduction exchanges each factor's bounding box with
	// the other and narrows both to the intersection, tightening
	// whichever factor is a Box outright and feeding the other a
	// sound-but-unapplied bound otherwise (see Product.Reduce).
	ConstraintsReduction
)

// Side names which of a Product's two factors is authoritative for
// decisions the two disagree on.
type Side int

const (
	PrimaryFirst Side = iota
	PrimarySecond
)

// Product is a partially reduced product of two abstract domains: the
// pair (First, Second) stands for their conjunction. Primary names
// which factor drives a query when the factors have not been
// reconciled (NoReduction) and so may disagree.
type Product struct {
	First, Second coerce.Domain
	Strategy      Reduction
	Primary       Side
}

// NewProduct pairs two same-dimension domains into a product.
func NewProduct(first, second coerce.Domain, strategy Reduction, primary Side) (*Product, error) {
	if first.Dim() != second.Dim() {
		return nil, ErrDimensionMismatch
	}
	return &Product{First: first, Second: second, Strategy: strategy, Primary: primary}, nil
}

// Dim returns the product's space dimension.
func (p *Product) Dim() int { return p.First.Dim() }
