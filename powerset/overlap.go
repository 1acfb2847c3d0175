package powerset

import "github.com/latticeforge/numdom/box"

// boxesOverlap reports whether a and b share a point in every
// dimension, i.e. neither box's interval is disjoint from the other's
// on any axis.
func boxesOverlap(a, b *box.Box) (bool, error) {
	for i := 1; i <= a.Dim(); i++ {
		ia, err := a.Interval(i)
		if err != nil {
			return false, err
		}
		ib, err := b.Interval(i)
		if err != nil {
			return false, err
		}
		if ia.IsDisjointFrom(ib) {
			return false, nil
		}
	}
	return true, nil
}
