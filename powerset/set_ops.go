// SPDX-License-Identifier: MIT
package powerset

import (
	"errors"

	"github.com/latticeforge/numdom/coerce"
)

// IsEmpty reports whether every disjunct is empty. A set with no
// disjuncts at all represents bottom, the empty union.
func (s *Set) IsEmpty() (bool, error) {
	for _, d := range s.disjuncts {
		empty, err := d.IsEmpty()
		if err != nil {
			return false, err
		}
		if !empty {
			return false, nil
		}
	}
	return true, nil
}

// boxContains reports whether a's bounding box contains b's, dimension
// by dimension. No domain here exposes a cross-type Contains of its
// own, so this is the only containment test available across box,
// polyhedron, grid, bdshape and octagon alike; it is sound (a true
// containment always has a containing box) but not complete (a wider
// box does not imply the underlying shape actually contains the other).
func boxContains(a, b coerce.Domain) (bool, error) {
	ba, err := a.ToBox()
	if err != nil {
		return false, err
	}
	bb, err := b.ToBox()
	if err != nil {
		return false, err
	}
	for i := 1; i <= ba.Dim(); i++ {
		ia, err := ba.Interval(i)
		if err != nil {
			return false, err
		}
		ib, err := bb.Interval(i)
		if err != nil {
			return false, err
		}
		if !ia.Contains(ib) {
			return false, nil
		}
	}
	return true, nil
}

// OmegaReduce drops empty disjuncts and any disjunct whose bounding box
// is contained in another non-empty disjunct that is itself a Box; a Box
// equals its own bounding box, so the dropped disjunct adds no point.
// Containment in a disjunct of any other domain is not detected, and
// such a disjunct is kept.
func (s *Set) OmegaReduce() error {
	kept := make([]coerce.Domain, 0, len(s.disjuncts))
	for i, d := range s.disjuncts {
		empty, err := d.IsEmpty()
		if err != nil {
			return err
		}
		if empty {
			continue
		}
		subsumed := false
		for j, other := range s.disjuncts {
			if i == j {
				continue
			}
			if _, isBox := other.(coerce.BoxDomain); !isBox {
				continue
			}
			otherEmpty, err := other.IsEmpty()
			if err != nil {
				return err
			}
			if otherEmpty {
				continue
			}
			contained, err := boxContains(other, d)
			if err != nil {
				return err
			}
			if contained && (i > j || !sameBox(d, other)) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			kept = append(kept, d)
		}
	}
	s.disjuncts = kept
	return nil
}

// sameBox breaks ties between two disjuncts whose bounding boxes
// contain each other (equal boxes): OmegaReduce keeps the earlier one
// and drops the later duplicate rather than dropping both.
func sameBox(a, b coerce.Domain) bool {
	ca, err := boxContains(a, b)
	if err != nil {
		return false
	}
	cb, err := boxContains(b, a)
	if err != nil {
		return false
	}
	return ca && cb
}

// PairwiseReduce merges disjuncts whose bounding boxes overlap, taking
// their join (UpperBoundAssign) in place of the pair. Merging is
// applied left to right in one pass, mirroring how a deterministic
// pipeline of mutations is folded over a starting value in sequence:
// each surviving disjunct absorbs every later disjunct it overlaps
// before the next disjunct is considered, so the result does not
// depend on revisiting already-merged disjuncts.
func (s *Set) PairwiseReduce() error {
	var merged []coerce.Domain
	used := make([]bool, len(s.disjuncts))
	for i, d := range s.disjuncts {
		if used[i] {
			continue
		}
		empty, err := d.IsEmpty()
		if err != nil {
			return err
		}
		if empty {
			used[i] = true
			continue
		}
		acc, err := d.Clone()
		if err != nil {
			return err
		}
		for j := i + 1; j < len(s.disjuncts); j++ {
			if used[j] {
				continue
			}
			other := s.disjuncts[j]
			otherEmpty, err := other.IsEmpty()
			if err != nil {
				return err
			}
			if otherEmpty {
				used[j] = true
				continue
			}
			accBox, err := acc.ToBox()
			if err != nil {
				return err
			}
			otherBox, err := other.ToBox()
			if err != nil {
				return err
			}
			overlapping, err := boxesOverlap(accBox, otherBox)
			if err != nil {
				return err
			}
			if !overlapping {
				continue
			}
			if err := acc.UpperBoundAssign(other); err != nil {
				if errors.Is(err, coerce.ErrDomainMismatch) {
					continue
				}
				return err
			}
			used[j] = true
		}
		used[i] = true
		merged = append(merged, acc)
	}
	s.disjuncts = merged
	return nil
}
