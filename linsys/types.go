// SPDX-License-Identifier: MIT
package linsys

import (
	"sort"

	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/row"
)

// System is an ordered, shared-dimension, shared-topology sequence of
// rows.
type System struct {
	dim          int
	topology     core.Topology
	rows         []row.Row
	sorted       bool
	firstPending int
}

// New builds an empty System of the given space dimension and topology.
func New(dim int, topology core.Topology) *System {
	return &System{dim: dim, topology: topology, sorted: true, firstPending: 0}
}

// Dim returns the shared space dimension.
func (s *System) Dim() int { return s.dim }

// Topology returns the shared topology.
func (s *System) Topology() core.Topology { return s.topology }

// Len returns the number of rows, up-to-date and pending combined.
func (s *System) Len() int { return len(s.rows) }

// FirstPending returns the index partitioning up-to-date (< index) rows
// from pending (>= index) rows.
func (s *System) FirstPending() int { return s.firstPending }

// IsSorted reports the sorted flag.
func (s *System) IsSorted() bool { return s.sorted }

// Row returns a copy of the row at position i.
func (s *System) Row(i int) (row.Row, error) {
	if i < 0 || i >= len(s.rows) {
		return row.Row{}, ErrPendingIndexOutOfRange
	}
	return s.rows[i], nil
}

// Rows returns a defensive copy of every row, up-to-date followed by pending.
func (s *System) Rows() []row.Row {
	out := make([]row.Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// UpToDateRows returns a defensive copy of the rows before FirstPending.
func (s *System) UpToDateRows() []row.Row {
	out := make([]row.Row, s.firstPending)
	copy(out, s.rows[:s.firstPending])
	return out
}

// PendingRows returns a defensive copy of the rows from FirstPending onward.
func (s *System) PendingRows() []row.Row {
	out := make([]row.Row, len(s.rows)-s.firstPending)
	copy(out, s.rows[s.firstPending:])
	return out
}

func (s *System) validate(r row.Row) error {
	if r.Dim() != s.dim {
		return ErrDimensionMismatch
	}
	if r.Topology() != s.topology {
		return ErrTopologyMismatch
	}
	return nil
}

// AddRow inserts r right after the last up-to-date row, ahead of any
// pending rows, so it is up to date at once, advancing FirstPending; the
// system's topology is preserved. Use AddPendingRow to grow the pending
// partition instead.
func (s *System) AddRow(r row.Row) error {
	if err := s.validate(r); err != nil {
		return err
	}
	// Move any existing pending rows after the new one so up-to-date stays contiguous.
	s.rows = append(s.rows, row.Row{})
	copy(s.rows[s.firstPending+1:], s.rows[s.firstPending:len(s.rows)-1])
	s.rows[s.firstPending] = r
	s.firstPending++
	s.sorted = false
	return nil
}

// AddPendingRow appends r to the pending partition.
func (s *System) AddPendingRow(r row.Row) error {
	if err := s.validate(r); err != nil {
		return err
	}
	s.rows = append(s.rows, r)
	return nil
}

// UnsetPendingRows promotes every pending row to up-to-date (FirstPending
// becomes Len()) and, if resort is true, restores the sorted flag by
// sorting the whole system and merging duplicates.
func (s *System) UnsetPendingRows(resort bool) {
	s.firstPending = len(s.rows)
	if resort {
		s.SortRows()
	}
}

// rowKey produces the documented lexicographic sort key: slot 0 first,
// then variables 1..dim, then epsilon if present.
func rowKey(r row.Row) []string {
	all := r.AllCoefficients()
	key := make([]string, 0, len(all)+1)
	for _, c := range all {
		key = append(key, c.String())
	}
	if eps, err := r.Epsilon(); err == nil {
		key = append(key, eps.String())
	}
	return key
}

func lexLess(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// SortRows sorts only the up-to-date part of the system in place by the
// documented lexicographic key, merging exact duplicates. Pending rows
// are left untouched and still logically follow the up-to-date prefix.
func (s *System) SortRows() {
	upToDate := s.rows[:s.firstPending]
	sort.SliceStable(upToDate, func(i, j int) bool {
		return lexLess(rowKey(upToDate[i]), rowKey(upToDate[j]))
	})

	dedup := upToDate[:0]
	for i, r := range upToDate {
		if i == 0 || !r.Equal(upToDate[i-1]) {
			dedup = append(dedup, r)
		}
	}
	removed := len(upToDate) - len(dedup)
	s.rows = append(dedup, s.rows[s.firstPending:]...)
	s.firstPending -= removed
	s.sorted = true
}

// AddZeroColumns grows every row's space dimension by k zero-valued
// variable slots. Returns core.LengthError if the resulting dimension
// would exceed core.MaxSpaceDimension.
func (s *System) AddZeroColumns(k int) error {
	if s.dim+k > core.MaxSpaceDimension {
		return core.NewLengthError("System.AddZeroColumns", "space dimension overflow")
	}
	for i := range s.rows {
		s.rows[i] = s.rows[i].AddZeroColumns(k)
	}
	s.dim += k
	return nil
}

// RemoveTrailingColumns shrinks every row's space dimension by removing
// its last k variable slots.
func (s *System) RemoveTrailingColumns(k int) error {
	if k < 0 || k > s.dim {
		return ErrDimensionMismatch
	}
	for i := range s.rows {
		r, err := s.rows[i].RemoveTrailingColumns(k)
		if err != nil {
			return err
		}
		s.rows[i] = r
	}
	s.dim -= k
	return nil
}

// PermuteColumns reorders every row's variable coefficients according to
// cycles: an array of 1-origin indices naming one or more disjoint
// permutation cycles, each terminated by a 0. For example {2,3,1,0}
// rotates variables 1→2→3→1.
func (s *System) PermuteColumns(cycles []int) error {
	newFromOld, err := cyclesToMapping(cycles, s.dim)
	if err != nil {
		return err
	}
	for i := range s.rows {
		r, err := s.rows[i].PermuteColumns(newFromOld)
		if err != nil {
			return err
		}
		s.rows[i] = r
	}
	s.sorted = false
	return nil
}

// cyclesToMapping expands a 0-terminated array of 1-origin permutation
// cycles into a newFromOld mapping of length dim: newFromOld[newIdx-1] ==
// oldIdx.
func cyclesToMapping(cycles []int, dim int) ([]int, error) {
	mapping := make([]int, dim)
	for i := range mapping {
		mapping[i] = i + 1 // identity by default
	}
	var cur []int
	for _, c := range cycles {
		if c == 0 {
			if len(cur) > 1 {
				for i, idx := range cur {
					if idx < 1 || idx > dim {
						return nil, ErrPendingIndexOutOfRange
					}
					next := cur[(i+1)%len(cur)]
					mapping[idx-1] = next
				}
			}
			cur = cur[:0]
			continue
		}
		cur = append(cur, c)
	}
	return mapping, nil
}
