// SPDX-License-Identifier: MIT
package matrix

import (
	"github.com/latticeforge/numdom/core"
	"github.com/latticeforge/numdom/scalar"
)

// BoundMatrix is a square matrix of Bound entries under the (min, +)
// semiring, the difference-bound representation bdshape and octagon
// close via all-pairs shortest paths.
type BoundMatrix struct {
	n    int
	data []scalar.Bound
}

// NewBoundMatrix builds an n x n matrix with every off-diagonal entry at
// +inf and the diagonal at 0, the vacuous DBM admitting all values.
func NewBoundMatrix(n int) *BoundMatrix {
	data := make([]scalar.Bound, n*n)
	zero := scalar.NewBound(scalar.Zero(), false)
	for i := range data {
		data[i] = scalar.PosInf()
	}
	bm := &BoundMatrix{n: n, data: data}
	for i := 0; i < n; i++ {
		bm.data[i*n+i] = zero
	}
	return bm
}

// N returns the matrix's dimension.
func (bm *BoundMatrix) N() int { return bm.n }

func (bm *BoundMatrix) index(i, j int) (int, error) {
	if i < 0 || i >= bm.n || j < 0 || j >= bm.n {
		return 0, ErrIndexOutOfRange
	}
	return i*bm.n + j, nil
}

// At returns entry (i, j): the bound on x_j - x_i <= At(i, j).
func (bm *BoundMatrix) At(i, j int) (scalar.Bound, error) {
	idx, err := bm.index(i, j)
	if err != nil {
		return scalar.Bound{}, err
	}
	return bm.data[idx], nil
}

// Set writes entry (i, j).
func (bm *BoundMatrix) Set(i, j int, v scalar.Bound) error {
	idx, err := bm.index(i, j)
	if err != nil {
		return err
	}
	bm.data[idx] = v
	return nil
}

// Close runs Floyd-Warshall shortest-path closure in place: for every
// intermediate k, relax (i, j) via (i, k) + (k, j). A negative diagonal
// entry after closure signals a negative cycle, i.e. an empty (infeasible)
// domain; Close reports that as consistent == false.
func (bm *BoundMatrix) Close() (consistent bool, err error) {
	n := bm.n
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik, _ := bm.At(i, k)
			if ik.IsInfinite() {
				continue
			}
			for j := 0; j < n; j++ {
				kj, _ := bm.At(k, j)
				if kj.IsInfinite() {
					continue
				}
				sum, _, serr := ik.Add(kj, core.RoundNotNeeded)
				if serr != nil {
					return false, serr
				}
				cur, _ := bm.At(i, j)
				if sum.Cmp(cur) < 0 || (sum.Cmp(cur) == 0 && sum.Open() && !cur.Open()) {
					if err := bm.Set(i, j, sum); err != nil {
						return false, err
					}
				}
			}
		}
	}
	for i := 0; i < n; i++ {
		diag, _ := bm.At(i, i)
		if diag.IsFinite() && diag.Value().Sign() < 0 {
			return false, nil
		}
	}
	return true, nil
}

// Meet tightens bm in place to the pairwise minimum with o (conjunction
// of the two DBMs' constraint sets), the closure-free part of
// intersection_assign for bdshape/octagon.
func (bm *BoundMatrix) Meet(o *BoundMatrix) error {
	if bm.n != o.n {
		return ErrDimensionMismatch
	}
	for i := 0; i < bm.n; i++ {
		for j := 0; j < bm.n; j++ {
			a, _ := bm.At(i, j)
			b, _ := o.At(i, j)
			if b.Cmp(a) < 0 {
				if err := bm.Set(i, j, b); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Join widens bm in place to the pairwise maximum with o (the shape
// upper-bound candidate before re-closure), used by upper_bound_assign.
func (bm *BoundMatrix) Join(o *BoundMatrix) error {
	if bm.n != o.n {
		return ErrDimensionMismatch
	}
	for i := 0; i < bm.n; i++ {
		for j := 0; j < bm.n; j++ {
			a, _ := bm.At(i, j)
			b, _ := o.At(i, j)
			if b.Cmp(a) > 0 {
				if err := bm.Set(i, j, b); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Clone returns a deep copy of bm.
func (bm *BoundMatrix) Clone() *BoundMatrix {
	out := &BoundMatrix{n: bm.n, data: make([]scalar.Bound, len(bm.data))}
	copy(out.data, bm.data)
	return out
}
