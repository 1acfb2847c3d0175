// SPDX-License-Identifier: MIT
package matrix

// GaussianEliminate reduces m to row-echelon form in place and returns
// its rank. In each column the first nonzero entry at or below the
// current rank is the pivot (the arithmetic is exact, so no
// magnitude-based pivoting is done), and that column is cleared in every
// other row.
func GaussianEliminate(m *Dense) (int, error) {
	rank := 0
	for col := 0; col < m.cols && rank < m.rows; col++ {
		pivot := -1
		for r := rank; r < m.rows; r++ {
			v, err := m.At(r, col)
			if err != nil {
				return 0, err
			}
			if !v.IsZero() {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		if err := m.SwapRows(rank, pivot); err != nil {
			return 0, err
		}
		pv, _ := m.At(rank, col)
		for r := 0; r < m.rows; r++ {
			if r == rank {
				continue
			}
			rv, err := m.At(r, col)
			if err != nil {
				return 0, err
			}
			if rv.IsZero() {
				continue
			}
			factor, err := rv.Quo(pv)
			if err != nil {
				return 0, err
			}
			rowVals, err := m.RowSlice(r)
			if err != nil {
				return 0, err
			}
			pivotRow, err := m.RowSlice(rank)
			if err != nil {
				return 0, err
			}
			for c := 0; c < m.cols; c++ {
				rowVals[c] = rowVals[c].Sub(pivotRow[c].Mul(factor))
			}
			if err := m.SetRow(r, rowVals); err != nil {
				return 0, err
			}
		}
		rank++
	}
	return rank, nil
}

// NullSpaceBasisSize returns cols - rank, the dimension of the solution
// space of m*x = 0 (the number of independent lines a reduced equality
// subsystem of this shape admits).
func NullSpaceBasisSize(m *Dense, rank int) int {
	return m.cols - rank
}

// IsZeroRow reports whether every entry of row r is zero.
func IsZeroRow(m *Dense, r int) (bool, error) {
	vals, err := m.RowSlice(r)
	if err != nil {
		return false, err
	}
	for _, v := range vals {
		if !v.IsZero() {
			return false, nil
		}
	}
	return true, nil
}
