package matrix

import "github.com/latticeforge/numdom/scalar"

// Dense is a flat row-major matrix of Rational entries.
type Dense struct {
	rows, cols int
	data       []scalar.Rational
}

// NewDense builds a Dense matrix of the given shape, zero-filled.
func NewDense(rows, cols int) *Dense {
	zero, _ := scalar.NewRational(0, 1)
	data := make([]scalar.Rational, rows*cols)
	for i := range data {
		data[i] = zero
	}
	return &Dense{rows: rows, cols: cols, data: data}
}

// Rows, Cols report the matrix shape.
func (m *Dense) Rows() int { return m.rows }
func (m *Dense) Cols() int { return m.cols }

func (m *Dense) index(r, c int) (int, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return 0, ErrIndexOutOfRange
	}
	return r*m.cols + c, nil
}

// At returns entry (r, c).
func (m *Dense) At(r, c int) (scalar.Rational, error) {
	i, err := m.index(r, c)
	if err != nil {
		return scalar.Rational{}, err
	}
	return m.data[i], nil
}

// Set writes entry (r, c).
func (m *Dense) Set(r, c int, v scalar.Rational) error {
	i, err := m.index(r, c)
	if err != nil {
		return err
	}
	m.data[i] = v
	return nil
}

// SwapRows exchanges rows r1 and r2 in place.
func (m *Dense) SwapRows(r1, r2 int) error {
	if r1 < 0 || r1 >= m.rows || r2 < 0 || r2 >= m.rows {
		return ErrIndexOutOfRange
	}
	if r1 == r2 {
		return nil
	}
	for c := 0; c < m.cols; c++ {
		i1, i2 := r1*m.cols+c, r2*m.cols+c
		m.data[i1], m.data[i2] = m.data[i2], m.data[i1]
	}
	return nil
}

// RowSlice returns a defensive copy of row r.
func (m *Dense) RowSlice(r int) ([]scalar.Rational, error) {
	if r < 0 || r >= m.rows {
		return nil, ErrIndexOutOfRange
	}
	out := make([]scalar.Rational, m.cols)
	copy(out, m.data[r*m.cols:(r+1)*m.cols])
	return out, nil
}

// SetRow overwrites row r from vals (must have length Cols()).
func (m *Dense) SetRow(r int, vals []scalar.Rational) error {
	if r < 0 || r >= m.rows {
		return ErrIndexOutOfRange
	}
	if len(vals) != m.cols {
		return ErrDimensionMismatch
	}
	copy(m.data[r*m.cols:(r+1)*m.cols], vals)
	return nil
}
