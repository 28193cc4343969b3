package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c Dense matrix initialized to zeros.
//
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows copies rows into a new Dense. Every row must have the
// same non-zero length.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: %w", ErrBadShape)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d columns, want %d: %w", i, len(row), m.c, ErrRaggedRows)
		}
		copy(m.data[i*m.c:], row)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}
	return row*m.c + col, nil
}

// At returns the element at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Get is At without the bounds error; out-of-range indices panic.
func (m *Dense) Get(row, col int) float64 { return m.data[row*m.c+col] }

// Set assigns v at (row, col) or returns ErrOutOfRange.
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	return &Dense{r: m.r, c: m.c, data: append([]float64(nil), m.data...)}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// It stops early when f returns false.
//
// Complexity: O(r*c), no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
