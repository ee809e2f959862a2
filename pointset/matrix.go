package pointset

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Matrix is a row-major collection of points sharing one dimension.
type Matrix struct {
	rows int
	cols int
	data []float64
}

// New allocates a zeroed rows x cols matrix.
// rows may be zero; cols must be positive.
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromData wraps data as a rows x cols matrix. The slice is copied.
func FromData(data []float64, rows, cols int) (*Matrix, error) {
	if rows < 0 || cols <= 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for %dx%d", ErrBadShape, len(data), rows, cols)
	}
	return &Matrix{rows: rows, cols: cols, data: slices.Clone(data)}, nil
}

// FromRows builds a matrix from a slice of points. All points must share one length.
func FromRows(points [][]float64) (*Matrix, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadShape)
	}
	cols := len(points[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w: zero columns", ErrBadShape)
	}
	data := make([]float64, 0, len(points)*cols)
	for i, p := range points {
		if len(p) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadShape, i, len(p), cols)
		}
		data = append(data, p...)
	}
	return &Matrix{rows: len(points), cols: cols, data: data}, nil
}

// MustFromRows is like FromRows but panics on error. Intended for tests and examples.
func MustFromRows(points [][]float64) *Matrix {
	m, err := FromRows(points)
	if err != nil {
		panic(err)
	}
	return m
}

// Rows returns the number of points.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of objectives.
func (m *Matrix) Cols() int { return m.cols }

// Len is an alias of Rows.
func (m *Matrix) Len() int { return m.rows }

// Data exposes the underlying row-major buffer.
func (m *Matrix) Data() []float64 { return m.data }

// Row returns a view of row i. The view aliases the matrix buffer.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]
}

// At returns the value at (i, j).
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.cols+j] }

// Set stores v at (i, j).
func (m *Matrix) Set(i, j int, v float64) { m.data[i*m.cols+j] = v }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{rows: m.rows, cols: m.cols, data: slices.Clone(m.data)}
}

// ToRows copies the matrix into a slice of points.
func (m *Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = slices.Clone(m.Row(i))
	}
	return out
}

// Column returns a copy of column j.
func (m *Matrix) Column(j int) []float64 {
	out := make([]float64, m.rows)
	for i := range out {
		out[i] = m.data[i*m.cols+j]
	}
	return out
}

// Select returns the rows whose mask entry is true, preserving their order.
func (m *Matrix) Select(mask []bool) (*Matrix, error) {
	if err := CheckDimension("mask", m.rows, len(mask)); err != nil {
		return nil, err
	}
	data := make([]float64, 0, len(m.data))
	rows := 0
	for i, keep := range mask {
		if keep {
			data = append(data, m.Row(i)...)
			rows++
		}
	}
	return &Matrix{rows: rows, cols: m.cols, data: data}, nil
}

// SelectRows returns the given rows in the given order.
func (m *Matrix) SelectRows(idx []int) *Matrix {
	data := make([]float64, 0, len(idx)*m.cols)
	for _, i := range idx {
		data = append(data, m.Row(i)...)
	}
	return &Matrix{rows: len(idx), cols: m.cols, data: data}
}

// Slice returns a copy of rows [start, end).
func (m *Matrix) Slice(start, end int) *Matrix {
	return &Matrix{rows: end - start, cols: m.cols, data: slices.Clone(m.data[start*m.cols : end*m.cols])}
}

// Project returns a copy holding only the first cols columns.
func (m *Matrix) Project(cols int) *Matrix {
	if cols >= m.cols {
		return m.Clone()
	}
	data := make([]float64, 0, m.rows*cols)
	for i := 0; i < m.rows; i++ {
		data = append(data, m.Row(i)[:cols]...)
	}
	return &Matrix{rows: m.rows, cols: cols, data: data}
}

// Negate returns a copy with every value negated.
func (m *Matrix) Negate() *Matrix {
	out := m.Clone()
	for i, v := range out.data {
		out.data[i] = -v
	}
	return out
}

// Append returns a new matrix holding the rows of m followed by the rows of other.
func (m *Matrix) Append(other *Matrix) (*Matrix, error) {
	if err := CheckDimension("appended rows", m.cols, other.cols); err != nil {
		return nil, err
	}
	data := make([]float64, 0, len(m.data)+len(other.data))
	data = append(data, m.data...)
	data = append(data, other.data...)
	return &Matrix{rows: m.rows + other.rows, cols: m.cols, data: data}, nil
}

// Bounds returns the per-column minimum and maximum. Both are nil for an empty matrix.
func (m *Matrix) Bounds() (lower, upper []float64) {
	if m.rows == 0 {
		return nil, nil
	}
	lower = slices.Clone(m.Row(0))
	upper = slices.Clone(m.Row(0))
	for i := 1; i < m.rows; i++ {
		for j, v := range m.Row(i) {
			lower[j] = math.Min(lower[j], v)
			upper[j] = math.Max(upper[j], v)
		}
	}
	return lower, upper
}

// Equal reports whether both matrices have the same shape and values.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.rows == other.rows && m.cols == other.cols && slices.Equal(m.data, other.data)
}

// String renders one point per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		for j, v := range m.Row(i) {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
