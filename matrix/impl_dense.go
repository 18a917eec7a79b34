// SPDX-License-Identifier: MIT
// Package matrix - Matrix[T], the row-major fixed-shape container.
//
// Purpose:
//   - Matrix[T] holds exactly rows Vector[T] values, each of length cols.
//   - cols is stored explicitly so a 0-row matrix still knows its width.
//
// Contract:
//   - Shape is fixed at construction; only element values change (Set,
//     SetRow, SwapRows).
//   - Constructors copy caller data unless documented otherwise.
//   - Checked accessors return *IndexError; Row and Col are unchecked and
//     panic like slice indexing.
//
// Complexity:
//   - NewMatrix/FromVectors/Clone: O(r*c); At/Set/RowAt/SwapRows: O(1).

package matrix

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvlath/numeric"
)

// Operation names reported by constructors.
const (
	opFromVectors = "Matrix.FromVectors"
	opSetRow      = "Matrix.SetRow"
)

// Matrix is a rows×cols grid of T stored as rows vectors.
type Matrix[T numeric.Number] struct {
	data []Vector[T] // len(data) == r; len(data[i]) == c
	r, c int         // number of rows and columns
}

// NewMatrix allocates a zero-filled rows×cols matrix.
//
// Errors:
//   - ErrInvalidOperation if rows < 0 or cols < 0.
//
// Complexity: O(rows*cols).
func NewMatrix[T numeric.Number](rows, cols int) (*Matrix[T], error) {
	if err := validateSize("rows", rows); err != nil {
		return nil, err
	}
	if err := validateSize("cols", cols); err != nil {
		return nil, err
	}

	return newMatrix[T](rows, cols), nil
}

// newMatrix allocates without validation; callers guarantee rows, cols ≥ 0.
// One backing array is carved into rows so the grid stays contiguous.
func newMatrix[T numeric.Number](rows, cols int) *Matrix[T] {
	buf := make([]T, rows*cols)
	data := make([]Vector[T], rows)
	for i := range data {
		data[i] = Vector[T](buf[i*cols : (i+1)*cols : (i+1)*cols])
	}

	return &Matrix[T]{data: data, r: rows, c: cols}
}

// FromVectors builds a matrix whose rows are copies of the given vectors,
// so the result owns its storage even when a vector is passed twice.
//
// Errors:
//   - ErrInvalidOperation if cols < 0.
//   - *DimensionError naming the first row whose length differs from cols.
func FromVectors[T numeric.Number](cols int, rows ...Vector[T]) (*Matrix[T], error) {
	if err := validateSize("cols", cols); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, dimensionErr(opFromVectors,
				fmt.Sprintf("row %d of length %d", i, cols),
				fmt.Sprintf("length %d", len(row)))
		}
	}
	m := newMatrix[T](len(rows), cols)
	for i, row := range rows {
		copy(m.data[i], row)
	}

	return m, nil
}

// FromRows copies a literal grid; cols is taken from the first row.
// An empty grid yields a 0×0 matrix.
//
// Errors: *DimensionError if the grid is ragged.
func FromRows[T numeric.Number](grid [][]T) (*Matrix[T], error) {
	cols := 0
	if len(grid) > 0 {
		cols = len(grid[0])
	}
	rows := make([]Vector[T], len(grid))
	for i, g := range grid {
		rows[i] = Vector[T](g)
	}

	return FromVectors(cols, rows...)
}

// Identity returns the n×n identity matrix.
func Identity[T numeric.Number](n int) (*Matrix[T], error) {
	m, err := NewMatrix[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i][i] = numeric.One[T]()
	}

	return m, nil
}

// Shape returns (rows, cols).
func (m *Matrix[T]) Shape() (int, int) { return m.r, m.c }

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.c }

// IsSquare reports whether rows == cols.
func (m *Matrix[T]) IsSquare() bool { return m.r == m.c }

// Clone returns a deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := newMatrix[T](m.r, m.c)
	for i, row := range m.data {
		copy(out.data[i], row)
	}

	return out
}

// Equal reports whether both matrices share shape and elements.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(o.data[i]) {
			return false
		}
	}

	return true
}

// RowAt returns row i. The vector aliases the matrix storage.
// Errors: *IndexError{i, rows}.
func (m *Matrix[T]) RowAt(i int) (Vector[T], error) {
	if err := validateIndex(i, m.r); err != nil {
		return nil, err
	}

	return m.data[i], nil
}

// SetRow copies v into row i.
// Errors: *IndexError first, then *DimensionError if len(v) != cols.
func (m *Matrix[T]) SetRow(i int, v Vector[T]) error {
	if err := validateIndex(i, m.r); err != nil {
		return err
	}
	if err := validateSameLen(opSetRow, m.c, len(v)); err != nil {
		return err
	}
	copy(m.data[i], v)

	return nil
}

// Row is the unchecked row view; it panics if i is outside [0, rows).
func (m *Matrix[T]) Row(i int) []T { return m.data[i] }

// Col lazily yields column j top to bottom. The sequence may be ranged
// over any number of times. It panics immediately if j ≥ cols.
func (m *Matrix[T]) Col(j int) iter.Seq[T] {
	if j < 0 || j >= m.c {
		panic(fmt.Sprintf("matrix: column %d out of range [0,%d)", j, m.c))
	}

	return func(yield func(T) bool) {
		for _, row := range m.data {
			if !yield(row[j]) {
				return
			}
		}
	}
}

// At returns element (i, j). The row index is checked before the column.
// Errors: *IndexError for the first offending index.
func (m *Matrix[T]) At(i, j int) (T, error) {
	if err := m.checkCell(i, j); err != nil {
		var zero T
		return zero, err
	}

	return m.data[i][j], nil
}

// Set assigns element (i, j).
// Errors: *IndexError for the first offending index; m is unchanged.
func (m *Matrix[T]) Set(i, j int, x T) error {
	if err := m.checkCell(i, j); err != nil {
		return err
	}
	m.data[i][j] = x

	return nil
}

func (m *Matrix[T]) checkCell(i, j int) error {
	if err := validateIndex(i, m.r); err != nil {
		return err
	}

	return validateIndex(j, m.c)
}

// SwapRows exchanges rows i and j in place. i == j is a no-op.
// Errors: *IndexError for the first offending index; nothing is mutated.
func (m *Matrix[T]) SwapRows(i, j int) error {
	if err := validateIndex(i, m.r); err != nil {
		return err
	}
	if err := validateIndex(j, m.r); err != nil {
		return err
	}
	m.data[i], m.data[j] = m.data[j], m.data[i]

	return nil
}
