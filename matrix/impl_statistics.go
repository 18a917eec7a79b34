// SPDX-License-Identifier: MIT
// Package matrix - whole-matrix reductions.
//
// Purpose:
//   - Sum, Mean, Max, Min, ArgMax and ArgMin over every element of a Matrix.
//   - Each reduction delegates to the per-row Vector reduction and folds the
//     row results (sum of sums, max of maxes, min of mins).
//
// Notes:
//   - Traversal is row-major, so ties resolve to the first occurrence in
//     row order, then column order.
//   - NaN-bearing floats give no ordering guarantee.

package matrix

import "github.com/katalvlaran/lvlath/numeric"

// Sum returns the total of all elements (zero for an empty matrix).
func (m *Matrix[T]) Sum() T {
	var s T
	for _, row := range m.data {
		s += row.Sum()
	}

	return s
}

// Mean returns Sum()/(rows*cols); integer kinds use integer division.
// Errors: ErrInvalidOperation when the matrix has no elements.
func (m *Matrix[T]) Mean() (T, error) {
	return meanOf(m.Sum(), m.r*m.c)
}

// Max returns the largest element, or zero when the matrix is empty.
func (m *Matrix[T]) Max() T {
	i, j, ok := m.argBest(numeric.Less[T])
	if !ok {
		var zero T
		return zero
	}

	return m.data[i][j]
}

// Min returns the smallest element, or zero when the matrix is empty.
func (m *Matrix[T]) Min() T {
	i, j, ok := m.argBest(func(a, b T) bool { return numeric.Less(b, a) })
	if !ok {
		var zero T
		return zero
	}

	return m.data[i][j]
}

// ArgMax returns the (row, col) of the largest element; ties resolve to the
// first occurrence row-major. An empty matrix yields (0, 0).
func (m *Matrix[T]) ArgMax() (int, int) {
	i, j, _ := m.argBest(numeric.Less[T])

	return i, j
}

// ArgMin returns the (row, col) of the smallest element (first occurrence).
func (m *Matrix[T]) ArgMin() (int, int) {
	i, j, _ := m.argBest(func(a, b T) bool { return numeric.Less(b, a) })

	return i, j
}

// argBest folds the per-row winners; worse(a, b) reports whether b beats a.
// ok is false when the matrix holds no element.
func (m *Matrix[T]) argBest(worse func(a, b T) bool) (row, col int, ok bool) {
	if m.c == 0 {
		return 0, 0, false
	}
	for i, r := range m.data {
		j := 0
		for k := 1; k < len(r); k++ {
			if worse(r[j], r[k]) {
				j = k
			}
		}
		if !ok || worse(m.data[row][col], r[j]) {
			row, col, ok = i, j, true
		}
	}

	return row, col, ok
}
