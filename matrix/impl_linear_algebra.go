// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels over Matrix[T]:
// element-wise addition, subtraction and Hadamard product, scalar maps,
// matrix-vector and matrix-matrix products, transpose, trace and the
// determinant. All functions validate shapes first and return typed errors.
//
// Purpose:
//   - Define the operation tags reported in *DimensionError.
//   - Keep one kernel per operation; facades in api.go only forward.
//
// Notes:
//   - Every kernel allocates its result; operands are never mutated.
//   - Products accumulate each output cell with kahanSum unless
//     WithNaiveSummation is passed.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/numeric"
)

// Operation name constants for DimensionError.Operation.
const (
	opAdd       = "Matrix addition"
	opSub       = "Matrix subtraction"
	opMul       = "Matrix multiplication"
	opHadamard  = "Hadamard product"
	opMatVec    = "Matrix-vector multiplication"
	opTranspose = "Transpose"
	opDet       = "Determinant"
	opTrace     = "Trace"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// zipRows applies f cell by cell to two same-shape matrices.
func zipRows[T numeric.Number](a, b *Matrix[T], f func(x, y T) T) *Matrix[T] {
	out := &Matrix[T]{data: make([]Vector[T], a.r), r: a.r, c: a.c}
	for i := range a.data {
		out.data[i] = ewZip(a.data[i], b.data[i], f)
	}

	return out
}

// mapRows applies f to every cell.
func mapRows[T, U numeric.Number](m *Matrix[T], f func(x T) U) *Matrix[U] {
	out := &Matrix[U]{data: make([]Vector[U], m.r), r: m.r, c: m.c}
	for i := range m.data {
		out.data[i] = ewMap(m.data[i], f)
	}

	return out
}

// Add returns m + b.
// Errors: *DimensionError{expected=m's shape, found=b's shape}.
// Complexity: O(r*c).
func (m *Matrix[T]) Add(b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameShape(opAdd, m, b); err != nil {
		return nil, err
	}

	return zipRows(m, b, add[T]), nil
}

// Sub returns m - b.
func (m *Matrix[T]) Sub(b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameShape(opSub, m, b); err != nil {
		return nil, err
	}

	return zipRows(m, b, sub[T]), nil
}

// Hadamard returns the element-wise product m ⊙ b.
func (m *Matrix[T]) Hadamard(b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameShape(opHadamard, m, b); err != nil {
		return nil, err
	}

	return zipRows(m, b, mul[T]), nil
}

// MulScalar returns s*m.
func (m *Matrix[T]) MulScalar(s T) *Matrix[T] {
	return mapRows(m, func(x T) T { return x * s })
}

// AddScalar returns m with s added to every element.
func (m *Matrix[T]) AddScalar(s T) *Matrix[T] {
	return mapRows(m, func(x T) T { return x + s })
}

// DivScalar returns m with every element divided by s.
// Errors: ErrDivisionByZero if s is zero.
func (m *Matrix[T]) DivScalar(s T) (*Matrix[T], error) {
	if numeric.IsZero(s) {
		return nil, ErrDivisionByZero
	}

	return mapRows(m, func(x T) T { return x / s }), nil
}

// MapMatrix applies f to every element of m, possibly changing the kind.
func MapMatrix[T, U numeric.Number](m *Matrix[T], f func(T) U) *Matrix[U] {
	return mapRows(m, f)
}

// MulVec returns y = m·v, a vector of length rows.
// Entry i is row(i).DotKahan(v) by default and row(i).Dot(v) under
// WithNaiveSummation; for floats the two may differ in the last bits.
//
// Errors: *DimensionError if len(v) != cols.
// Complexity: O(r*c).
func (m *Matrix[T]) MulVec(v Vector[T], opts ...Option) (Vector[T], error) {
	if err := ValidateVecLen(opMatVec, v, m.c); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	out := make(Vector[T], m.r)
	for i, row := range m.data {
		out[i] = dotCell(o, m.c, func(k int) T { return T(row[k] * v[k]) })
	}

	return out, nil
}

// dotCell sums n product terms under the selected summation policy.
func dotCell[T numeric.Number](o Options, n int, term func(k int) T) T {
	if o.kahan {
		return kahanSum(n, term)
	}
	var sum T
	for k := 0; k < n; k++ {
		sum += term(k)
	}

	return sum
}

// Mul returns the product a×b of an R×N and an N×M matrix.
//
// Implementation:
//   - Stage 1: validate b.Rows == a.Cols.
//   - Stage 2: for every (i, j) accumulate Σ_k a[i][k]*b[k][j] with
//     compensated summation (or a plain sum under WithNaiveSummation).
//
// Behavior highlights:
//   - Each product is rounded to T before it enters the accumulator.
//   - Integer kinds take the same path; their compensation stays zero and
//     overflow wraps natively.
//
// Errors:
//   - *DimensionError{expected="NxM", found="<b.Rows>xM", operation="Matrix multiplication"}.
//
// Complexity: O(R*N*M) time, O(R*M) space.
func Mul[T numeric.Number](a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	out := newMatrix[T](a.r, b.c)
	for i, ai := range a.data {
		dst := out.data[i]
		for j := 0; j < b.c; j++ {
			dst[j] = dotCell(o, a.c, func(k int) T { return T(ai[k] * b.data[k][j]) })
		}
	}

	return out, nil
}

// Mul is the method form of the package-level Mul.
func (m *Matrix[T]) Mul(b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	return Mul(m, b, opts...)
}

// Transpose returns the cols×rows matrix mᵀ.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := newMatrix[T](m.c, m.r)
	for i, row := range m.data {
		for j, x := range row {
			out.data[j][i] = x
		}
	}

	return out
}

// TransposeTo is Transpose with a caller-declared result width.
// targetCols must equal the source row count.
//
// Errors: *DimensionError{expected="Any x targetCols", found="RxN", operation="Transpose"}.
func (m *Matrix[T]) TransposeTo(targetCols int) (*Matrix[T], error) {
	if targetCols != m.r {
		return nil, dimensionErr(opTranspose,
			fmt.Sprintf("Any x %d", targetCols), shapeString(m.r, m.c))
	}

	return m.Transpose(), nil
}

// Trace returns the sum of the main diagonal.
// Errors: *DimensionError if m is not square.
func (m *Matrix[T]) Trace() (T, error) {
	var sum T
	if err := ValidateSquare(opTrace, m); err != nil {
		return sum, err
	}
	for i := 0; i < m.r; i++ {
		sum += m.data[i][i]
	}

	return sum, nil
}

// Det returns the determinant of a square matrix.
//
// Implementation:
//   - Stage 1: validate squareness.
//   - Stage 2: Gaussian elimination with partial pivoting on a working
//     copy. Each row swap flips the sign; the result is the signed product
//     of the pivots. A pivot with |p| ≤ PivotTolerance short-circuits to 0.
//   - Floating kinds eliminate in T. Integer kinds eliminate in float64 and
//     round the result back to T.
//
// Behavior highlights:
//   - The 0×0 determinant is 1 (empty product).
//   - m is never mutated.
//
// Errors:
//   - *DimensionError{expected="square matrix", found="RxN matrix", operation="Determinant"}.
//   - ErrInvalidOperation when an integer determinant is not representable
//     in T (e.g. negative for unsigned kinds, or beyond the range of T).
//
// Complexity: O(n^3) time, O(n^2) space.
func (m *Matrix[T]) Det(opts ...Option) (T, error) {
	var zero T
	if err := ValidateSquare(opDet, m); err != nil {
		return zero, err
	}
	o := gatherOptions(opts...)

	if numeric.IsFloat[T]() {
		work := make([][]T, m.r)
		for i, row := range m.data {
			work[i] = append([]T(nil), row...)
		}

		return eliminate(work, o.pivotTol), nil
	}

	work := make([][]float64, m.r)
	for i, row := range m.data {
		work[i] = ewMap(row, func(x T) float64 { return float64(x) })
	}
	d := math.Round(eliminate(work, o.pivotTol))
	det, ok := numeric.FromFloat64[T](d)
	if !ok {
		return zero, InvalidOperationf("determinant %g not representable as %s", d, numeric.Kind[T]())
	}

	return det, nil
}

// eliminate reduces a (destroyed in place) to upper-triangular form and
// returns the signed product of its pivots.
func eliminate[F numeric.Number](a [][]F, tol float64) F {
	n := len(a)
	det := numeric.One[F]()
	for k := 0; k < n; k++ {
		// partial pivot: largest magnitude in column k at or below the diagonal
		p := k
		for i := k + 1; i < n; i++ {
			if numeric.Abs(a[i][k]) > numeric.Abs(a[p][k]) {
				p = i
			}
		}
		pivot := a[p][k]
		if numeric.IsZero(pivot) || float64(numeric.Abs(pivot)) <= tol {
			return numeric.Zero[F]()
		}
		if p != k {
			a[p], a[k] = a[k], a[p]
			det = -det
		}
		det *= pivot

		for i := k + 1; i < n; i++ {
			f := a[i][k] / pivot
			for j := k + 1; j < n; j++ {
				a[i][j] -= F(f * a[k][j])
			}
		}
	}

	return det
}
