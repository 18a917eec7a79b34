// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points composed from the
//     canonical kernels; no loop logic is duplicated here.
//   - Facades that can fail wrap the kernel error with their own name via
//     matrixErrorf, so errors.Is / errors.As still reach the typed error.
//
// Determinism & Policy:
//   - Facades never change loop orders or the numeric policy of kernels;
//     options are forwarded unchanged.

package matrix

import (
	"math"

	"github.com/katalvlaran/lvlath/numeric"
)

// ---------- Constructors ----------

// NewZeros returns a zero-filled rows×cols matrix (alias of NewMatrix).
func NewZeros[T numeric.Number](rows, cols int) (*Matrix[T], error) {
	return NewMatrix[T](rows, cols)
}

// ZerosLike returns a zero matrix with the shape of m.
func ZerosLike[T numeric.Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newMatrix[T](m.r, m.c), nil
}

// IdentityLike returns the identity with the dimension of a square m.
func IdentityLike[T numeric.Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSquare("IdentityLike", m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity[T](m.r)
}

// ---------- Linear algebra ----------

// Product is an alias for Mul.
func Product[T numeric.Number](a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	out, err := Mul(a, b, opts...)
	if err != nil {
		return nil, matrixErrorf("Product", err)
	}

	return out, nil
}

// Determinant is the function form of m.Det.
func Determinant[T numeric.Number](m *Matrix[T], opts ...Option) (T, error) {
	if err := ValidateNotNil(m); err != nil {
		var zero T
		return zero, matrixErrorf("Determinant", err)
	}

	return m.Det(opts...)
}

// Gram returns mᵀ·m, a cols×cols symmetric matrix.
func Gram[T numeric.Number](m *Matrix[T], opts ...Option) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Gram", err)
	}

	return Mul(m.Transpose(), m, opts...)
}

// ---------- Reductions along one axis ----------

// RowSums returns the per-row totals (length rows).
func RowSums[T numeric.Number](m *Matrix[T]) Vector[T] {
	out := make(Vector[T], m.r)
	for i, row := range m.data {
		out[i] = row.Sum()
	}

	return out
}

// ColSums returns the per-column totals (length cols).
func ColSums[T numeric.Number](m *Matrix[T]) Vector[T] {
	out := make(Vector[T], m.c)
	for j := range out {
		for x := range m.Col(j) {
			out[j] += x
		}
	}

	return out
}

// ---------- Numeric compare ----------

// AllClose reports whether a and b share shape and every pair satisfies
// |a-b| ≤ atol + rtol*|b|. Integer kinds are compared through float64.
func AllClose[T numeric.Number](a, b *Matrix[T], rtol, atol float64) (bool, error) {
	if err := ValidateSameShape("AllClose", a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	for i := range a.data {
		for j := range a.data[i] {
			x, y := float64(a.data[i][j]), float64(b.data[i][j])
			if math.Abs(x-y) > atol+rtol*math.Abs(y) {
				return false, nil
			}
		}
	}

	return true, nil
}
