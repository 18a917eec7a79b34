// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and index checks.
//  - Keep kernels minimal by delegating length/shape/index guards here.
//  - Return typed errors (*DimensionError, *IndexError) so every call site
//    reports the same diagnostics.
//
// Determinism & Performance:
//  - All checks are pure, O(1) (FromVectors/FromMatrices checks are O(rows))
//    and allocate only on failure.
//
// Note:
//  - Composite validators run in a fixed sequence (nil → shape), so the first
//    reported problem is stable.

package matrix

import (
	"strconv"

	"github.com/katalvlaran/lvlath/numeric"
)

// validateSize rejects negative container sizes.
func validateSize(what string, n int) error {
	if n < 0 {
		return InvalidOperationf("%s must be >= 0, got %d", what, n)
	}

	return nil
}

// validateIndex checks 0 ≤ i < size.
func validateIndex(i, size int) error {
	if i < 0 || i >= size {
		return indexErr(i, size)
	}

	return nil
}

// validateSameLen ensures two vector lengths agree.
func validateSameLen(op string, want, got int) error {
	if want != got {
		return dimensionErr(op, strconv.Itoa(want), strconv.Itoa(got))
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrInvalidOperation (wrapped) if m == nil.
func ValidateNotNil[T numeric.Number](m *Matrix[T]) error {
	if m == nil {
		return InvalidOperationf("nil matrix")
	}

	return nil
}

// ValidateSameShape ensures a and b have equal row and column counts.
// Both operands must be non-nil.
//
// Errors: ErrInvalidOperation (nil), *DimensionError naming both shapes.
// Complexity: O(1).
func ValidateSameShape[T numeric.Number](op string, a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return dimensionErr(op, shapeString(a.r, a.c), shapeString(b.r, b.c))
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
func ValidateSquare[T numeric.Number](op string, m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return dimensionErr(op, "square matrix", shapeString(m.r, m.c)+" matrix")
	}

	return nil
}

// ValidateMulCompatible checks the inner dimension of a×b: b.Rows must equal a.Cols.
// The error reports the right operand's expected and observed shapes.
func ValidateMulCompatible[T numeric.Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if b.r != a.c {
		return dimensionErr(opMul, shapeString(a.c, b.c), shapeString(b.r, b.c))
	}

	return nil
}

// ValidateVecLen ensures a vector length matches the required size n.
func ValidateVecLen[T numeric.Number](op string, v Vector[T], n int) error {
	return validateSameLen(op, n, len(v))
}
