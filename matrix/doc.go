// SPDX-License-Identifier: MIT

// Package matrix provides fixed-shape Vector, Matrix and Tensor containers
// over the closed numeric set declared in package numeric.
//
// The matrix package provides:
//
//   - Vector[T]: element-wise arithmetic, scalar ops, dot products,
//     reductions (sum, mean, min, max, argmax) and Map/ZipMap transforms.
//   - Matrix[T]: row-major R×N grids with element-wise and scalar ops,
//     matrix-vector and matrix-matrix products, transpose, trace, the
//     determinant (partial-pivot elimination), row swaps and row/column views.
//   - Tensor[T]: a stack of uniformly shaped matrices with indexed access
//     and scalar multiplication.
//
// Shapes are fixed at construction. Every binary operation checks its
// operands and fails with a *DimensionError instead of panicking; checked
// accessors fail with an *IndexError. Both unwrap to package sentinels:
//
//	if errors.Is(err, matrix.ErrDimensionMismatch) { ... }
//
// Matrix products accumulate each output cell with Kahan compensated
// summation by default; see WithNaiveSummation and WithPivotTolerance.
//
// Arithmetic never mutates its operands and allocates its result, so values
// may be shared read-only across goroutines. Set, SetRow and SwapRows are
// the only mutators.
package matrix
