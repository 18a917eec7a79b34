// Package lvlath is a small, generic linear-algebra toolkit: fixed-shape
// vectors, matrices and tensors over a closed set of numeric kinds.
//
// 🚀 What is in the box?
//
//	• numeric/   — the Number constraint (float32, float64, int32, int64,
//	               uint32, uint64) and its identity/abs/conversion helpers
//	• matrix/    — Vector, Matrix and Tensor containers: element-wise and
//	               scalar ops, dot products, Kahan-compensated products,
//	               determinant, transpose, reductions, row/column views
//	• matrix/gonumconv/ — conversion to and from gonum's mat.Dense
//	• matrixio/  — YAML/JSON documents of named vectors, matrices, tensors
//	• cmd/linalg — command line front end (det, mul, transpose, reduce, heatmap)
//
// ✨ Guarantees
//
//   - Shapes are fixed at construction; mismatches are errors, never panics.
//   - Arithmetic returns new values and never mutates operands.
//   - Errors are typed (*DimensionError, *IndexError) and unwrap to sentinels.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	d, _ := a.Det() // -2
//
//	go get github.com/katalvlaran/lvlath
package lvlath
