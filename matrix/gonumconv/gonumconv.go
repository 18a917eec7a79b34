// SPDX-License-Identifier: MIT

// Package gonumconv converts between matrix.Matrix[T] and gonum's mat.Dense.
//
// Purpose:
//   - Hand lvlath matrices to gonum routines (decompositions, solvers) that
//     are out of scope for the core package.
//   - Bring gonum results back with a checked float64 → T conversion.
//
// Notes:
//   - gonum refuses zero-sized dense matrices, so ToDense rejects them with
//     ErrInvalidOperation instead of letting mat.NewDense panic.
//   - Integer kinds round-trip exactly up to 2^53 in magnitude.
package gonumconv

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlath/matrix"
	"github.com/katalvlaran/lvlath/numeric"
)

// ToDense copies m into a new *mat.Dense.
// Errors: ErrInvalidOperation if m is nil or has a zero dimension.
func ToDense[T numeric.Number](m *matrix.Matrix[T]) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	r, c := m.Shape()
	if r == 0 || c == 0 {
		return nil, matrix.InvalidOperationf("gonum cannot hold a %dx%d matrix", r, c)
	}

	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for _, x := range m.Row(i) {
			data = append(data, float64(x))
		}
	}

	return mat.NewDense(r, c, data), nil
}

// FromDense copies any gonum matrix into a Matrix[T].
// Errors: ErrInvalidOperation naming the first element not representable in T.
func FromDense[T numeric.Number](d mat.Matrix) (*matrix.Matrix[T], error) {
	r, c := d.Dims()
	out, err := matrix.NewMatrix[T](r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		row := out.Row(i)
		for j := range row {
			f := d.At(i, j)
			x, ok := numeric.FromFloat64[T](f)
			if !ok {
				return nil, matrix.InvalidOperationf("element (%d,%d)=%g not representable as %s",
					i, j, f, numeric.Kind[T]())
			}
			row[j] = x
		}
	}

	return out, nil
}

// ToVecDense copies v into a new *mat.VecDense.
// Errors: ErrInvalidOperation for an empty vector.
func ToVecDense[T numeric.Number](v matrix.Vector[T]) (*mat.VecDense, error) {
	if v.IsEmpty() {
		return nil, matrix.InvalidOperationf("gonum cannot hold an empty vector")
	}

	return mat.NewVecDense(v.Len(), matrix.Map(v, func(x T) float64 { return float64(x) })), nil
}

// Det is gonum's LU determinant of m, computed in float64.
func Det[T numeric.Number](m *matrix.Matrix[T]) (float64, error) {
	if err := matrix.ValidateSquare("Determinant", m); err != nil {
		return 0, err
	}
	if m.Rows() == 0 {
		return 1, nil
	}
	d, err := ToDense(m)
	if err != nil {
		return 0, err
	}

	return mat.Det(d), nil
}

// Mul is gonum's product a×b returned as a Matrix[T].
func Mul[T numeric.Number](a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, err
	}
	da, err := ToDense(a)
	if err != nil {
		return nil, err
	}
	db, err := ToDense(b)
	if err != nil {
		return nil, err
	}
	var p mat.Dense
	p.Mul(da, db)

	return FromDense[T](&p)
}
