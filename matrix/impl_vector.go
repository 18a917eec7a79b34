// SPDX-License-Identifier: MIT

// Package matrix - fixed-length vectors.
//
// Purpose:
//   - Vector[T] is a homogeneous sequence whose length N is fixed at
//     construction and never changes for the value's lifetime.
//   - N is a runtime property (len(v)); every binary operation checks that
//     both operands agree on N and fails with *DimensionError otherwise.
//
// Accessors:
//   - v[i] is the unchecked accessor: an index outside [0,N) panics like any
//     Go slice. At/Set are the checked counterparts returning *IndexError.
//
// Complexity quicksheet:
//   - construction, element-wise ops, reductions: O(N); At/Set: O(1).

package matrix

import (
	"iter"
	"strconv"

	"github.com/katalvlaran/lvlath/numeric"
)

// Operation names reported in vector DimensionErrors.
const (
	opVecFromSlice = "Vector.FromSlice"
	opVecAdd       = "Vector addition"
	opVecSub       = "Vector subtraction"
	opVecMul       = "Vector multiplication"
	opVecDiv       = "Vector division"
	opVecDot       = "Dot product"
	opVecZipMap    = "Vector.ZipMap"
)

// Vector is a fixed-length sequence of N values of type T.
type Vector[T numeric.Number] []T

// NewVector returns a zero-filled vector of length n.
// Errors: ErrInvalidOperation if n < 0.
func NewVector[T numeric.Number](n int) (Vector[T], error) {
	if err := validateSize("vector length", n); err != nil {
		return nil, err
	}

	return make(Vector[T], n), nil
}

// VectorOf builds a vector from a literal list of values (copied).
func VectorOf[T numeric.Number](vals ...T) Vector[T] {
	v := make(Vector[T], len(vals))
	copy(v, vals)

	return v
}

// VectorFromSlice copies s into a new vector of length n.
// Errors: *DimensionError{expected n, found len(s)} when the lengths differ.
func VectorFromSlice[T numeric.Number](n int, s []T) (Vector[T], error) {
	if err := validateSize("vector length", n); err != nil {
		return nil, err
	}
	if err := validateSameLen(opVecFromSlice, n, len(s)); err != nil {
		return nil, err
	}

	return VectorOf(s...), nil
}

// Len returns N.
func (v Vector[T]) Len() int { return len(v) }

// IsEmpty reports whether N == 0.
func (v Vector[T]) IsEmpty() bool { return len(v) == 0 }

// Clone returns an independent copy.
func (v Vector[T]) Clone() Vector[T] { return VectorOf(v...) }

// Equal reports whether v and w have the same length and elements.
func (v Vector[T]) Equal(w Vector[T]) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}

	return true
}

// At returns v[i] or *IndexError.
func (v Vector[T]) At(i int) (T, error) {
	if err := validateIndex(i, len(v)); err != nil {
		var zero T
		return zero, err
	}

	return v[i], nil
}

// Set assigns v[i] = x or returns *IndexError.
func (v Vector[T]) Set(i int, x T) error {
	if err := validateIndex(i, len(v)); err != nil {
		return err
	}
	v[i] = x

	return nil
}

// All iterates (index, value) pairs in order.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v {
			if !yield(i, x) {
				return
			}
		}
	}
}

// ---------- element-wise arithmetic ----------

// Add returns v + w element-wise.
func (v Vector[T]) Add(w Vector[T]) (Vector[T], error) {
	if err := validateSameLen(opVecAdd, len(v), len(w)); err != nil {
		return nil, err
	}

	return ewZip(v, w, add[T]), nil
}

// Sub returns v - w element-wise.
func (v Vector[T]) Sub(w Vector[T]) (Vector[T], error) {
	if err := validateSameLen(opVecSub, len(v), len(w)); err != nil {
		return nil, err
	}

	return ewZip(v, w, sub[T]), nil
}

// Mul returns v ⊙ w (element-wise product).
func (v Vector[T]) Mul(w Vector[T]) (Vector[T], error) {
	if err := validateSameLen(opVecMul, len(v), len(w)); err != nil {
		return nil, err
	}

	return ewZip(v, w, mul[T]), nil
}

// Div returns v / w element-wise.
// Errors: ErrDivisionByZero at the first zero in w; no partial result.
func (v Vector[T]) Div(w Vector[T]) (Vector[T], error) {
	if err := validateSameLen(opVecDiv, len(v), len(w)); err != nil {
		return nil, err
	}

	return ewDiv(v, w)
}

// AddScalar returns v[i] + s for every i.
func (v Vector[T]) AddScalar(s T) Vector[T] {
	return ewMap(v, func(x T) T { return x + s })
}

// MulScalar returns v[i] * s for every i.
func (v Vector[T]) MulScalar(s T) Vector[T] {
	return ewMap(v, func(x T) T { return x * s })
}

// DivScalar returns v[i] / s for every i.
// Errors: ErrDivisionByZero if s is zero (checked once).
func (v Vector[T]) DivScalar(s T) (Vector[T], error) {
	if numeric.IsZero(s) {
		return nil, ErrDivisionByZero
	}

	return ewMap(v, func(x T) T { return x / s }), nil
}

// Dot returns Σ v[i]*w[i], accumulated with a plain running sum.
// Overflow follows the native semantics of T.
func (v Vector[T]) Dot(w Vector[T]) (T, error) {
	if err := validateSameLen(opVecDot, len(v), len(w)); err != nil {
		var zero T
		return zero, err
	}

	return naiveDot(v, w), nil
}

// DotKahan is Dot with compensated summation (same kernel as Mul).
func (v Vector[T]) DotKahan(w Vector[T]) (T, error) {
	if err := validateSameLen(opVecDot, len(v), len(w)); err != nil {
		var zero T
		return zero, err
	}

	return kahanSum(len(v), func(k int) T { return T(v[k] * w[k]) }), nil
}

// Map applies f to every element, producing a vector of a possibly different kind.
func Map[T, U numeric.Number](v Vector[T], f func(T) U) Vector[U] {
	return ewMap(v, f)
}

// ZipMap combines two equal-length vectors element-wise through f.
func ZipMap[T, U numeric.Number](a, b Vector[T], f func(x, y T) U) (Vector[U], error) {
	if err := validateSameLen(opVecZipMap, len(a), len(b)); err != nil {
		return nil, err
	}

	return ewZip(a, b, f), nil
}

// ---------- reductions ----------

// Sum folds + over v starting at zero.
func (v Vector[T]) Sum() T {
	var s T
	for _, x := range v {
		s += x
	}

	return s
}

// Mean returns Sum()/N. Integer kinds use integer division.
// Errors: ErrInvalidOperation when N == 0 or N is not representable in T.
func (v Vector[T]) Mean() (T, error) {
	return meanOf(v.Sum(), len(v))
}

// Max returns the largest element, or zero for an empty vector.
// NaN inputs give no ordering guarantee.
func (v Vector[T]) Max() T {
	if len(v) == 0 {
		var zero T
		return zero
	}

	return v[v.ArgMax()]
}

// Min returns the smallest element, or zero for an empty vector.
func (v Vector[T]) Min() T {
	if len(v) == 0 {
		var zero T
		return zero
	}

	return v[v.ArgMin()]
}

// ArgMax returns the index of the largest element; ties resolve to the first
// occurrence. Returns 0 for an empty vector.
func (v Vector[T]) ArgMax() int {
	best := 0
	for i := 1; i < len(v); i++ {
		if numeric.Less(v[best], v[i]) {
			best = i
		}
	}

	return best
}

// ArgMin returns the index of the smallest element (first occurrence).
func (v Vector[T]) ArgMin() int {
	best := 0
	for i := 1; i < len(v); i++ {
		if numeric.Less(v[i], v[best]) {
			best = i
		}
	}

	return best
}

// meanOf divides total by count after converting count into T.
func meanOf[T numeric.Number](total T, count int) (T, error) {
	var zero T
	if count == 0 {
		return zero, InvalidOperationf("mean of an empty container")
	}
	n, ok := numeric.FromFloat64[T](float64(count))
	if !ok || numeric.IsZero(n) {
		return zero, InvalidOperationf("element count %s not representable as %s",
			strconv.Itoa(count), numeric.Kind[T]())
	}

	return total / n, nil
}
