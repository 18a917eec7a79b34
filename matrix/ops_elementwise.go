// SPDX-License-Identifier: MIT
// Package matrix — element-wise micro-kernels (private).
//
// Purpose:
//   - Centralize the flat loops shared by Vector, Matrix and Tensor so every
//     public operation delegates to exactly one kernel per shape of work.
//
// Contract:
//   - Kernels never mutate inputs; they always allocate the result.
//   - Length checks happen in the callers (validators.go); kernels assume
//     equal lengths.
//   - Fixed i = 0..n-1 order; no data-dependent reordering.

package matrix

import "github.com/katalvlaran/lvlath/numeric"

// ewZip computes out[i] = f(a[i], b[i]). len(a) == len(b) is assumed.
func ewZip[T, U numeric.Number](a, b []T, f func(x, y T) U) []U {
	out := make([]U, len(a))
	for i := range a {
		out[i] = f(a[i], b[i])
	}

	return out
}

// ewMap computes out[i] = f(a[i]).
func ewMap[T, U numeric.Number](a []T, f func(x T) U) []U {
	out := make([]U, len(a))
	for i := range a {
		out[i] = f(a[i])
	}

	return out
}

// ewDiv computes out[i] = a[i] / b[i], stopping at the first zero divisor.
// No partial result escapes on failure.
func ewDiv[T numeric.Number](a, b []T) ([]T, error) {
	out := make([]T, len(a))
	for i := range a {
		if numeric.IsZero(b[i]) {
			return nil, ErrDivisionByZero
		}
		out[i] = a[i] / b[i]
	}

	return out, nil
}

func add[T numeric.Number](x, y T) T { return x + y }
func sub[T numeric.Number](x, y T) T { return x - y }
func mul[T numeric.Number](x, y T) T { return x * y }

// naiveDot is the plain fold Σ a[i]*b[i] from zero.
func naiveDot[T numeric.Number](a, b []T) T {
	var sum T
	for i := range a {
		sum += T(a[i] * b[i])
	}

	return sum
}

// kahanSum accumulates the n terms produced by term(k) with compensated
// summation: the running compensation c is subtracted from each term before
// it is added, then recomputed from the rounding residual.
// Each term is rounded to T before use; the explicit conversion keeps the
// compiler from fusing multiply-add across the compensation steps.
// For integer kinds c stays zero and the result equals a plain sum.
func kahanSum[T numeric.Number](n int, term func(k int) T) T {
	var sum, c T
	for k := 0; k < n; k++ {
		y := T(term(k)) - c
		t := sum + y
		c = T(t-sum) - y
		sum = t
	}

	return sum
}
