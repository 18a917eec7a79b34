// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the kernels.
//   • Keep all data finite so ordering-based reductions stay meaningful.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlath/matrix"
	"github.com/katalvlaran/lvlath/numeric"
	"github.com/stretchr/testify/require"
)

// MustMatrix builds a matrix from a literal grid or fails the test.
func MustMatrix[T numeric.Number](t testing.TB, grid [][]T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(grid)
	require.NoError(t, err, "FromRows(%v)", grid)

	return m
}

// MustZeros allocates an r×c zero matrix or fails the test.
func MustZeros[T numeric.Number](t testing.TB, r, c int) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.NewMatrix[T](r, c)
	require.NoError(t, err, "NewMatrix(%d,%d)", r, c)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T numeric.Number](t testing.TB, m *matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RandFilled returns an r×c float64 matrix with entries in [-1, 1).
func RandFilled(t testing.TB, r, c int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	m := MustZeros[float64](t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}

	return m
}

// Grid copies m back into a literal grid for whole-matrix comparison.
func Grid[T numeric.Number](m *matrix.Matrix[T]) [][]T {
	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = append([]T(nil), m.Row(i)...)
	}

	return out
}

// AssertErrorIs fails unless err wraps target.
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, target)
}

// RequireDimensionError checks the typed diagnostic fields of err.
func RequireDimensionError(t testing.TB, err error, op, expected, found string) {
	t.Helper()
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	var de *matrix.DimensionError
	require.ErrorAs(t, err, &de)
	require.Equal(t, op, de.Operation)
	require.Equal(t, expected, de.Expected)
	require.Equal(t, found, de.Found)
}

// RequireIndexError checks an *IndexError's index and axis size.
func RequireIndexError(t testing.TB, err error, index, size int) {
	t.Helper()
	AssertErrorIs(t, err, matrix.ErrOutOfBounds)
	var ie *matrix.IndexError
	require.ErrorAs(t, err, &ie)
	require.Equal(t, index, ie.Index)
	require.Equal(t, size, ie.Size)
}
