// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlath/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) *matrix.Matrix[float64] { return MustZeros[float64](t, r, c) }

	tests := []struct {
		name    string
		a, b    *matrix.Matrix[float64]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrInvalidOperation},
		{"first nil", nil, zeros(2, 2), matrix.ErrInvalidOperation},
		{"second nil", zeros(2, 2), nil, matrix.ErrInvalidOperation},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape("op", tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateSquare[int32]("op", nil), matrix.ErrInvalidOperation)
	require.NoError(t, matrix.ValidateSquare("op", MustZeros[int32](t, 3, 3)))
	RequireDimensionError(t, matrix.ValidateSquare("op", MustZeros[int32](t, 3, 1)),
		"op", "square matrix", "3x1 matrix")
}

// TestValidateMulCompatible checks the inner-dimension rule and its report.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	a := MustZeros[uint64](t, 4, 2)
	require.NoError(t, matrix.ValidateMulCompatible(a, MustZeros[uint64](t, 2, 5)))
	RequireDimensionError(t, matrix.ValidateMulCompatible(a, MustZeros[uint64](t, 3, 5)),
		"Matrix multiplication", "2x5", "3x5")
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, a), matrix.ErrInvalidOperation)
}

// TestValidateVecLen checks the vector length guard.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	v := matrix.VectorOf(1.0, 2.0)
	require.NoError(t, matrix.ValidateVecLen("op", v, 2))
	RequireDimensionError(t, matrix.ValidateVecLen("op", v, 3), "op", "3", "2")
}
