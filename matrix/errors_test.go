// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlath/matrix"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	de := &matrix.DimensionError{Expected: "3x2", Found: "2x2", Operation: "Matrix multiplication"}
	assert.Equal(t,
		"matrix: dimensions mismatched for Matrix multiplication: expected 3x2, found 2x2",
		de.Error())
	assert.True(t, errors.Is(de, matrix.ErrDimensionMismatch))

	ie := &matrix.IndexError{Index: 4, Size: 3}
	assert.Equal(t, "matrix: index out of bounds: tried to access 4 in a structure of size 3", ie.Error())
	assert.True(t, errors.Is(ie, matrix.ErrOutOfBounds))
	assert.False(t, errors.Is(ie, matrix.ErrDimensionMismatch))
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	err := matrix.InvalidOperationf("mean of %d items", 0)
	assert.ErrorIs(t, err, matrix.ErrInvalidOperation)
	assert.Equal(t, "matrix: invalid operation: mean of 0 items", err.Error())

	err = matrix.Otherf("missing %q", "a")
	assert.ErrorIs(t, err, matrix.ErrOther)
	assert.NotErrorIs(t, err, matrix.ErrInvalidOperation)
}
