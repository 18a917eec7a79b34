// SPDX-License-Identifier: MIT
// Package matrix - rank-3 container.
//
// Tensor[T] is an ordered stack of depth slices, each a rows×cols Matrix[T].
// Only construction, indexed access and scalar multiplication are offered;
// arbitrary-rank algebra is out of scope.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlath/numeric"
)

const opFromMatrices = "Tensor.FromMatrices"

// Tensor is a depths×rows×cols stack of matrices with uniform shape.
type Tensor[T numeric.Number] struct {
	slices     []*Matrix[T]
	rows, cols int
}

// NewTensor allocates depths zero-filled rows×cols slices.
// Errors: ErrInvalidOperation on a negative dimension.
func NewTensor[T numeric.Number](depths, rows, cols int) (*Tensor[T], error) {
	if err := validateSize("depths", depths); err != nil {
		return nil, err
	}
	if err := validateSize("rows", rows); err != nil {
		return nil, err
	}
	if err := validateSize("cols", cols); err != nil {
		return nil, err
	}

	t := &Tensor[T]{slices: make([]*Matrix[T], depths), rows: rows, cols: cols}
	for d := range t.slices {
		t.slices[d] = newMatrix[T](rows, cols)
	}

	return t, nil
}

// FromMatrices stacks clones of the given slices. The first
// slice fixes rows×cols; an empty call yields a 0×0×0 tensor.
//
// Errors:
//   - ErrInvalidOperation for a nil slice.
//   - *DimensionError naming the first slice whose shape differs.
func FromMatrices[T numeric.Number](slices ...*Matrix[T]) (*Tensor[T], error) {
	t := &Tensor[T]{slices: make([]*Matrix[T], len(slices))}
	for d, m := range slices {
		if err := ValidateNotNil(m); err != nil {
			return nil, err
		}
		if d == 0 {
			t.rows, t.cols = m.r, m.c
		} else if m.r != t.rows || m.c != t.cols {
			return nil, dimensionErr(opFromMatrices,
				shapeString(t.rows, t.cols),
				fmt.Sprintf("%s at depth %d", shapeString(m.r, m.c), d))
		}
		t.slices[d] = m.Clone()
	}

	return t, nil
}

// Shape returns (depths, rows, cols).
func (t *Tensor[T]) Shape() (int, int, int) { return len(t.slices), t.rows, t.cols }

// At returns the slice at depth d; it aliases the tensor storage.
// Errors: *IndexError{d, depths}.
func (t *Tensor[T]) At(d int) (*Matrix[T], error) {
	if err := validateIndex(d, len(t.slices)); err != nil {
		return nil, err
	}

	return t.slices[d], nil
}

// Set replaces the slice at depth d with a copy of m.
// Errors: *IndexError first, then ErrInvalidOperation / *DimensionError for m.
func (t *Tensor[T]) Set(d int, m *Matrix[T]) error {
	if err := validateIndex(d, len(t.slices)); err != nil {
		return err
	}
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != t.rows || m.c != t.cols {
		return dimensionErr("Tensor.Set", shapeString(t.rows, t.cols), shapeString(m.r, m.c))
	}
	t.slices[d] = m.Clone()

	return nil
}

// Depth is the unchecked accessor; it panics if d is out of range.
func (t *Tensor[T]) Depth(d int) *Matrix[T] { return t.slices[d] }

// MulScalar returns a new tensor with every element multiplied by s.
func (t *Tensor[T]) MulScalar(s T) *Tensor[T] {
	out := &Tensor[T]{slices: make([]*Matrix[T], len(t.slices)), rows: t.rows, cols: t.cols}
	for d, m := range t.slices {
		out.slices[d] = m.MulScalar(s)
	}

	return out
}

// Clone returns a deep copy.
func (t *Tensor[T]) Clone() *Tensor[T] {
	out := &Tensor[T]{slices: make([]*Matrix[T], len(t.slices)), rows: t.rows, cols: t.cols}
	for d, m := range t.slices {
		out.slices[d] = m.Clone()
	}

	return out
}

// Equal reports whether both tensors share shape and elements.
func (t *Tensor[T]) Equal(o *Tensor[T]) bool {
	if len(t.slices) != len(o.slices) || t.rows != o.rows || t.cols != o.cols {
		return false
	}
	for d := range t.slices {
		if !t.slices[d].Equal(o.slices[d]) {
			return false
		}
	}

	return true
}
