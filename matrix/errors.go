// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and typed diagnostics.
// This file defines the package-level sentinels used across vectors, matrices
// and tensors. All fallible operations MUST return (or wrap) one of these and
// tests MUST check them via errors.Is / errors.As. No operation panics on a
// user-triggered precondition; panics are reserved for the unchecked
// accessors (v[i], Row, Col, Depth), whose contract is "index already valid".

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Typed errors
// (DimensionError, IndexError) carry the diagnostic strings and unwrap to
// their sentinel, so callers may match on kind only:
//
//	errors.Is(err, ErrDimensionMismatch)
//
// or inspect the details:
//
//	var de *DimensionError
//	errors.As(err, &de)

var (
	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add with different row counts, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfBounds indicates a row, column, element or depth index outside
	// the valid range of a checked accessor.
	ErrOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDivisionByZero is returned by elementwise and scalar division when a
	// divisor is zero. Division never returns a partial result.
	ErrDivisionByZero = errors.New("matrix: attempted to divide by 0")

	// ErrInvalidOperation marks an operation that is well-typed but cannot be
	// carried out (negative sizes, mean of an empty vector, a determinant not
	// representable in the element type).
	ErrInvalidOperation = errors.New("matrix: invalid operation")

	// ErrOther is the catch-all kind for failures outside the algebra itself
	// (e.g. malformed documents in matrixio).
	ErrOther = errors.New("matrix: unexpected error")
)

// DimensionError describes a shape mismatch. It unwraps to ErrDimensionMismatch.
type DimensionError struct {
	Expected  string // expected shape, e.g. "3x2" or "square matrix"
	Found     string // observed shape
	Operation string // human-readable operation name, e.g. "Matrix addition"
}

// Error implements error.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("matrix: dimensions mismatched for %s: expected %s, found %s",
		e.Operation, e.Expected, e.Found)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// IndexError describes an out-of-range access. It unwraps to ErrOutOfBounds.
type IndexError struct {
	Index int // attempted index
	Size  int // size of the indexed axis
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("matrix: index out of bounds: tried to access %d in a structure of size %d",
		e.Index, e.Size)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *IndexError) Unwrap() error { return ErrOutOfBounds }

// dimensionErr builds a *DimensionError; shapes are pre-formatted by callers.
func dimensionErr(op, expected, found string) error {
	return &DimensionError{Expected: expected, Found: found, Operation: op}
}

// indexErr builds an *IndexError.
func indexErr(index, size int) error {
	return &IndexError{Index: index, Size: size}
}

// InvalidOperationf returns an error wrapping ErrInvalidOperation with a message.
func InvalidOperationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOperation, fmt.Sprintf(format, args...))
}

// Otherf returns an error wrapping ErrOther with a message.
func Otherf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrOther, fmt.Sprintf(format, args...))
}

// shapeString formats a rows×cols shape the way every DimensionError does.
func shapeString(rows, cols int) string {
	return fmt.Sprintf("%dx%d", rows, cols)
}
