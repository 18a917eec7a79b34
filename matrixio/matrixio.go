// SPDX-License-Identifier: MIT

// Package matrixio reads and writes documents of named vectors, matrices and
// tensors.
//
// Format (YAML; JSON documents are valid YAML and decode the same way):
//
//	dtype: int32
//	matrices:
//	  a: [[1, 2, 3], [4, 5, 6]]
//	vectors:
//	  v: [1, -2, 3]
//	tensors:
//	  t: [[[1, 2], [3, 4]], [[5, 6], [7, 8]]]
//
// dtype names the element kind the document was written for (float64 when
// omitted). The typed accessors Matrix, Vector and Tensor convert the raw
// values into any requested kind and fail with matrix.ErrInvalidOperation
// when a value does not fit. Values are carried as float64, so integers
// beyond 2^53 lose precision.
package matrixio

import (
	"errors"
	"io"
	"math"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlath/matrix"
	"github.com/katalvlaran/lvlath/numeric"
)

// Document is the decoded form of a matrixio file.
type Document struct {
	DType    string                   `yaml:"dtype,omitempty"`
	Matrices map[string][][]float64   `yaml:"matrices,omitempty"`
	Vectors  map[string][]float64     `yaml:"vectors,omitempty"`
	Tensors  map[string][][][]float64 `yaml:"tensors,omitempty"`
}

// Decode reads one document from r.
//
// Errors:
//   - matrix.ErrOther for empty input, malformed YAML or an unknown dtype.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, matrix.Otherf("empty document")
		}

		return nil, matrix.Otherf("decode: %v", err)
	}
	if doc.DType == "" {
		doc.DType = numeric.KindFloat64
	}
	if !slices.Contains(numeric.Kinds(), doc.DType) {
		return nil, matrix.Otherf("unknown dtype %q", doc.DType)
	}

	return &doc, nil
}

// Names returns the sorted matrix names in the document.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.Matrices))
	for name := range d.Matrices {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Matrix returns the named matrix converted to T.
//
// Errors:
//   - matrix.ErrOther if the name is absent.
//   - *matrix.DimensionError if the rows are ragged.
//   - matrix.ErrInvalidOperation for a value not representable in T.
func Matrix[T numeric.Number](d *Document, name string) (*matrix.Matrix[T], error) {
	grid, ok := d.Matrices[name]
	if !ok {
		return nil, matrix.Otherf("no matrix named %q", name)
	}
	rows := make([]matrix.Vector[T], len(grid))
	for i, raw := range grid {
		v, err := convert[T](raw)
		if err != nil {
			return nil, err
		}
		rows[i] = v
	}
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}

	return matrix.FromVectors(cols, rows...)
}

// Vector returns the named vector converted to T.
func Vector[T numeric.Number](d *Document, name string) (matrix.Vector[T], error) {
	raw, ok := d.Vectors[name]
	if !ok {
		return nil, matrix.Otherf("no vector named %q", name)
	}

	return convert[T](raw)
}

// Tensor returns the named tensor converted to T; every depth slice must
// share one shape.
func Tensor[T numeric.Number](d *Document, name string) (*matrix.Tensor[T], error) {
	raw, ok := d.Tensors[name]
	if !ok {
		return nil, matrix.Otherf("no tensor named %q", name)
	}
	depth := make([]*matrix.Matrix[T], len(raw))
	for k, grid := range raw {
		sub := &Document{Matrices: map[string][][]float64{name: grid}}
		m, err := Matrix[T](sub, name)
		if err != nil {
			return nil, err
		}
		depth[k] = m
	}

	return matrix.FromMatrices(depth...)
}

// convert narrows raw float64 values to T. Integer kinds reject fractions.
func convert[T numeric.Number](raw []float64) (matrix.Vector[T], error) {
	out := make(matrix.Vector[T], len(raw))
	integral := !numeric.IsFloat[T]()
	for i, f := range raw {
		x, ok := numeric.FromFloat64[T](f)
		if !ok || (integral && f != math.Trunc(f)) {
			return nil, matrix.InvalidOperationf("value %g not representable as %s", f, numeric.Kind[T]())
		}
		out[i] = x
	}

	return out, nil
}

// EncodeMatrix writes a single-matrix document whose dtype is the kind of T.
func EncodeMatrix[T numeric.Number](w io.Writer, name string, m *matrix.Matrix[T]) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	grid := make([][]float64, m.Rows())
	for i := range grid {
		grid[i] = matrix.Map(matrix.Vector[T](m.Row(i)), func(x T) float64 { return float64(x) })
	}
	doc := Document{
		DType:    numeric.Kind[T](),
		Matrices: map[string][][]float64{name: grid},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return matrix.Otherf("encode: %v", err)
	}

	return enc.Close()
}
