// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlath/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_Constructors(t *testing.T) {
	t.Parallel()

	z, err := matrix.NewVector[int32](3)
	require.NoError(t, err)
	assert.Equal(t, matrix.Vector[int32]{0, 0, 0}, z)

	_, err = matrix.NewVector[float64](-1)
	AssertErrorIs(t, err, matrix.ErrInvalidOperation)

	src := []uint32{1, 2, 3}
	v, err := matrix.VectorFromSlice(3, src)
	require.NoError(t, err)
	src[0] = 99
	assert.Equal(t, uint32(1), v[0], "VectorFromSlice must copy")

	_, err = matrix.VectorFromSlice(4, src)
	RequireDimensionError(t, err, "Vector.FromSlice", "4", "3")

	empty := matrix.VectorOf[float64]()
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.Len())
}

func TestVector_Elementwise(t *testing.T) {
	t.Parallel()

	a := matrix.VectorOf[int64](1, 2, 3)
	b := matrix.VectorOf[int64](10, 20, 30)

	tests := []struct {
		name string
		op   func(x, y matrix.Vector[int64]) (matrix.Vector[int64], error)
		want matrix.Vector[int64]
	}{
		{"Add", matrix.Vector[int64].Add, matrix.Vector[int64]{11, 22, 33}},
		{"Sub", matrix.Vector[int64].Sub, matrix.Vector[int64]{-9, -18, -27}},
		{"Mul", matrix.Vector[int64].Mul, matrix.Vector[int64]{10, 40, 90}},
		{"Div", func(x, y matrix.Vector[int64]) (matrix.Vector[int64], error) { return y.Div(x) },
			matrix.Vector[int64]{10, 10, 10}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op(a, b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	// operands untouched
	assert.Equal(t, matrix.Vector[int64]{1, 2, 3}, a)
}

func TestVector_LengthMismatch(t *testing.T) {
	t.Parallel()

	a := matrix.VectorOf(1.0, 2.0, 3.0)
	b := matrix.VectorOf(1.0, 2.0)

	_, err := a.Add(b)
	RequireDimensionError(t, err, "Vector addition", "3", "2")
	_, err = a.Sub(b)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Mul(b)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Div(b)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Dot(b)
	RequireDimensionError(t, err, "Dot product", "3", "2")
	_, err = a.DotKahan(b)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestVector_Division(t *testing.T) {
	t.Parallel()

	a := matrix.VectorOf[int32](4, 6, 8)
	_, err := a.Div(matrix.VectorOf[int32](2, 0, 2))
	assert.ErrorIs(t, err, matrix.ErrDivisionByZero)

	_, err = a.DivScalar(0)
	assert.ErrorIs(t, err, matrix.ErrDivisionByZero)

	got, err := a.DivScalar(2)
	require.NoError(t, err)
	assert.Equal(t, matrix.Vector[int32]{2, 3, 4}, got)
}

func TestVector_Scalar(t *testing.T) {
	t.Parallel()

	v := matrix.VectorOf[float32](1, 2, 3)
	assert.Equal(t, matrix.Vector[float32]{3, 4, 5}, v.AddScalar(2))
	assert.Equal(t, matrix.Vector[float32]{2, 4, 6}, v.MulScalar(2))
}

func TestVector_Dot(t *testing.T) {
	t.Parallel()

	d, err := matrix.VectorOf[uint64](1, 2, 3).Dot(matrix.VectorOf[uint64](4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, uint64(32), d)

	// cancellation: the exact result is 0
	a := matrix.VectorOf(1e16, 1.0, 1.0, -1e16)
	b := matrix.VectorOf(1.0, 1.0, -1.0, 1.0)
	k, err := a.DotKahan(b)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, k, 1e-9)

	// 1e16+1 rounds back to 1e16 in a plain fold; compensation recovers both ones.
	c := matrix.VectorOf(1e16, 1.0, 1.0, -1e16)
	ones := matrix.VectorOf(1.0, 1.0, 1.0, 1.0)
	naive, err := c.Dot(ones)
	require.NoError(t, err)
	kahan, err := c.DotKahan(ones)
	require.NoError(t, err)
	assert.Equal(t, 0.0, naive)
	assert.Equal(t, 2.0, kahan)
}

func TestVector_MapZip(t *testing.T) {
	t.Parallel()

	v := matrix.VectorOf(1.0, 2.0, 3.0)
	sq := matrix.Map(v, func(x float64) float64 { return x * x })
	assert.Equal(t, matrix.Vector[float64]{1, 4, 9}, sq)

	asInt := matrix.Map(v, func(x float64) int32 { return int32(x) })
	assert.Equal(t, matrix.Vector[int32]{1, 2, 3}, asInt)

	sum, err := matrix.ZipMap(v, matrix.VectorOf(10.0, 20.0, 30.0),
		func(x, y float64) float64 { return x + y })
	require.NoError(t, err)
	assert.Equal(t, matrix.Vector[float64]{11, 22, 33}, sum)

	_, err = matrix.ZipMap(v, matrix.VectorOf(1.0), func(x, y float64) float64 { return x })
	RequireDimensionError(t, err, "Vector.ZipMap", "3", "1")
}

func TestVector_Reductions(t *testing.T) {
	t.Parallel()

	v := matrix.VectorOf[int32](1, -2, 3, 4, 5)
	assert.Equal(t, int32(11), v.Sum())
	mean, err := v.Mean()
	require.NoError(t, err)
	assert.Equal(t, int32(2), mean, "integer division")
	assert.Equal(t, int32(5), v.Max())
	assert.Equal(t, int32(-2), v.Min())
	assert.Equal(t, 4, v.ArgMax())
	assert.Equal(t, 1, v.ArgMin())

	f := matrix.VectorOf(1.0, -2.0, 3.0, 4.0, 5.0)
	fm, err := f.Mean()
	require.NoError(t, err)
	assert.InDelta(t, 2.2, fm, 1e-12)
}

func TestVector_ArgMaxTiesFirst(t *testing.T) {
	t.Parallel()

	v := matrix.VectorOf(3.0, 7.0, 7.0, 1.0)
	assert.Equal(t, 1, v.ArgMax())
	assert.Equal(t, 3, matrix.VectorOf[int64](2, 2, 2, 1, 1).ArgMin())
}

func TestVector_EmptyReductions(t *testing.T) {
	t.Parallel()

	e := matrix.VectorOf[float64]()
	assert.Equal(t, 0.0, e.Sum())
	assert.Equal(t, 0.0, e.Max())
	assert.Equal(t, 0.0, e.Min())
	assert.Equal(t, 0, e.ArgMax())

	_, err := e.Mean()
	AssertErrorIs(t, err, matrix.ErrInvalidOperation)
}

func TestVector_CheckedAccess(t *testing.T) {
	t.Parallel()

	v := matrix.VectorOf(1.0, 2.0, 3.0)
	x, err := v.At(2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, x)

	_, err = v.At(3)
	RequireIndexError(t, err, 3, 3)
	_, err = v.At(-1)
	RequireIndexError(t, err, -1, 3)

	require.NoError(t, v.Set(0, math.Pi))
	assert.Equal(t, math.Pi, v[0])
	RequireIndexError(t, v.Set(5, 1), 5, 3)

	assert.Panics(t, func() { _ = v[len(v)] })
}

func TestVector_CloneEqualIter(t *testing.T) {
	t.Parallel()

	v := matrix.VectorOf[uint32](5, 6, 7)
	c := v.Clone()
	assert.True(t, v.Equal(c))
	c[0] = 0
	assert.False(t, v.Equal(c))
	assert.False(t, v.Equal(v[:2]))

	var idx []int
	var vals []uint32
	for i, x := range v.All() {
		if i == 2 {
			break
		}
		idx = append(idx, i)
		vals = append(vals, x)
	}
	assert.Equal(t, []int{0, 1}, idx)
	assert.Equal(t, []uint32{5, 6}, vals)
}

func TestVector_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[1, -2, 3]", matrix.VectorOf[int32](1, -2, 3).String())
	assert.Equal(t, "[]", matrix.VectorOf[float64]().String())
}
