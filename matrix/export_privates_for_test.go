// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Kernels
//
// Purpose:
//   - Expose UNEXPORTED micro-kernels to matrix_test ONLY, without widening
//     the production API. The file name ends in _test.go, so it is compiled
//     into the package only by `go test`.
//
// Provided Surface:
//   - *_TestOnly wrappers: thin pass-through to private kernels, instantiated
//     for the kinds the tests exercise.

// KahanSum_TestOnly runs the compensated accumulator over vals.
func KahanSum_TestOnly(vals []float64) float64 {
	return kahanSum(len(vals), func(k int) float64 { return vals[k] })
}

// KahanSumFloat32_TestOnly is KahanSum_TestOnly for float32.
func KahanSumFloat32_TestOnly(vals []float32) float32 {
	return kahanSum(len(vals), func(k int) float32 { return vals[k] })
}

// EwDivInt64_TestOnly exposes ewDiv for int64.
var EwDivInt64_TestOnly = ewDiv[int64]

// NaiveDotFloat64_TestOnly exposes naiveDot for float64.
var NaiveDotFloat64_TestOnly = naiveDot[float64]

// Eliminate_TestOnly exposes the determinant elimination on a working copy.
var Eliminate_TestOnly = eliminate[float64]

// MeanOfUint32_TestOnly exposes meanOf for uint32.
var MeanOfUint32_TestOnly = meanOf[uint32]
