// SPDX-License-Identifier: MIT

// Package numeric declares the closed set of element types accepted by the
// lvlath containers and the small capability set every algorithm relies on.
//
// Purpose:
//   - One constraint (Number) instead of per-type interfaces: the set of
//     element types is closed and checked at compile time.
//   - Identity elements, zero test, absolute value and a checked conversion
//     from float64 (the only way counts and literals enter generic code).
//
// Notes:
//   - Number deliberately lists exact types (no ~ terms) so type switches on
//     any(T) are exhaustive.
//   - Ordering (Less) is the plain < operator. Reductions over NaN-bearing
//     floats are not guaranteed to be meaningful.
package numeric

import "math"

// Number is the closed set of element types for Vector, Matrix and Tensor.
type Number interface {
	float32 | float64 | int32 | int64 | uint32 | uint64
}

// Kind names, returned by Kind and accepted by the document codec.
const (
	KindFloat32 = "float32"
	KindFloat64 = "float64"
	KindInt32   = "int32"
	KindInt64   = "int64"
	KindUint32  = "uint32"
	KindUint64  = "uint64"
)

// float bounds of the integer kinds; 2^63 and 2^64 are exact in float64.
const (
	twoPow63 = 9223372036854775808.0
	twoPow64 = 18446744073709551616.0
)

// Zero returns the additive identity of T.
func Zero[T Number]() T { return 0 }

// One returns the multiplicative identity of T.
func One[T Number]() T { return 1 }

// IsZero reports whether v equals the additive identity (-0.0 included).
func IsZero[T Number](v T) bool { return v == 0 }

// Abs returns |v|. Unsigned values are returned unchanged; for signed
// integers the most negative value wraps onto itself like native negation.
func Abs[T Number](v T) T {
	switch x := any(v).(type) {
	case float32:
		return T(float32(math.Abs(float64(x))))
	case float64:
		return T(math.Abs(x))
	}
	if v < 0 {
		return -v
	}

	return v
}

// Less is the ordering used by Max/Min/ArgMax.
func Less[T Number](a, b T) bool { return a < b }

// FromFloat64 converts f into T. It reports false when f is NaN, ±Inf or
// outside the representable range of T. Integer targets truncate toward zero.
func FromFloat64[T Number](f float64) (T, bool) {
	var zero T
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return zero, false
	}

	t := math.Trunc(f)
	switch any(zero).(type) {
	case float32:
		if math.Abs(f) > math.MaxFloat32 {
			return zero, false
		}

		return T(f), true
	case float64:
		return T(f), true
	case int32:
		if t < math.MinInt32 || t > math.MaxInt32 {
			return zero, false
		}
	case int64:
		if t < -twoPow63 || t >= twoPow63 {
			return zero, false
		}
	case uint32:
		if t < 0 || t > math.MaxUint32 {
			return zero, false
		}
	case uint64:
		if t < 0 || t >= twoPow64 {
			return zero, false
		}
	}

	return T(t), true
}

// IsFloat reports whether T is a floating-point kind.
func IsFloat[T Number]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	}

	return false
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T Number]() bool {
	var zero T
	switch any(zero).(type) {
	case uint32, uint64:
		return false
	}

	return true
}

// Kind returns the stable name of T (one of the Kind* constants).
func Kind[T Number]() string {
	var zero T
	switch any(zero).(type) {
	case float32:
		return KindFloat32
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	}

	return KindFloat64
}

// Kinds lists every supported kind name in declaration order.
func Kinds() []string {
	return []string{KindFloat32, KindFloat64, KindInt32, KindInt64, KindUint32, KindUint64}
}
