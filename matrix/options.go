// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// multiplication and determinant kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Summation policy only affects Mul and Vector.DotKahan. Vector.Dot is
//     always a plain fold.
//   - The pivot tolerance defaults to 0, i.e. a determinant short-circuits
//     to zero only on an exactly-zero pivot.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultKahan selects compensated summation for every output cell of Mul.
	DefaultKahan = true

	// DefaultPivotTolerance is the |pivot| threshold at or below which Det
	// treats the matrix as singular.
	DefaultPivotTolerance = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	kahan    bool    // DefaultKahan
	pivotTol float64 // >= 0; DefaultPivotTolerance
}

// WithKahanSummation selects compensated summation (the default).
func WithKahanSummation() Option {
	return func(o *Options) { o.kahan = true }
}

// WithNaiveSummation selects a plain running sum in Mul.
// Useful as a baseline when measuring the accuracy gain of the default.
func WithNaiveSummation() Option {
	return func(o *Options) { o.kahan = false }
}

// WithPivotTolerance sets the singularity threshold used by Det.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0 (panic otherwise).
//   - Stage 2: return a setter that writes tol into Options.
//
// Notes:
//   - With tol > 0, any pivot with |pivot| ≤ tol makes Det return zero.
//   - Integer matrices are eliminated in float64, so tol applies to them too.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// NewOptions resolves option setters against documented defaults.
// Last writer wins.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Kahan reports whether compensated summation is selected.
func (o Options) Kahan() bool { return o.kahan }

// PivotTolerance returns the effective singularity threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		kahan:    DefaultKahan,
		pivotTol: DefaultPivotTolerance,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Nil setters are skipped so callers can pass conditional options.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
