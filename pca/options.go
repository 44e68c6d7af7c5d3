// SPDX-License-Identifier: MIT

// Package pca: functional configuration for the pipeline and its numeric
// policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error); data-dependent failures surface as sentinel errors.
//   - Options fields are unexported; public APIs consume ...Option.
package pca

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used by the symmetry check
	// and, relative to the largest eigenvalue magnitude, by the ranking
	// tie-break rule.
	DefaultEpsilon = 1e-9

	// DefaultSpectrumFloor is the absolute threshold under which the total
	// variance is treated as zero (ErrDegenerateSpectrum).
	DefaultSpectrumFloor = 1e-12

	// DefaultMissingPolicy replaces missing entries with 0 before computing
	// column statistics, matching the common fill-with-zero convention.
	DefaultMissingPolicy = FillZero

	// DefaultConstantColumnPolicy emits an all-zero standardized column for a
	// zero-variance input column, keeping the matrix shape intact.
	DefaultConstantColumnPolicy = EmitZero
)

// Jacobi backend defaults; see NewJacobiDecomposer.
const (
	// DefaultJacobiTolerance is the max-off-diagonal threshold at which the
	// Jacobi sweep is considered converged.
	DefaultJacobiTolerance = 1e-10

	// DefaultJacobiMaxIterations caps the number of Jacobi rotations; for
	// D <= 128 convergence is typically reached far earlier.
	DefaultJacobiMaxIterations = 10000
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid    = "pca: WithEpsilon: eps must be finite, non-negative"
	panicDecomposerNil     = "pca: WithDecomposer: decomposer must be non-nil"
	panicMissingUnknown    = "pca: WithMissingPolicy: unknown policy"
	panicConstantUnknown   = "pca: WithConstantColumnPolicy: unknown policy"
	panicJacobiTolInvalid  = "pca: NewJacobiDecomposer: tol must be finite, positive"
	panicJacobiIterInvalid = "pca: NewJacobiDecomposer: maxIter must be positive"
)

// ---------- Policies ----------

// MissingPolicy decides how NaN entries of a RawMatrix are treated before
// column statistics are computed.
type MissingPolicy int

const (
	// FillZero replaces every missing entry with 0 (reference behavior).
	FillZero MissingPolicy = iota

	// FillColumnMean replaces a missing entry with the mean of the present
	// values in its column. A column with no present values degenerates to a
	// constant column and is handled by the ConstantColumnPolicy.
	FillColumnMean

	// RejectMissing fails with ErrMissingValue on the first missing entry.
	RejectMissing
)

// ConstantColumnPolicy decides what happens to a zero-variance column, where
// the standardization division is undefined.
type ConstantColumnPolicy int

const (
	// EmitZero writes 0 for the entire standardized column.
	EmitZero ConstantColumnPolicy = iota

	// FailDegenerate aborts standardization with ErrDegenerateColumn.
	FailDegenerate
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	eps        float64              // >= 0; DefaultEpsilon
	missing    MissingPolicy        // DefaultMissingPolicy
	constant   ConstantColumnPolicy // DefaultConstantColumnPolicy
	decomposer Decomposer           // nil ⇒ SymDecomposer{} (gonum backend)
}

// WithEpsilon sets the numeric tolerance used by the symmetry check and the
// relative ranking tie-break. Panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMissingPolicy selects how missing (NaN) raw entries are substituted.
func WithMissingPolicy(p MissingPolicy) Option {
	if p != FillZero && p != FillColumnMean && p != RejectMissing {
		panic(panicMissingUnknown)
	}

	return func(o *Options) { o.missing = p }
}

// WithConstantColumnPolicy selects the zero-variance column behavior.
func WithConstantColumnPolicy(p ConstantColumnPolicy) Option {
	if p != EmitZero && p != FailDegenerate {
		panic(panicConstantUnknown)
	}

	return func(o *Options) { o.constant = p }
}

// WithDecomposer swaps the eigendecomposition backend. The default is
// SymDecomposer (gonum); NewJacobiDecomposer provides a dependency-free
// alternative with an explicit iteration budget.
func WithDecomposer(d Decomposer) Option {
	if d == nil {
		panic(panicDecomposerNil)
	}

	return func(o *Options) { o.decomposer = d }
}

// gatherOptions resolves defaults, applies setters in order, and returns the
// effective configuration. Internal single source of truth for zero-value
// behavior.
func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:        DefaultEpsilon,
		missing:    DefaultMissingPolicy,
		constant:   DefaultConstantColumnPolicy,
		decomposer: nil, // resolved lazily in Fit to avoid an import cycle of concerns
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
