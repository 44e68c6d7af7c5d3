// SPDX-License-Identifier: MIT
// Package pca: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the pca
// package. All stages MUST return these sentinels and tests MUST check them
// via errors.Is. No stage should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package pca

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "pca: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the stage facade; callers will still use errors.Is to match.

var (
	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("pca: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0)
	// or when a flat data slice does not match rows*cols.
	ErrBadShape = errors.New("pca: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("pca: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., a basis whose row count differs from the feature count.
	ErrDimensionMismatch = errors.New("pca: dimension mismatch")

	// ErrNaNInf signals a ±Inf (or an unexpected NaN) value where finite
	// values are required. NaN is legal only as the missing-value marker in a
	// RawMatrix, never past standardization.
	ErrNaNInf = errors.New("pca: NaN or Inf encountered")

	// ErrMissingValue is returned by Standardize under RejectMissing when the
	// raw matrix contains at least one missing (NaN) entry.
	ErrMissingValue = errors.New("pca: missing value rejected by policy")

	// ErrDegenerateColumn signals a zero-variance feature column during
	// standardization under the FailDegenerate constant-column policy.
	ErrDegenerateColumn = errors.New("pca: zero-variance column")

	// ErrInsufficientSamples is returned when fewer than two observations are
	// supplied; the unbiased covariance estimator needs N >= 2.
	ErrInsufficientSamples = errors.New("pca: need at least two observations")

	// ErrNotSymmetric signals that the covariance matrix violated symmetry
	// within the configured epsilon, indicating an upstream data bug.
	ErrNotSymmetric = errors.New("pca: matrix is not symmetric within eps")

	// ErrDidNotConverge indicates that the eigensolver exhausted its iteration
	// budget (or the backend factorization failed) before convergence.
	ErrDidNotConverge = errors.New("pca: eigendecomposition did not converge")

	// ErrDegenerateSpectrum signals that the total variance (sum of all
	// eigenvalues) is approximately zero, so variance ratios are undefined.
	ErrDegenerateSpectrum = errors.New("pca: total variance is zero")

	// ErrInvalidK rejects a FixedCount selection with k < 1 or k > D.
	ErrInvalidK = errors.New("pca: component count out of range")

	// ErrInvalidThreshold rejects a CumulativeThreshold selection with a
	// threshold outside (0, 1].
	ErrInvalidThreshold = errors.New("pca: cumulative threshold out of range")
)
