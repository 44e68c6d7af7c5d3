// SPDX-License-Identifier: MIT

// Package pca: domain types flowing through the pipeline. This file contains
// ONLY domain-facing value objects; errors and options live in dedicated
// files (errors.go, options.go) per the package conventions.
//
// Every type here is an immutable value object produced by a pure transform
// of its inputs: stages never mutate what they were given, so no
// synchronization is needed anywhere in the package.
package pca

import "fmt"

// RawMatrix is the pipeline input: N observations (rows) × D features
// (columns). Missing entries are marked with NaN. Row and column identities
// are carried alongside the numeric data so that downstream consumers can
// interpret rows/columns after every transform, even though the numeric
// stages only need positions.
type RawMatrix struct {
	Data   *Dense   // N×D entries; NaN marks a missing value
	RowIDs []string // observation identifiers, len == N
	ColIDs []string // feature identifiers, len == D
}

// NewRawMatrix wraps data with identity labels. Either label slice may be
// nil, in which case positional labels ("row3", "col7") are synthesized so
// identity is always present downstream.
//
// Errors:
//   - ErrNilMatrix when data is nil.
//   - ErrDimensionMismatch when a non-nil label slice has the wrong length.
func NewRawMatrix(data *Dense, rowIDs, colIDs []string) (*RawMatrix, error) {
	if data == nil {
		return nil, ErrNilMatrix
	}
	if rowIDs != nil && len(rowIDs) != data.Rows() {
		return nil, fmt.Errorf("NewRawMatrix: row labels: %w", ErrDimensionMismatch)
	}
	if colIDs != nil && len(colIDs) != data.Cols() {
		return nil, fmt.Errorf("NewRawMatrix: column labels: %w", ErrDimensionMismatch)
	}
	if rowIDs == nil {
		rowIDs = positionalLabels("row", data.Rows())
	}
	if colIDs == nil {
		colIDs = positionalLabels("col", data.Cols())
	}

	return &RawMatrix{Data: data, RowIDs: rowIDs, ColIDs: colIDs}, nil
}

// positionalLabels synthesizes deterministic fallback identifiers.
func positionalLabels(prefix string, n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = fmt.Sprintf("%s%d", prefix, i)
	}

	return out
}

// Standardized is the zero-mean, unit-variance matrix plus the per-column
// statistics that produced it. Means/Stds are the substitution-adjusted
// population statistics (divide by N), so callers can un-standardize or
// standardize new observations consistently.
//
// Invariant: every column of Data has mean ≈ 0 and variance ≈ 1, except
// columns that were constant in the input, whose fate is decided by the
// ConstantColumnPolicy (all-zero column under EmitZero).
type Standardized struct {
	Data   *Dense    // N×D, fully finite
	RowIDs []string  // carried from the RawMatrix
	ColIDs []string  // carried from the RawMatrix
	Means  []float64 // per-column mean after missing-value substitution
	Stds   []float64 // per-column population std; 0 marks a constant column
}

// EigenPair couples one eigenvalue of the covariance matrix with its
// unit-length D-dimensional eigenvector.
type EigenPair struct {
	Value  float64   // eigenvalue (variance along Vector); >= 0 up to noise
	Vector []float64 // unit-length eigenvector, len == D
}

// RankedComponents is the ordered spectrum: eigenpairs sorted by eigenvalue
// descending (stable under the tie tolerance), with parallel explained
// variance ratios and their running cumulative sum.
//
// Invariants (verified by tests):
//   - Pairs[i].Value >= Pairs[i+1].Value - tieTol
//   - Ratios[i] == Pairs[i].Value / TotalVariance
//   - Cumulative is non-decreasing and Cumulative[D-1] ≈ 1.
type RankedComponents struct {
	Pairs         []EigenPair // descending by eigenvalue
	Ratios        []float64   // explained-variance ratio per component
	Cumulative    []float64   // running sum of Ratios
	TotalVariance float64     // Σ eigenvalues == trace of the covariance
}

// Components returns D, the number of ranked components.
func (rc *RankedComponents) Components() int { return len(rc.Pairs) }

// ProjectionBasis is the D×K matrix whose columns are the first K ranked
// eigenvectors. It is derived on demand from RankedComponents and a
// SelectionPolicy and never mutated; reselecting K produces a new basis.
type ProjectionBasis struct {
	K       int    // number of selected components, 1 <= K <= D
	Vectors *Dense // D×K, column k is the k-th ranked eigenvector
}

// ReducedMatrix is the N×K projection of the standardized data onto a
// ProjectionBasis. Purely a function of (Standardized, ProjectionBasis);
// owned by the caller.
type ReducedMatrix struct {
	Data         *Dense   // N×K scores
	RowIDs       []string // carried from the standardized matrix
	ComponentIDs []string // "PC1".."PCK" for interpretability
}
