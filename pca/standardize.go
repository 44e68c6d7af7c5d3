// SPDX-License-Identifier: MIT

// Package pca: column standardization (zero mean, unit variance).
//
// Purpose:
//   - Turn a RawMatrix with missing (NaN) entries into a fully finite matrix
//     whose columns have mean 0 and variance 1.
//   - Make the missing-value and zero-variance policies explicit knobs
//     instead of implicit behavior.

package pca

import (
	"fmt"
	"math"
)

const opStandardize = "Standardize"

// Standardize converts raw into a zero-mean, unit-variance matrix.
//
// Implementation:
//   - Stage 1: validate input; substitute missing entries per MissingPolicy.
//   - Stage 2: one pass for per-column mean, one for population variance.
//   - Stage 3: write (x - μ_j) / σ_j; constant columns (σ_j == 0) follow the
//     ConstantColumnPolicy (all-zero column under EmitZero, ErrDegenerateColumn
//     under FailDegenerate).
//
// Behavior highlights:
//   - Pure: raw is never mutated; the result owns fresh buffers.
//   - Deterministic i→j traversal; identical inputs yield identical output.
//   - σ is the population std (divide by N). The downstream covariance uses
//     the unbiased 1/(N-1) estimator, so its diagonal lands near N/(N-1),
//     not exactly 1. Expected, not a bug.
//
// Errors:
//   - ErrNilMatrix (nil raw or raw.Data).
//   - ErrMissingValue (RejectMissing policy with a NaN entry).
//   - ErrDegenerateColumn (FailDegenerate policy with a constant column).
//
// Complexity: Time O(N*D), Space O(N*D) for the output (+ O(D) statistics).
func Standardize(raw *RawMatrix, opts ...Option) (*Standardized, error) {
	if raw == nil || raw.Data == nil {
		return nil, validatorErrorf(opStandardize, ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	rows, cols := raw.Data.Rows(), raw.Data.Cols()
	src := raw.Data.data

	// Stage 1: substitute missing values into a working copy.
	work := make([]float64, len(src))
	copy(work, src)
	if err := substituteMissing(work, rows, cols, raw.ColIDs, o.missing); err != nil {
		return nil, fmt.Errorf("%s: %w", opStandardize, err)
	}

	// Stage 2: per-column mean, then population variance.
	means := make([]float64, cols)
	stds := make([]float64, cols)
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			means[j] += work[base+j]
		}
	}
	invN := 1.0 / float64(rows)
	for j = 0; j < cols; j++ {
		means[j] *= invN
	}
	var d float64
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			d = work[base+j] - means[j]
			stds[j] += d * d
		}
	}
	for j = 0; j < cols; j++ {
		stds[j] = math.Sqrt(stds[j] * invN)
	}

	// Stage 3: apply (x - μ) / σ with the constant-column policy.
	out := make([]float64, len(work))
	for j = 0; j < cols; j++ {
		if stds[j] == 0 {
			if o.constant == FailDegenerate {
				return nil, fmt.Errorf("%s: column %q: %w", opStandardize, columnLabel(raw.ColIDs, j), ErrDegenerateColumn)
			}
			// EmitZero: out already zero-filled for this column.
			continue
		}
		inv := 1.0 / stds[j]
		for i = 0; i < rows; i++ {
			base = i * cols
			out[base+j] = (work[base+j] - means[j]) * inv
		}
	}

	return &Standardized{
		Data:   &Dense{r: rows, c: cols, data: out},
		RowIDs: cloneLabels(raw.RowIDs),
		ColIDs: cloneLabels(raw.ColIDs),
		Means:  means,
		Stds:   stds,
	}, nil
}

// substituteMissing rewrites NaN entries of work in place per the policy.
// Assumes work is a private copy; never touches caller data.
func substituteMissing(work []float64, rows, cols int, colIDs []string, policy MissingPolicy) error {
	var i, j, base int
	switch policy {
	case RejectMissing:
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				if math.IsNaN(work[base+j]) {
					return fmt.Errorf("row %d, column %q: %w", i, columnLabel(colIDs, j), ErrMissingValue)
				}
			}
		}

	case FillZero:
		for idx, v := range work {
			if math.IsNaN(v) {
				work[idx] = 0
			}
		}

	case FillColumnMean:
		// Column means over present values only; a fully missing column gets 0.
		sums := make([]float64, cols)
		counts := make([]int, cols)
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				if !math.IsNaN(work[base+j]) {
					sums[j] += work[base+j]
					counts[j]++
				}
			}
		}
		for j = 0; j < cols; j++ {
			if counts[j] > 0 {
				sums[j] /= float64(counts[j])
			}
		}
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				if math.IsNaN(work[base+j]) {
					work[base+j] = sums[j]
				}
			}
		}
	}

	return nil
}

// columnLabel resolves a feature label with a positional fallback, so error
// messages stay meaningful even for unlabeled matrices.
func columnLabel(colIDs []string, j int) string {
	if j < len(colIDs) {
		return colIDs[j]
	}

	return fmt.Sprintf("col%d", j)
}

// cloneLabels copies a label slice so results never alias caller memory.
func cloneLabels(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)

	return out
}
