// SPDX-License-Identifier: MIT

// Package pca: sample covariance of the standardized columns.

package pca

import "fmt"

const opCovariance = "Covariance"

// Covariance computes the D×D unbiased feature-covariance matrix
// cov[j][k] = Σ_i std[i][j]*std[i][k] / (N-1) of an already standardized
// matrix (columns are centered, so no further mean subtraction happens here).
//
// Implementation:
//   - Stage 1: validate std (non-nil, finite, N >= 2).
//   - Stage 2: accumulate the upper triangle with flat row-major loops
//     (i→j→k), then mirror into the lower triangle.
//
// Behavior highlights:
//   - Symmetric by construction: cov[j][k] and cov[k][j] are the same write.
//   - Deterministic accumulation order; identical inputs, identical output.
//   - Diagonal entries are each column's unbiased variance (≈ N/(N-1) for a
//     population-standardized column; exactly 0 for an EmitZero column).
//
// Errors:
//   - ErrNilMatrix (nil input).
//   - ErrInsufficientSamples (N < 2).
//   - ErrNaNInf (non-finite entries; standardization must run first).
//
// Complexity: Time O(N*D²), Space O(D²).
func Covariance(std *Standardized) (*Dense, error) {
	if std == nil {
		return nil, validatorErrorf(opCovariance, ErrNilMatrix)
	}
	if err := validateNotNil(std.Data); err != nil {
		return nil, fmt.Errorf("%s: %w", opCovariance, err)
	}
	rows, cols := std.Data.Rows(), std.Data.Cols()
	if rows < 2 {
		return nil, validatorErrorf(opCovariance, ErrInsufficientSamples)
	}
	if err := validateFinite(std.Data); err != nil {
		return nil, fmt.Errorf("%s: %w", opCovariance, err)
	}

	data := std.Data.data
	cov := make([]float64, cols*cols)
	inv := 1.0 / float64(rows-1)

	// Upper triangle (j <= k) accumulated row by row.
	var i, j, k, base int
	var vj float64
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			vj = data[base+j]
			if vj == 0 {
				continue // zero rows of a standardized column contribute nothing
			}
			for k = j; k < cols; k++ {
				cov[j*cols+k] += vj * data[base+k]
			}
		}
	}
	// Scale and mirror: cov[k][j] = cov[j][k].
	for j = 0; j < cols; j++ {
		for k = j; k < cols; k++ {
			cov[j*cols+k] *= inv
			cov[k*cols+j] = cov[j*cols+k]
		}
	}

	return &Dense{r: cols, c: cols, data: cov}, nil
}

// Trace returns the sum of diagonal entries of a square matrix; the trace of
// the covariance matrix is the total variance, which tests compare against
// the eigenvalue sum.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
func Trace(m *Dense) (float64, error) {
	if err := validateNotNil(m); err != nil {
		return 0, err
	}
	if err := validateSquare(m); err != nil {
		return 0, err
	}
	var t float64
	for i := 0; i < m.r; i++ {
		t += m.data[i*m.c+i]
	}

	return t, nil
}
