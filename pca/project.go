// SPDX-License-Identifier: MIT

// Package pca: basis selection and projection.

package pca

import (
	"fmt"
	"math"
)

const (
	opSelect      = "Select"
	opProject     = "Project"
	opReconstruct = "Reconstruct"
)

// selectionKind discriminates the SelectionPolicy variants.
type selectionKind int

const (
	selectFixed selectionKind = iota
	selectThreshold
)

// SelectionPolicy decides how many ranked components form the basis. Build
// one with FixedCount or CumulativeThreshold; the zero value selects zero
// components and is rejected by Select.
type SelectionPolicy struct {
	kind      selectionKind
	k         int
	threshold float64
}

// FixedCount selects exactly the first k ranked components.
// Validation (1 <= k <= D) happens in Select, where D is known.
func FixedCount(k int) SelectionPolicy {
	return SelectionPolicy{kind: selectFixed, k: k}
}

// CumulativeThreshold selects the smallest prefix of ranked components whose
// cumulative explained-variance ratio reaches t, t ∈ (0, 1].
func CumulativeThreshold(t float64) SelectionPolicy {
	return SelectionPolicy{kind: selectThreshold, threshold: t}
}

// String reports the policy for logs and error context.
func (p SelectionPolicy) String() string {
	if p.kind == selectFixed {
		return fmt.Sprintf("FixedCount(%d)", p.k)
	}

	return fmt.Sprintf("CumulativeThreshold(%g)", p.threshold)
}

// Select assembles the D×K projection basis from the first K ranked
// eigenvectors under the given policy. The basis is a fresh matrix; ranked
// is never mutated, and reselecting with another policy builds a new basis.
//
// Errors:
//   - ErrNilMatrix (nil ranked).
//   - ErrInvalidK (FixedCount with k < 1 or k > D).
//   - ErrInvalidThreshold (CumulativeThreshold outside (0, 1]).
//
// Complexity: Time O(D*K), Space O(D*K).
func Select(ranked *RankedComponents, policy SelectionPolicy) (*ProjectionBasis, error) {
	if ranked == nil {
		return nil, validatorErrorf(opSelect, ErrNilMatrix)
	}
	d := ranked.Components()

	var k int
	switch policy.kind {
	case selectFixed:
		if policy.k < 1 || policy.k > d {
			return nil, fmt.Errorf("%s: %s with D=%d: %w", opSelect, policy, d, ErrInvalidK)
		}
		k = policy.k

	case selectThreshold:
		t := policy.threshold
		if !(t > 0 && t <= 1) || math.IsNaN(t) {
			return nil, fmt.Errorf("%s: %s: %w", opSelect, policy, ErrInvalidThreshold)
		}
		// Smallest prefix whose cumulative ratio reaches t; the cumulative
		// sequence ends ≈ 1, so the full basis is the worst case.
		k = d
		for i, c := range ranked.Cumulative {
			if c >= t {
				k = i + 1
				break
			}
		}
	}

	// Column k of the basis is the k-th ranked eigenvector.
	basis := make([]float64, d*k)
	var i, j int
	for j = 0; j < k; j++ {
		vec := ranked.Pairs[j].Vector
		for i = 0; i < d; i++ {
			basis[i*k+j] = vec[i]
		}
	}

	return &ProjectionBasis{K: k, Vectors: &Dense{r: d, c: k, data: basis}}, nil
}

// Project maps each standardized observation onto the basis columns:
// reduced[i] = std[i] · basis, an N×K matrix of component scores.
//
// Behavior highlights:
//   - Pure and deterministic: fixed i→k→j loops, one output allocation.
//   - Row identity survives; component columns are labeled "PC1".."PCK".
//
// Errors:
//   - ErrNilMatrix (nil std or basis).
//   - ErrDimensionMismatch (basis row count != D).
//
// Complexity: Time O(N*D*K), Space O(N*K).
func Project(std *Standardized, basis *ProjectionBasis) (*ReducedMatrix, error) {
	if std == nil || basis == nil {
		return nil, validatorErrorf(opProject, ErrNilMatrix)
	}
	if err := validateNotNil(std.Data); err != nil {
		return nil, fmt.Errorf("%s: %w", opProject, err)
	}
	if err := validateNotNil(basis.Vectors); err != nil {
		return nil, fmt.Errorf("%s: %w", opProject, err)
	}
	rows, cols := std.Data.Rows(), std.Data.Cols()
	if basis.Vectors.Rows() != cols {
		return nil, validatorErrorf(opProject, ErrDimensionMismatch)
	}

	k := basis.K
	x := std.Data.data
	b := basis.Vectors.data
	out := make([]float64, rows*k)

	var i, j, kk, baseX, baseO int
	var v float64
	for i = 0; i < rows; i++ {
		baseX = i * cols
		baseO = i * k
		for kk = 0; kk < cols; kk++ {
			v = x[baseX+kk]
			if v == 0 {
				continue // standardized zeros (EmitZero columns) contribute nothing
			}
			for j = 0; j < k; j++ {
				out[baseO+j] += v * b[kk*k+j]
			}
		}
	}

	components := make([]string, k)
	for j = 0; j < k; j++ {
		components[j] = fmt.Sprintf("PC%d", j+1)
	}

	return &ReducedMatrix{
		Data:         &Dense{r: rows, c: k, data: out},
		RowIDs:       cloneLabels(std.RowIDs),
		ComponentIDs: components,
	}, nil
}

// Reconstruct maps component scores back to feature space:
// approx = reduced · basisᵀ, the rank-K least-squares reconstruction of the
// standardized matrix. With K = D this round-trips the input within
// numerical tolerance; for K < D it is the minimum-MSE rank-K linear
// reconstruction, the defining optimality property of PCA.
//
// Errors:
//   - ErrNilMatrix (nil reduced or basis).
//   - ErrDimensionMismatch (reduced column count != basis K).
//
// Complexity: Time O(N*D*K), Space O(N*D).
func Reconstruct(reduced *ReducedMatrix, basis *ProjectionBasis) (*Dense, error) {
	if reduced == nil || basis == nil {
		return nil, validatorErrorf(opReconstruct, ErrNilMatrix)
	}
	if err := validateNotNil(reduced.Data); err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}
	if err := validateNotNil(basis.Vectors); err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}
	rows, k := reduced.Data.Rows(), reduced.Data.Cols()
	if k != basis.K || basis.Vectors.Cols() != k {
		return nil, validatorErrorf(opReconstruct, ErrDimensionMismatch)
	}

	d := basis.Vectors.Rows()
	r := reduced.Data.data
	b := basis.Vectors.data
	out := make([]float64, rows*d)

	var i, j, kk, baseR, baseO int
	var v float64
	for i = 0; i < rows; i++ {
		baseR = i * k
		baseO = i * d
		for kk = 0; kk < k; kk++ {
			v = r[baseR+kk]
			if v == 0 {
				continue
			}
			// basisᵀ row kk is basis column kk.
			for j = 0; j < d; j++ {
				out[baseO+j] += v * b[j*k+kk]
			}
		}
	}

	return &Dense{r: rows, c: d, data: out}, nil
}
