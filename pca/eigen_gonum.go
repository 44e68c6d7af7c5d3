// SPDX-License-Identifier: MIT

// Package pca: gonum-backed symmetric eigensolver.

package pca

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SymDecomposer delegates the eigendecomposition to gonum's mat.EigenSym, a
// mature tridiagonalization-based symmetric solver. This is the default
// backend; swap in a JacobiDecomposer via WithDecomposer when a zero-dep or
// budget-bounded solver is preferred.
//
// gonum returns eigenvalues in ascending order; per the Decomposer contract
// that order is implementation-defined and Rank re-orders anyway.
type SymDecomposer struct{}

// Decompose validates symmetry within eps, mirrors the upper triangle into a
// mat.SymDense and factorizes it.
//
// Errors:
//   - ErrNotSymmetric / ErrDimensionMismatch / ErrNilMatrix (validation).
//   - ErrDidNotConverge when the factorization fails.
//
// Complexity: Time O(D³), Space O(D²).
func (SymDecomposer) Decompose(cov *Dense, eps float64) ([]EigenPair, error) {
	if err := validateSymmetric(cov, eps); err != nil {
		return nil, fmt.Errorf("%s: %w", opEigen, err)
	}

	// mat.SymDense reads the upper triangle; feed it symmetrized entries so
	// tolerated asymmetry noise below eps cannot leak through.
	n := cov.r
	sym := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sym.SetSym(i, j, 0.5*(cov.data[i*n+j]+cov.data[j*n+i]))
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return nil, fmt.Errorf("%s: %w", opEigen, ErrDidNotConverge)
	}

	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	pairs := make([]EigenPair, n)
	for j = 0; j < n; j++ {
		vec := make([]float64, n)
		for i = 0; i < n; i++ {
			vec[i] = vectors.At(i, j)
		}
		pairs[j] = EigenPair{Value: values[j], Vector: vec}
	}

	return pairs, nil
}
