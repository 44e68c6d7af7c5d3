// SPDX-License-Identifier: MIT

// Package pca: eigendecomposition backends.
//
// Purpose:
//   - Declare the Decomposer seam so callers can pick between the gonum
//     symmetric eigensolver (SymDecomposer, default) and a dependency-free
//     Jacobi implementation (JacobiDecomposer) with an explicit iteration
//     budget.
//   - Both backends validate symmetry, return unit-length eigenvectors and
//     make no ordering promise; ordering is Rank's job.

package pca

import (
	"fmt"
	"math"
)

const opEigen = "Eigen"

// Decomposer computes the full eigenspectrum of a symmetric matrix.
//
// Contract:
//   - cov must be square and symmetric within eps (ErrNotSymmetric).
//   - Returns exactly D real eigenpairs with unit-length eigenvectors in an
//     implementation-defined order.
//   - Must return ErrDidNotConverge instead of a silently partial result
//     when the numerical method fails within its budget.
type Decomposer interface {
	Decompose(cov *Dense, eps float64) ([]EigenPair, error)
}

// JacobiDecomposer diagonalizes a symmetric matrix with classical Jacobi
// rotations: repeatedly pick the largest off-diagonal |A[p,q]| and rotate it
// to zero, accumulating the rotations into the eigenvector matrix Q.
//
// Fixed i→j pivot search and update order keep results stable across runs.
// Construct via NewJacobiDecomposer; the zero value is not usable.
type JacobiDecomposer struct {
	tol     float64 // convergence threshold on the max off-diagonal magnitude
	maxIter int     // rotation budget; exceeding it is ErrDidNotConverge
}

// NewJacobiDecomposer builds a Jacobi backend with the given convergence
// tolerance and rotation budget. Panics on nonsensical parameters
// (programmer error); pass DefaultJacobiTolerance/DefaultJacobiMaxIterations
// for the documented defaults.
func NewJacobiDecomposer(tol float64, maxIter int) *JacobiDecomposer {
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicJacobiTolInvalid)
	}
	if maxIter <= 0 {
		panic(panicJacobiIterInvalid)
	}

	return &JacobiDecomposer{tol: tol, maxIter: maxIter}
}

// Decompose runs Jacobi sweeps until the largest off-diagonal magnitude
// drops below tol or the iteration budget runs out.
//
// Implementation:
//   - Stage 1: validate symmetric square input within eps; clone cov into a
//     working copy A; initialize Q = I.
//   - Stage 2: per iteration, scan the upper triangle for the pivot (p,q)
//     with the largest |A[p,q]|; compute the rotation (c,s) from A[p,p],
//     A[q,q], A[p,q]; apply it symmetrically to A and accumulate into Q.
//   - Stage 3: verify convergence, then read eigenvalues off diag(A) and
//     eigenvectors off the columns of Q.
//
// Errors:
//   - ErrNotSymmetric / ErrDimensionMismatch / ErrNilMatrix (validation).
//   - ErrDidNotConverge (max off-diagonal >= tol after maxIter rotations).
//
// Complexity: Time O(maxIter * D²) per sweep scan plus O(D) per rotation,
// Space O(D²) for the working copy and Q.
func (jd *JacobiDecomposer) Decompose(cov *Dense, eps float64) ([]EigenPair, error) {
	if err := validateSymmetric(cov, eps); err != nil {
		return nil, fmt.Errorf("%s: %w", opEigen, err)
	}

	n := cov.r
	a := cov.Clone().data // working copy; cov itself is never touched
	q := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		q[i*n+i] = 1.0
	}

	var (
		iter           int
		p, pivQ        int
		maxOff, off    float64
		app, aqq, apq  float64
		aip, aiq       float64
		qip, qiq       float64
		theta, t, c, s float64
	)
	for iter = 0; iter < jd.maxIter; iter++ {
		// Pivot search: largest |A[i,j]| over the upper triangle, fixed order.
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(a[i*n+j])
				if off > maxOff {
					maxOff, p, pivQ = off, i, j
				}
			}
		}
		if maxOff < jd.tol {
			break
		}

		app = a[p*n+p]
		aqq = a[pivQ*n+pivQ]
		apq = a[p*n+pivQ]

		// Rotation angle: θ = (aqq−app)/(2·apq), t = sign(θ)/(|θ|+√(θ²+1)).
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// Apply the rotation symmetrically to A.
		for i = 0; i < n; i++ {
			if i == p || i == pivQ {
				continue
			}
			aip = a[i*n+p]
			aiq = a[i*n+pivQ]
			a[i*n+p], a[p*n+i] = c*aip-s*aiq, c*aip-s*aiq
			a[i*n+pivQ], a[pivQ*n+i] = s*aip+c*aiq, s*aip+c*aiq
		}
		a[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a[pivQ*n+pivQ] = s*s*app + 2*c*s*apq + c*c*aqq
		a[p*n+pivQ], a[pivQ*n+p] = 0, 0

		// Accumulate the rotation into Q.
		for i = 0; i < n; i++ {
			qip = q[i*n+p]
			qiq = q[i*n+pivQ]
			q[i*n+p] = c*qip - s*qiq
			q[i*n+pivQ] = s*qip + c*qiq
		}
	}

	// Final convergence check: never hand back a partially rotated spectrum.
	maxOff = 0
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			off = math.Abs(a[i*n+j])
			if off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= jd.tol {
		return nil, fmt.Errorf("%s: %w", opEigen, ErrDidNotConverge)
	}

	// Eigenvalues from diag(A); eigenvectors from columns of Q (orthonormal
	// by construction of the rotations).
	pairs := make([]EigenPair, n)
	for j = 0; j < n; j++ {
		vec := make([]float64, n)
		for i = 0; i < n; i++ {
			vec[i] = q[i*n+j]
		}
		pairs[j] = EigenPair{Value: a[j*n+j], Vector: vec}
	}

	return pairs, nil
}
