// SPDX-License-Identifier: MIT

package pca_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pcakit/pca"
)

const (
	epsTight = 1e-9
	epsLoose = 1e-6
)

// mustDense builds a Dense from a flat row-major slice or fails the test.
func mustDense(t *testing.T, rows, cols int, data []float64) *pca.Dense {
	t.Helper()
	d, err := pca.NewDenseOf(rows, cols, data)
	if err != nil {
		t.Fatalf("NewDenseOf(%d,%d): %v", rows, cols, err)
	}

	return d
}

// mustRaw wraps a Dense into a RawMatrix with positional labels.
func mustRaw(t *testing.T, d *pca.Dense) *pca.RawMatrix {
	t.Helper()
	raw, err := pca.NewRawMatrix(d, nil, nil)
	if err != nil {
		t.Fatalf("NewRawMatrix: %v", err)
	}

	return raw
}

// mustAt reads one element or fails the test.
func mustAt(t *testing.T, m *pca.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// closeTo asserts |got-want| <= tol.
func closeTo(t *testing.T, got, want, tol float64, msg string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s: got %g, want %g (tol %g)", msg, got, want, tol)
	}
}

// denseClose asserts element-wise closeness of two matrices.
func denseClose(t *testing.T, got, want *pca.Dense, tol float64) {
	t.Helper()
	if got.Rows() != want.Rows() || got.Cols() != want.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", got.Rows(), got.Cols(), want.Rows(), want.Cols())
	}
	var i, j int
	for i = 0; i < got.Rows(); i++ {
		for j = 0; j < got.Cols(); j++ {
			g, w := mustAt(t, got, i, j), mustAt(t, want, i, j)
			if math.Abs(g-w) > tol {
				t.Fatalf("element (%d,%d): got %g, want %g (tol %g)", i, j, g, w, tol)
			}
		}
	}
}

// matVec computes m·x for test oracles.
func matVec(t *testing.T, m *pca.Dense, x []float64) []float64 {
	t.Helper()
	if len(x) != m.Cols() {
		t.Fatalf("matVec: len(x)=%d, cols=%d", len(x), m.Cols())
	}
	out := make([]float64, m.Rows())
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			out[i] += mustAt(t, m, i, j) * x[j]
		}
	}

	return out
}

// reconstructionMSE measures mean squared error between std and its rank-K
// reconstruction through an arbitrary orthonormal basis (D×K, columns).
func reconstructionMSE(t *testing.T, std *pca.Dense, basisCols [][]float64) float64 {
	t.Helper()
	rows, cols := std.Rows(), std.Cols()
	k := len(basisCols)

	var sum float64
	var i, j, c int
	for i = 0; i < rows; i++ {
		// scores = xᵀ·b_c, approx = Σ_c score_c · b_c
		approx := make([]float64, cols)
		for c = 0; c < k; c++ {
			var score float64
			for j = 0; j < cols; j++ {
				score += mustAt(t, std, i, j) * basisCols[c][j]
			}
			for j = 0; j < cols; j++ {
				approx[j] += score * basisCols[c][j]
			}
		}
		for j = 0; j < cols; j++ {
			d := mustAt(t, std, i, j) - approx[j]
			sum += d * d
		}
	}

	return sum / float64(rows*cols)
}
