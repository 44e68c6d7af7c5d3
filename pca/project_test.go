// SPDX-License-Identifier: MIT

package pca_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pcakit/pca"
)

// fitSmall runs the full fit on a well-conditioned 4×3 integer matrix.
func fitSmall(t *testing.T) *pca.Result {
	t.Helper()
	res, err := pca.Fit(mustRaw(t, mustDense(t, 4, 3, []float64{
		1, 2, 3,
		4, 7, 5,
		6, 5, 9,
		10, 12, 11,
	})))
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	return res
}

func TestSelect_FixedCountBounds(t *testing.T) {
	t.Parallel()

	res := fitSmall(t)
	for _, k := range []int{0, -1, 4} {
		if _, err := pca.Select(res.Components, pca.FixedCount(k)); !errors.Is(err, pca.ErrInvalidK) {
			t.Fatalf("k=%d: want ErrInvalidK, got %v", k, err)
		}
	}
	basis, err := pca.Select(res.Components, pca.FixedCount(2))
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if basis.K != 2 || basis.Vectors.Rows() != 3 || basis.Vectors.Cols() != 2 {
		t.Fatalf("basis shape: K=%d, %dx%d", basis.K, basis.Vectors.Rows(), basis.Vectors.Cols())
	}
}

func TestSelect_ThresholdBounds(t *testing.T) {
	t.Parallel()

	res := fitSmall(t)
	for _, bad := range []float64{0, -0.5, 1.2} {
		if _, err := pca.Select(res.Components, pca.CumulativeThreshold(bad)); !errors.Is(err, pca.ErrInvalidThreshold) {
			t.Fatalf("t=%g: want ErrInvalidThreshold, got %v", bad, err)
		}
	}
}

func TestSelect_ThresholdPicksSmallestPrefix(t *testing.T) {
	t.Parallel()

	res := fitSmall(t)
	cum := res.CumulativeVariance()

	// Just above the first cumulative value forces at least two components;
	// exactly the first cumulative value keeps one.
	basis, err := pca.Select(res.Components, pca.CumulativeThreshold(cum[0]))
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if basis.K != 1 {
		t.Fatalf("K=%d, want 1 at t=%g", basis.K, cum[0])
	}

	if cum[0] < 1 {
		basis, err = pca.Select(res.Components, pca.CumulativeThreshold(cum[0]+1e-12))
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		if basis.K < 2 {
			t.Fatalf("K=%d, want >= 2 just above the first cumulative", basis.K)
		}
	}

	// t=1 selects everything (the full cumulative reaches 1 within tolerance,
	// clamped to D in the worst case).
	basis, err = pca.Select(res.Components, pca.CumulativeThreshold(1))
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if basis.K > res.Components.Components() {
		t.Fatalf("K=%d exceeds D", basis.K)
	}
}

func TestProject_RoundTripFullRank(t *testing.T) {
	t.Parallel()

	res := fitSmall(t)
	basis, reduced, err := res.Reduce(pca.FixedCount(3))
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	approx, err := pca.Reconstruct(reduced, basis)
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	denseClose(t, approx, res.Std.Data, epsLoose)
}

func TestProject_TopComponentMatchesEigenvectorProjection(t *testing.T) {
	t.Parallel()

	// Concrete 4×3 scenario: the K=1 reduction must equal the standardized
	// data projected onto the top eigenvector of its own 3×3 covariance.
	res := fitSmall(t)
	_, reduced, err := res.Reduce(pca.FixedCount(1))
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	top := res.Components.Pairs[0].Vector

	for i := 0; i < 4; i++ {
		var want float64
		for j := 0; j < 3; j++ {
			want += mustAt(t, res.Std.Data, i, j) * top[j]
		}
		closeTo(t, mustAt(t, reduced.Data, i, 0), want, epsTight, "score row")
	}
	if len(reduced.ComponentIDs) != 1 || reduced.ComponentIDs[0] != "PC1" {
		t.Fatalf("component labels: %v", reduced.ComponentIDs)
	}
}

func TestProject_RankKOptimality(t *testing.T) {
	t.Parallel()

	// Strongly anisotropic cloud: first feature pair correlated, third noisy.
	res, err := pca.Fit(mustRaw(t, mustDense(t, 6, 3, []float64{
		10, 10.2, 0.3,
		20, 19.9, -0.1,
		30, 30.4, 0.2,
		40, 39.8, -0.4,
		50, 50.1, 0.1,
		60, 59.6, -0.2,
	})))
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	pcaMSE := reconstructionMSE(t, res.Std.Data, [][]float64{res.Components.Pairs[0].Vector})

	// Any other rank-1 projection must do no better: canonical axes and a
	// handful of fixed unit directions stand in for "all" competitors.
	competitors := [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{0.5773502691896258, 0.5773502691896258, 0.5773502691896258},
		{0.7071067811865476, -0.7071067811865476, 0},
	}
	for idx, c := range competitors {
		mse := reconstructionMSE(t, res.Std.Data, [][]float64{c})
		if pcaMSE > mse+epsLoose {
			t.Fatalf("competitor %d beats PCA: %g < %g", idx, mse, pcaMSE)
		}
	}
}

func TestProject_DimensionMismatch(t *testing.T) {
	t.Parallel()

	res := fitSmall(t)
	basis, err := pca.Select(res.Components, pca.FixedCount(2))
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	other := &pca.Standardized{Data: mustDense(t, 2, 2, []float64{1, 2, 3, 4})}
	if _, err = pca.Project(other, basis); !errors.Is(err, pca.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
}

func TestSelect_ReselectionBuildsFreshBasis(t *testing.T) {
	t.Parallel()

	res := fitSmall(t)
	b1, err := pca.Select(res.Components, pca.FixedCount(1))
	if err != nil {
		t.Fatalf("Select(1): %v", err)
	}
	b2, err := pca.Select(res.Components, pca.FixedCount(2))
	if err != nil {
		t.Fatalf("Select(2): %v", err)
	}
	if b1.K != 1 || b2.K != 2 {
		t.Fatalf("K values: %d, %d", b1.K, b2.K)
	}
	// The first basis is untouched by the second selection.
	if b1.Vectors.Cols() != 1 {
		t.Fatalf("first basis mutated: %d cols", b1.Vectors.Cols())
	}
}
