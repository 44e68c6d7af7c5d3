// SPDX-License-Identifier: MIT

package pca_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pcakit/pca"
)

// PipelineSuite exercises the full fit/reduce flow end to end.
type PipelineSuite struct {
	suite.Suite
}

func (s *PipelineSuite) raw() *pca.RawMatrix {
	d, err := pca.NewDenseOf(5, 4, []float64{
		2, 9, 1, 7,
		5, 3, 8, 2,
		7, 6, 4, 9,
		1, 8, 6, 3,
		9, 2, 7, 5,
	})
	require.NoError(s.T(), err)
	raw, err := pca.NewRawMatrix(d, []string{"u1", "u2", "u3", "u4", "u5"}, []string{"m1", "m2", "m3", "m4"})
	require.NoError(s.T(), err)

	return raw
}

// TestTraceInvariant: Σ eigenvalues == trace(cov) within 1e-6 relative.
func (s *PipelineSuite) TestTraceInvariant() {
	res, err := pca.Fit(s.raw())
	require.NoError(s.T(), err)

	tr, err := pca.Trace(res.Cov)
	require.NoError(s.T(), err)
	require.InEpsilon(s.T(), tr, res.Components.TotalVariance, 1e-6)
}

// TestScreeDiagnostics: the full ratio sequence has length D and its
// cumulative ends at 1, so callers can render a scree curve.
func (s *PipelineSuite) TestScreeDiagnostics() {
	res, err := pca.Fit(s.raw())
	require.NoError(s.T(), err)

	ratios := res.ExplainedVariance()
	cum := res.CumulativeVariance()
	require.Len(s.T(), ratios, 4)
	require.Len(s.T(), cum, 4)
	require.InDelta(s.T(), 1.0, cum[3], 1e-9)
	for i := 1; i < len(cum); i++ {
		require.GreaterOrEqual(s.T(), cum[i]+1e-12, cum[i-1])
	}
}

// TestDeterminism: two invocations on identical input produce identical
// reduced matrices, bit for bit.
func (s *PipelineSuite) TestDeterminism() {
	first, err := pca.Fit(s.raw())
	require.NoError(s.T(), err)
	second, err := pca.Fit(s.raw())
	require.NoError(s.T(), err)

	_, redA, err := first.Reduce(pca.FixedCount(2))
	require.NoError(s.T(), err)
	_, redB, err := second.Reduce(pca.FixedCount(2))
	require.NoError(s.T(), err)

	for i := 0; i < redA.Data.Rows(); i++ {
		for j := 0; j < redA.Data.Cols(); j++ {
			a, err := redA.Data.At(i, j)
			require.NoError(s.T(), err)
			b, err := redB.Data.At(i, j)
			require.NoError(s.T(), err)
			require.Equal(s.T(), a, b)
		}
	}
}

// TestBackendAgreement: the Jacobi and gonum backends land on the same
// spectrum and, thanks to sign canonicalization, the same scores.
func (s *PipelineSuite) TestBackendAgreement() {
	gnum, err := pca.Fit(s.raw())
	require.NoError(s.T(), err)
	jac, err := pca.Fit(s.raw(), pca.WithDecomposer(
		pca.NewJacobiDecomposer(pca.DefaultJacobiTolerance, pca.DefaultJacobiMaxIterations)))
	require.NoError(s.T(), err)

	for i := range gnum.Components.Pairs {
		require.InDelta(s.T(), gnum.Components.Pairs[i].Value, jac.Components.Pairs[i].Value, 1e-8)
	}

	_, redG, err := gnum.Reduce(pca.FixedCount(2))
	require.NoError(s.T(), err)
	_, redJ, err := jac.Reduce(pca.FixedCount(2))
	require.NoError(s.T(), err)
	for i := 0; i < redG.Data.Rows(); i++ {
		for j := 0; j < redG.Data.Cols(); j++ {
			g, err := redG.Data.At(i, j)
			require.NoError(s.T(), err)
			jv, err := redJ.Data.At(i, j)
			require.NoError(s.T(), err)
			require.InDelta(s.T(), g, jv, 1e-7)
		}
	}
}

// TestAgainstReferenceSolver: the pipeline's top component matches an
// independent mat.EigenSym factorization of the same covariance.
func (s *PipelineSuite) TestAgainstReferenceSolver() {
	res, err := pca.Fit(s.raw())
	require.NoError(s.T(), err)

	n := res.Cov.Rows()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v, err := res.Cov.At(i, j)
			require.NoError(s.T(), err)
			sym.SetSym(i, j, v)
		}
	}
	var eig mat.EigenSym
	require.True(s.T(), eig.Factorize(sym, true))
	values := eig.Values(nil) // ascending

	require.InDelta(s.T(), values[n-1], res.Components.Pairs[0].Value, 1e-9)

	var vectors mat.Dense
	eig.VectorsTo(&vectors)
	// Same subspace: |cos| between the two top eigenvectors ≈ 1.
	var dot float64
	for i := 0; i < n; i++ {
		dot += vectors.At(i, n-1) * res.Components.Pairs[0].Vector[i]
	}
	require.InDelta(s.T(), 1.0, math.Abs(dot), 1e-9)
}

// TestBoundarySampleCounts: N=2 succeeds, N=1 is a typed failure.
func (s *PipelineSuite) TestBoundarySampleCounts() {
	two, err := pca.NewDenseOf(2, 3, []float64{1, 9, 4, 6, 2, 8})
	require.NoError(s.T(), err)
	rawTwo, err := pca.NewRawMatrix(two, nil, nil)
	require.NoError(s.T(), err)
	_, err = pca.Fit(rawTwo)
	require.NoError(s.T(), err)

	one, err := pca.NewDenseOf(1, 3, []float64{1, 2, 3})
	require.NoError(s.T(), err)
	rawOne, err := pca.NewRawMatrix(one, nil, nil)
	require.NoError(s.T(), err)
	_, err = pca.Fit(rawOne)
	require.ErrorIs(s.T(), err, pca.ErrInsufficientSamples)
}

// TestIdentityFlow: row labels reach the reduced matrix unchanged.
func (s *PipelineSuite) TestIdentityFlow() {
	res, err := pca.Fit(s.raw())
	require.NoError(s.T(), err)
	_, red, err := res.Reduce(pca.CumulativeThreshold(0.9))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"u1", "u2", "u3", "u4", "u5"}, red.RowIDs)
	require.GreaterOrEqual(s.T(), red.Data.Cols(), 1)
	require.Equal(s.T(), red.Data.Cols(), len(red.ComponentIDs))
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineSuite))
}
