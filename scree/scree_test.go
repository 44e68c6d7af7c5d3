package scree_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pcakit/pca"
	"github.com/katalvlaran/pcakit/scree"
)

func fitted(t *testing.T) *pca.RankedComponents {
	t.Helper()
	d, err := pca.NewDenseOf(4, 3, []float64{
		1, 2, 3,
		4, 7, 5,
		6, 5, 9,
		10, 12, 11,
	})
	require.NoError(t, err)
	raw, err := pca.NewRawMatrix(d, nil, nil)
	require.NoError(t, err)
	res, err := pca.Fit(raw)
	require.NoError(t, err)

	return res.Components
}

func TestCurve(t *testing.T) {
	t.Parallel()

	pts, err := scree.Curve(fitted(t))
	require.NoError(t, err)
	require.Len(t, pts, 3)
	assert.Equal(t, 1, pts[0].Components)
	assert.InDelta(t, 1.0, pts[2].Cumulative, 1e-9)
	for i := 1; i < len(pts); i++ {
		assert.GreaterOrEqual(t, pts[i].Cumulative+1e-12, pts[i-1].Cumulative)
	}

	_, err = scree.Curve(nil)
	require.ErrorIs(t, err, scree.ErrNilComponents)
}

func TestSavePNG(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scree.png")
	err := scree.SavePNG(fitted(t), path, scree.WithThreshold(0.9))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { scree.WithThreshold(0) })
	assert.Panics(t, func() { scree.WithThreshold(1.5) })
	assert.Panics(t, func() { scree.WithSize(0, 1) })
}
