// Package pca reduces high-dimensional numeric data via Principal Component
// Analysis: an orthogonal basis of feature directions ranked by the variance
// each explains, with projection of the data onto the top K of them.
//
// 🚀 What is PCA?
//
//	Given N observations of D features (e.g. N users rating D movies, with
//	many gaps), PCA finds the directions along which the data varies most and
//	re-expresses each observation in those coordinates with minimal
//	information loss. It is the workhorse of dimensionality reduction,
//	visualization and denoising.
//
// ✨ Key features:
//   - explicit missing-value policy (FillZero / FillColumnMean / RejectMissing)
//   - explicit zero-variance column policy (EmitZero / FailDegenerate)
//   - unbiased covariance estimation with deterministic flat-loop kernels
//   - pluggable eigensolver: gonum mat.EigenSym (default) or a bounded
//     Jacobi implementation with no third-party dependency
//   - stable, reproducible component ranking (relative tie tolerance,
//     original-index tie break, canonical eigenvector signs)
//   - selection by fixed K or cumulative explained-variance threshold
//   - row/column identity preserved end to end for interpretability
//
// ⚙️ Usage:
//
//	raw, _ := pca.NewRawMatrix(data, userIDs, movieTitles)
//	res, err := pca.Fit(raw)
//	if err != nil {
//	  // errors.Is against pca.ErrInsufficientSamples, pca.ErrDidNotConverge, ...
//	}
//	basis, reduced, err := res.Reduce(pca.CumulativeThreshold(0.9))
//	fmt.Println(basis.K, reduced.Data.Rows())
//
// Every stage is a pure function over immutable value objects: the same
// input and options always produce the same result, and nothing is shared
// mutable, so no synchronization is needed.
//
// Performance:
//
//   - Standardize: O(N·D)
//   - Covariance:  O(N·D²)
//   - Eigensolve:  O(D³)
//
// The dense covariance/eigendecomposition route assumes D in the thousands,
// not millions; sparse storage, streaming PCA and randomized SVD are out of
// scope.
package pca
