// Package pcakit reduces high-dimensional ratings-style matrices to their
// principal components: standardize, estimate covariance, decompose, rank,
// and project.
//
// 🚀 What is pcakit?
//
//	A small, deterministic PCA toolkit built around a five-stage pipeline:
//		• Standardize: zero-mean, unit-variance columns with explicit
//		  missing-value and constant-column policies
//		• Covariance: unbiased D×D estimate from the standardized matrix
//		• Eigendecompose: gonum's symmetric solver by default, with a
//		  classical Jacobi backend behind the same interface
//		• Rank: eigenpairs sorted by explained variance, with ratios and
//		  cumulative diagnostics
//		• Project: map every observation onto the top-K component basis
//
// ✨ Why choose pcakit?
//
//   - Deterministic – identical input bits produce identical output bits
//   - Pure stages – every stage returns fresh values, inputs never mutate
//   - Explicit policies – missing values, degenerate columns and component
//     selection are caller decisions, not hidden defaults
//   - Labeled data – row and column identity flows through the pipeline
//
// Everything is organized under four packages:
//
//	pca/     — the core pipeline: Standardize, Covariance, Decompose, Rank,
//	           Select, Project, Reconstruct, plus the Fit/Reduce facade
//	dataset/ — long-form ratings CSV ingestion and the dense pivot
//	scree/   — cumulative explained-variance curve and PNG rendering
//	cmd/     — the pcakit CLI ('pcakit reduce')
//
// Quick sketch:
//
//	ratings.csv ──► Pivot ──► Standardize ──► Covariance ──► Eigen
//	                                                           │
//	           reduced.csv ◄── Project ◄── Select ◄── Rank ◄───┘
//
// Dive into the pca package docs for the numerical contracts, and
// examples/ for end-to-end scenarios.
//
//	go get github.com/katalvlaran/pcakit
package pcakit
