// SPDX-License-Identifier: MIT

// Package pca: the pipeline facade tying the stages together.

package pca

import "fmt"

const opFit = "Fit"

// Result is the outcome of fitting the pipeline: the standardized data, the
// covariance matrix and the ranked spectrum. It is immutable; Reduce derives
// bases and reduced matrices from it on demand without recomputation.
type Result struct {
	Std        *Standardized
	Cov        *Dense
	Components *RankedComponents
}

// Fit runs raw → Standardize → Covariance → Decompose → Rank and returns the
// assembled Result. Selection and projection are deliberately separate
// (Result.Reduce) so several K choices can be explored against one fit.
//
// The decomposer defaults to SymDecomposer (gonum); use
// WithDecomposer(NewJacobiDecomposer(...)) for the dependency-free backend.
//
// Errors: any stage sentinel, wrapped with the stage tag; match with
// errors.Is (ErrMissingValue, ErrDegenerateColumn, ErrInsufficientSamples,
// ErrNotSymmetric, ErrDidNotConverge, ErrDegenerateSpectrum).
//
// Complexity: dominated by Covariance O(N*D²) and the eigensolver O(D³).
func Fit(raw *RawMatrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	std, err := Standardize(raw, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, err)
	}

	cov, err := Covariance(std)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, err)
	}

	dec := o.decomposer
	if dec == nil {
		dec = SymDecomposer{}
	}
	pairs, err := dec.Decompose(cov, o.eps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, err)
	}

	ranked, err := Rank(pairs, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, err)
	}

	return &Result{Std: std, Cov: cov, Components: ranked}, nil
}

// Reduce selects a basis under policy and projects the fitted data onto it.
// Each call builds a fresh basis and reduced matrix; the Result itself is
// never mutated.
func (r *Result) Reduce(policy SelectionPolicy) (*ProjectionBasis, *ReducedMatrix, error) {
	basis, err := Select(r.Components, policy)
	if err != nil {
		return nil, nil, err
	}
	reduced, err := Project(r.Std, basis)
	if err != nil {
		return nil, nil, err
	}

	return basis, reduced, nil
}

// ExplainedVariance returns a copy of the per-component variance ratios
// (length D), the scree diagnostic consumers render without this package
// depending on any plotting facility.
func (r *Result) ExplainedVariance() []float64 {
	out := make([]float64, len(r.Components.Ratios))
	copy(out, r.Components.Ratios)

	return out
}

// CumulativeVariance returns a copy of the running cumulative ratios.
func (r *Result) CumulativeVariance() []float64 {
	out := make([]float64, len(r.Components.Cumulative))
	copy(out, r.Components.Cumulative)

	return out
}
