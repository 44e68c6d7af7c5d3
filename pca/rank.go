// SPDX-License-Identifier: MIT

// Package pca: component ranking and explained-variance bookkeeping.

package pca

import (
	"fmt"
	"math"
	"sort"
)

const opRank = "Rank"

// Rank orders eigenpairs by eigenvalue descending and derives the
// explained-variance diagnostics.
//
// Implementation:
//   - Stage 1: validate the spectrum (non-empty, D vectors of length D,
//     finite); total variance = Σ eigenvalues over ALL components, including
//     near-zero/negative numerical noise; nothing is discarded before
//     summing.
//   - Stage 2: stable sort descending. Two eigenvalues closer than
//     eps·max|λ| count as equal and keep their original relative order, so
//     the ranking (and any basis selected from it) is reproducible across
//     runs on identical input.
//   - Stage 3: canonicalize each eigenvector's sign (the entry with the
//     largest magnitude is made positive; first index wins ties) and compute
//     ratios plus the running cumulative sum.
//
// Behavior highlights:
//   - Input pairs are never mutated; vectors are deep-copied before the sign
//     flip so callers can hold on to the decomposer output.
//
// Errors:
//   - ErrDegenerateSpectrum (|total variance| below the spectrum floor).
//   - ErrBadShape (empty spectrum or vector length != D).
//   - ErrNaNInf (non-finite eigenvalue or vector entry).
//
// Complexity: Time O(D log D + D²) for sort + vector copies, Space O(D²).
func Rank(pairs []EigenPair, opts ...Option) (*RankedComponents, error) {
	o := gatherOptions(opts...)

	d := len(pairs)
	if d == 0 {
		return nil, validatorErrorf(opRank, ErrBadShape)
	}
	var total, maxAbs float64
	for i, p := range pairs {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			return nil, fmt.Errorf("%s: eigenvalue %d: %w", opRank, i, ErrNaNInf)
		}
		if len(p.Vector) != d {
			return nil, fmt.Errorf("%s: eigenvector %d: %w", opRank, i, ErrBadShape)
		}
		total += p.Value
		if a := math.Abs(p.Value); a > maxAbs {
			maxAbs = a
		}
	}
	if math.Abs(total) <= DefaultSpectrumFloor {
		return nil, validatorErrorf(opRank, ErrDegenerateSpectrum)
	}

	// Stable descending order with a relative tie tolerance; ties keep the
	// original index order.
	tieTol := o.eps * maxAbs
	order := make([]int, d)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return pairs[order[x]].Value-pairs[order[y]].Value > tieTol
	})

	ranked := make([]EigenPair, d)
	ratios := make([]float64, d)
	cumulative := make([]float64, d)
	var running float64
	for outPos, srcIdx := range order {
		src := pairs[srcIdx]
		vec := canonicalSign(src.Vector)
		ranked[outPos] = EigenPair{Value: src.Value, Vector: vec}
		ratios[outPos] = src.Value / total
		running += ratios[outPos]
		cumulative[outPos] = running
	}

	return &RankedComponents{
		Pairs:         ranked,
		Ratios:        ratios,
		Cumulative:    cumulative,
		TotalVariance: total,
	}, nil
}

// canonicalSign deep-copies vec, flipping it when the entry with the largest
// magnitude (first index on ties) is negative. v and -v are both valid
// eigenvectors; fixing the sign makes the full pipeline deterministic.
func canonicalSign(vec []float64) []float64 {
	out := make([]float64, len(vec))
	copy(out, vec)

	var pivot int
	var best float64
	for i, v := range out {
		if a := math.Abs(v); a > best {
			best, pivot = a, i
		}
	}
	if out[pivot] < 0 {
		for i := range out {
			out[i] = -out[i]
		}
	}

	return out
}
