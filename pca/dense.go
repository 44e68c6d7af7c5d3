// SPDX-License-Identifier: MIT

// Package pca - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Numeric policy:
//   - ±Inf is never a legal entry and is rejected on ingestion and Set.
//   - NaN is legal ONLY as the missing-value marker of a RawMatrix; every
//     stage past Standardize operates on fully finite data.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package pca

import (
	"fmt"
	"math"
	"strings"
)

// method tags used in error wrappers
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// denseErrorf attaches method context and coordinates to a sentinel error.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrBadShape when rows <= 0 or cols <= 0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// make() zero-fills the buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseOf builds an r×c matrix from a row-major flat slice. The slice is
// copied; the caller keeps ownership of data. NaN entries are accepted (they
// are the RawMatrix missing marker); ±Inf is rejected.
//
// Errors:
//   - ErrBadShape when rows <= 0, cols <= 0, or len(data) != rows*cols.
//   - ErrNaNInf when any entry is ±Inf.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDenseOf(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, ErrBadShape
	}
	buf := make([]float64, len(data))
	for idx, v := range data {
		if math.IsInf(v, 0) {
			return nil, fmt.Errorf("NewDenseOf: entry %d: %w", idx, ErrNaNInf)
		}
		buf[idx] = v
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns. Complexity: O(1).
func (d *Dense) Cols() int { return d.c }

// At returns the element at (row, col).
//
// Errors:
//   - ErrOutOfRange when row or col is outside bounds.
func (d *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= d.r || col < 0 || col >= d.c {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return d.data[row*d.c+col], nil
}

// Set writes v at (row, col). ±Inf is rejected by the numeric policy; NaN is
// accepted (missing marker).
//
// Errors:
//   - ErrOutOfRange when row or col is outside bounds.
//   - ErrNaNInf when v is ±Inf.
func (d *Dense) Set(row, col int, v float64) error {
	if row < 0 || row >= d.r || col < 0 || col >= d.c {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	d.data[row*d.c+col] = v

	return nil
}

// Clone returns a deep copy with an independent backing buffer.
// Complexity: Time O(r*c), Space O(r*c).
func (d *Dense) Clone() *Dense {
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return &Dense{r: d.r, c: d.c, data: buf}
}

// Row returns a copy of row i (nil if out of range). Handy for callers that
// want a single observation without touching flat offsets.
func (d *Dense) Row(i int) []float64 {
	if i < 0 || i >= d.r {
		return nil
	}
	out := make([]float64, d.c)
	copy(out, d.data[i*d.c:(i+1)*d.c])

	return out
}

// String renders the matrix row by row, mainly for debugging and tests.
func (d *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < d.r; i++ {
		sb.WriteString("[")
		for j = 0; j < d.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", d.data[i*d.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
