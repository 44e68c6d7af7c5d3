// SPDX-License-Identifier: MIT
// Package pca: canonical validation checks shared by the stage facades.
// Validators return plain sentinel errors (no wrapping) so call sites can
// wrap uniformly with their operation tag.

package pca

import (
	"fmt"
	"math"
)

// validatorErrorf keeps consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures the matrix reference is non-nil. O(1).
func validateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("validateNotNil", ErrNilMatrix)
	}

	return nil
}

// validateSquare checks rows == cols. Assumes m is non-nil. O(1).
func validateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf("validateSquare", ErrDimensionMismatch)
	}

	return nil
}

// validateSymmetric checks |m[i,j] - m[j,i]| <= eps on the upper triangle.
// Composite: notNil → square → symmetry. O(n²), allocates nothing.
func validateSymmetric(m *Dense, eps float64) error {
	if err := validateNotNil(m); err != nil {
		return err
	}
	if err := validateSquare(m); err != nil {
		return err
	}
	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > eps {
				return validatorErrorf(fmt.Sprintf("validateSymmetric(%d,%d)", i, j), ErrNotSymmetric)
			}
		}
	}

	return nil
}

// validateFinite rejects NaN/±Inf anywhere in m. Used past standardization,
// where the NaN missing marker is no longer legal. O(r*c).
func validateFinite(m *Dense) error {
	for idx, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("validateFinite: entry %d", idx), ErrNaNInf)
		}
	}

	return nil
}
