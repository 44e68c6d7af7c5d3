// Package dataset: sentinel error set. All loaders and Pivot return these
// sentinels (optionally wrapped with line/record context); tests and callers
// match them via errors.Is.

package dataset

import "errors"

var (
	// ErrBadRecord marks a CSV record that does not parse into the expected
	// schema (wrong field count, non-numeric id, unparsable rating).
	ErrBadRecord = errors.New("dataset: malformed record")

	// ErrNoRatings is returned by Pivot when no rating rows survive parsing
	// and filtering; an empty matrix has no meaningful shape.
	ErrNoRatings = errors.New("dataset: no ratings to pivot")

	// ErrNoFeatures is returned by Pivot when the minimum-ratings filter
	// removes every movie column.
	ErrNoFeatures = errors.New("dataset: no feature columns after filtering")

	// ErrDuplicateRating marks a (user, movie) pair rated more than once;
	// last-write-wins would silently bias the matrix, so it is an error.
	ErrDuplicateRating = errors.New("dataset: duplicate (user, movie) rating")
)
