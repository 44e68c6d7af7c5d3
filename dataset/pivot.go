// Package dataset: long-form ratings → dense user×movie RawMatrix.

package dataset

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/pcakit/pca"
)

// DefaultMinRatings keeps every movie; raise it via WithMinRatings to drop
// sparsely rated columns before pivoting.
const DefaultMinRatings = 1

const panicMinRatingsInvalid = "dataset: WithMinRatings: n must be >= 1"

// Option mutates pivot options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*options)

type options struct {
	minRatings int
}

// WithMinRatings drops movies rated fewer than n times before pivoting.
func WithMinRatings(n int) Option {
	if n < 1 {
		panic(panicMinRatingsInvalid)
	}

	return func(o *options) { o.minRatings = n }
}

// Pivot reshapes long-form ratings into a dense pca.RawMatrix: one row per
// user, one column per movie, NaN in unrated cells.
//
// Layout is deterministic: users and movies appear in ascending id order, so
// identical inputs always produce the same matrix. Row labels are the user
// ids; column labels are movie titles from the join table, falling back to
// "movie:<id>" when the table is nil or misses the id.
//
// Errors:
//   - ErrNoRatings (empty input).
//   - ErrDuplicateRating (a (user, movie) pair appears twice).
//   - ErrNoFeatures (the WithMinRatings filter removed every column).
//
// Complexity: O(R log R) for ordering + O(N·D) for the dense fill, where R
// is the rating count.
func Pivot(ratings []Rating, movies map[int]Movie, opts ...Option) (*pca.RawMatrix, error) {
	o := options{minRatings: DefaultMinRatings}
	for _, opt := range opts {
		opt(&o)
	}

	if len(ratings) == 0 {
		return nil, ErrNoRatings
	}

	// Collect distinct ids and per-movie counts; detect duplicates early.
	type cell struct{ user, movie int }
	seen := make(map[cell]struct{}, len(ratings))
	userSet := make(map[int]struct{})
	movieCount := make(map[int]int)
	for _, r := range ratings {
		c := cell{r.UserID, r.MovieID}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("user %d, movie %d: %w", r.UserID, r.MovieID, ErrDuplicateRating)
		}
		seen[c] = struct{}{}
		userSet[r.UserID] = struct{}{}
		movieCount[r.MovieID]++
	}

	users := make([]int, 0, len(userSet))
	for u := range userSet {
		users = append(users, u)
	}
	sort.Ints(users)

	movieIDs := make([]int, 0, len(movieCount))
	for m, cnt := range movieCount {
		if cnt >= o.minRatings {
			movieIDs = append(movieIDs, m)
		}
	}
	if len(movieIDs) == 0 {
		return nil, ErrNoFeatures
	}
	sort.Ints(movieIDs)

	userRow := make(map[int]int, len(users))
	for i, u := range users {
		userRow[u] = i
	}
	movieCol := make(map[int]int, len(movieIDs))
	for j, m := range movieIDs {
		movieCol[m] = j
	}

	// NaN-filled dense buffer; ratings land at (row, col).
	rows, cols := len(users), len(movieIDs)
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = math.NaN()
	}
	for _, r := range ratings {
		j, kept := movieCol[r.MovieID]
		if !kept {
			continue // filtered column
		}
		data[userRow[r.UserID]*cols+j] = r.Score
	}

	dense, err := pca.NewDenseOf(rows, cols, data)
	if err != nil {
		return nil, fmt.Errorf("dataset: pivot: %w", err)
	}

	rowIDs := make([]string, rows)
	for i, u := range users {
		rowIDs[i] = strconv.Itoa(u)
	}
	colIDs := make([]string, cols)
	for j, m := range movieIDs {
		if mv, ok := movies[m]; ok && mv.Title != "" {
			colIDs[j] = mv.Title
			continue
		}
		colIDs[j] = "movie:" + strconv.Itoa(m)
	}

	raw, err := pca.NewRawMatrix(dense, rowIDs, colIDs)
	if err != nil {
		return nil, fmt.Errorf("dataset: pivot: %w", err)
	}

	return raw, nil
}
