// Package dataset turns MovieLens-style CSV exports into the dense rating
// matrix the pca package consumes.
//
// 🚀 What it does:
//
//	Ratings arrive as long-form records (userId, movieId, rating) and movie
//	titles live in a separate join table. Pivot reshapes that into an N×D
//	user-by-movie matrix with NaN marking unrated cells, user ids as row
//	labels and movie titles as column labels, the exact RawMatrix contract
//	of pca.Standardize.
//
// ✨ Key guarantees:
//   - deterministic layout: rows and columns ordered by ascending id
//   - duplicate (user, movie) pairs are a typed error, never a silent
//     overwrite
//   - sparse movies can be dropped via WithMinRatings before pivoting
//   - parse failures carry the offending line number
//
// ⚙️ Usage:
//
//	ratings, err := dataset.LoadRatings(ratingsFile)
//	movies, err := dataset.LoadMovies(moviesFile)
//	raw, err := dataset.Pivot(ratings, movies, dataset.WithMinRatings(5))
//	res, err := pca.Fit(raw)
//
// The package performs no I/O beyond the supplied readers and holds no
// state; every function is a pure transformation of its inputs.
package dataset
