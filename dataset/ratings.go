// Package dataset: CSV loaders for rating and movie records.

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Rating is one long-form record: a user scored a movie once.
type Rating struct {
	UserID    int
	MovieID   int
	Score     float64
	Timestamp int64 // optional in the source; 0 when absent
}

// Movie is one row of the title join table.
type Movie struct {
	ID     int
	Title  string
	Genres string
}

// LoadRatings parses `userId,movieId,rating[,timestamp]` records. A leading
// header row is detected (first field not numeric) and skipped. Field counts
// and numeric formats are validated per record; the returned error wraps
// ErrBadRecord with the 1-based line number.
//
// Complexity: O(records), single pass, no buffering beyond encoding/csv.
func LoadRatings(r io.Reader) ([]Rating, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // validated manually: timestamp column is optional

	var out []Rating
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ratings line %d: %v: %w", line+1, err, ErrBadRecord)
		}
		line++

		if len(rec) != 3 && len(rec) != 4 {
			return nil, fmt.Errorf("ratings line %d: %d fields: %w", line, len(rec), ErrBadRecord)
		}
		userID, err := strconv.Atoi(rec[0])
		if err != nil {
			if line == 1 {
				continue // header row
			}

			return nil, fmt.Errorf("ratings line %d: user id %q: %w", line, rec[0], ErrBadRecord)
		}
		movieID, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("ratings line %d: movie id %q: %w", line, rec[1], ErrBadRecord)
		}
		score, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("ratings line %d: rating %q: %w", line, rec[2], ErrBadRecord)
		}
		var ts int64
		if len(rec) == 4 {
			if ts, err = strconv.ParseInt(rec[3], 10, 64); err != nil {
				return nil, fmt.Errorf("ratings line %d: timestamp %q: %w", line, rec[3], ErrBadRecord)
			}
		}
		out = append(out, Rating{UserID: userID, MovieID: movieID, Score: score, Timestamp: ts})
	}

	return out, nil
}

// LoadMovies parses `movieId,title,genres` records into a join table keyed
// by movie id. Titles containing commas are handled by CSV quoting. Header
// detection mirrors LoadRatings.
func LoadMovies(r io.Reader) (map[int]Movie, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // genres column is optional

	out := make(map[int]Movie)
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("movies line %d: %v: %w", line+1, err, ErrBadRecord)
		}
		line++

		if len(rec) < 2 {
			return nil, fmt.Errorf("movies line %d: %d fields: %w", line, len(rec), ErrBadRecord)
		}
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			if line == 1 {
				continue // header row
			}

			return nil, fmt.Errorf("movies line %d: movie id %q: %w", line, rec[0], ErrBadRecord)
		}
		m := Movie{ID: id, Title: rec[1]}
		if len(rec) > 2 {
			m.Genres = rec[2]
		}
		out[id] = m
	}

	return out, nil
}
