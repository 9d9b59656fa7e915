package books

import (
	"context"
	"database/sql"
)

// fallbackGenres is what the filter UI renders when the catalog is empty
// or unreachable.
var fallbackGenres = []string{"Fiction", "Non-fiction", "Science", "History", "Biography"}

// DegradeToDefaults is the named fail-open policy for the filter-options
// endpoint: whatever goes wrong, the filter UI always has something to
// render.
func DegradeToDefaults() FilterOptions {
	genres := make([]string, len(fallbackGenres))
	copy(genres, fallbackGenres)
	return FilterOptions{
		Genres:     genres,
		PriceRange: PriceRange{Min: 0, Max: 100},
	}
}

// FetchFilterOptions computes the distinct non-blank genres and the
// [min, max] price across the catalog. An empty store degrades to the
// defaults without error; a store error is returned so the caller can log
// it before degrading.
func FetchFilterOptions(ctx context.Context, db *sql.DB) (FilterOptions, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT DISTINCT genre FROM books
		WHERE btrim(genre) <> ''
		ORDER BY genre`)
	if err != nil {
		return DegradeToDefaults(), err
	}
	defer rows.Close()

	genres := []string{}
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return DegradeToDefaults(), err
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return DegradeToDefaults(), err
	}

	var minPrice, maxPrice sql.NullFloat64
	err = db.QueryRowContext(ctx,
		`SELECT MIN(price)::float8, MAX(price)::float8 FROM books`).
		Scan(&minPrice, &maxPrice)
	if err != nil {
		return DegradeToDefaults(), err
	}

	opts := DegradeToDefaults()
	if len(genres) > 0 {
		opts.Genres = genres
	}
	if minPrice.Valid && maxPrice.Valid {
		opts.PriceRange = PriceRange{Min: minPrice.Float64, Max: maxPrice.Float64}
	}
	return opts, nil
}
