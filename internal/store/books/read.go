package books

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/cozyreads/inventory-api/internal/models"
)

// bookColumns is the scan order shared by every SELECT in this package.
const bookColumns = `id::text, title, author, price::float8, quantity, isbn, genre, description,
	published_date, publisher, language, pages, cover_image, tags, rating::float8,
	reviews, sales_history, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(rs rowScanner) (models.Book, error) {
	var (
		b         models.Book
		published sql.NullString
		tags      []byte
	)
	err := rs.Scan(
		&b.ID, &b.Title, &b.Author, &b.Price, &b.Quantity, &b.ISBN, &b.Genre,
		&b.Description, &published, &b.Publisher, &b.Language, &b.Pages,
		&b.CoverImage, &tags, &b.Rating, &b.Reviews, &b.SalesHistory,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return models.Book{}, err
	}
	if published.Valid {
		s := published.String
		b.PublishedDate = &s
	}
	b.Tags = []string{}
	if len(tags) > 0 {
		_ = json.Unmarshal(tags, &b.Tags)
	}
	if len(b.Reviews) == 0 {
		b.Reviews = json.RawMessage("[]")
	}
	if len(b.SalesHistory) == 0 {
		b.SalesHistory = json.RawMessage("[]")
	}
	return b, nil
}

// FetchByID loads one book. Returns ErrNotFound for unknown ids.
func FetchByID(ctx context.Context, db *sql.DB, id string) (models.Book, error) {
	row := db.QueryRowContext(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id)
	b, err := scanBook(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Book{}, ErrNotFound
	}
	if err != nil {
		return models.Book{}, mapPGError(err)
	}
	return b, nil
}

// ExistsByID reports whether the id resolves to a row.
func ExistsByID(ctx context.Context, db *sql.DB, id string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, mapPGError(err)
	}
	return exists, nil
}
