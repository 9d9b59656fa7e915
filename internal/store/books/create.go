package books

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/cozyreads/inventory-api/internal/store/dbx"
)

const insertSQL = `
INSERT INTO books
  (title, author, price, quantity, isbn, genre, description, published_date,
   publisher, language, pages, cover_image, tags, rating, reviews,
   sales_history, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$17)
RETURNING id::text`

// ApplyDefaults fills the unset optional fields the way every write path
// does: zero numerics, English language, empty JSON sequences.
func ApplyDefaults(in *BookInput) {
	if in.Language == "" {
		in.Language = "English"
	}
	if in.Price < 0 {
		in.Price = 0
	}
	if in.Quantity < 0 {
		in.Quantity = 0
	}
	if in.Pages < 0 {
		in.Pages = 0
	}
	if in.Rating < 0 {
		in.Rating = 0
	}
	if in.Rating > 5 {
		in.Rating = 5
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}
	if len(in.Reviews) == 0 {
		in.Reviews = []byte("[]")
	}
	if len(in.SalesHistory) == 0 {
		in.SalesHistory = []byte("[]")
	}
}

// Create inserts a new book and returns its id. createdAt and updatedAt are
// set to the same instant.
func Create(ctx context.Context, db *sql.DB, in BookInput) (string, error) {
	ApplyDefaults(&in)
	id, err := insertOne(ctx, db, in, time.Now().UTC())
	if err != nil {
		return "", mapPGError(err)
	}
	return id, nil
}

func insertOne(ctx context.Context, q dbx.Getter, in BookInput, now time.Time) (string, error) {
	tags, err := json.Marshal(in.Tags)
	if err != nil {
		return "", err
	}
	var published any
	if in.PublishedDate != nil {
		published = *in.PublishedDate
	}
	var id string
	err = q.QueryRowContext(ctx, insertSQL,
		in.Title, in.Author, in.Price, in.Quantity, in.ISBN, in.Genre,
		in.Description, published, in.Publisher, in.Language, in.Pages,
		in.CoverImage, tags, in.Rating, in.Reviews, in.SalesHistory, now,
	).Scan(&id)
	return id, err
}
