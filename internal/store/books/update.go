package books

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Update overwrites the mandatory fields (title, author, price, quantity,
// updatedAt) and any optional field present in the input. Absent optional
// fields keep their stored values. Returns ErrNotFound when the id does not
// resolve; nothing is written in that case.
func Update(ctx context.Context, db *sql.DB, id string, in UpdateInput) error {
	if in.Price < 0 {
		in.Price = 0
	}
	if in.Quantity < 0 {
		in.Quantity = 0
	}

	sets := []string{"title = $1", "author = $2", "price = $3", "quantity = $4", "updated_at = $5"}
	args := []any{in.Title, in.Author, in.Price, in.Quantity, time.Now().UTC()}

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}

	if in.ISBN != nil {
		add("isbn", *in.ISBN)
	}
	if in.Genre != nil {
		add("genre", *in.Genre)
	}
	if in.Description != nil {
		add("description", *in.Description)
	}
	if in.PublishedDate != nil {
		add("published_date", *in.PublishedDate)
	}
	if in.Publisher != nil {
		add("publisher", *in.Publisher)
	}
	if in.Language != nil {
		add("language", *in.Language)
	}
	if in.Pages != nil {
		pages := *in.Pages
		if pages < 0 {
			pages = 0
		}
		add("pages", pages)
	}
	if in.CoverImage != nil {
		add("cover_image", *in.CoverImage)
	}
	if in.Tags != nil {
		tags, err := json.Marshal(*in.Tags)
		if err != nil {
			return err
		}
		add("tags", tags)
	}
	if in.Rating != nil {
		rating := *in.Rating
		if rating < 0 {
			rating = 0
		}
		if rating > 5 {
			rating = 5
		}
		add("rating", rating)
	}

	args = append(args, id)
	q := "UPDATE books SET " + strings.Join(sets, ", ") + " WHERE id = $" + strconv.Itoa(len(args))

	res, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return mapPGError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetCoverImage persists the cover object URL for a book.
func SetCoverImage(ctx context.Context, db *sql.DB, id, url string) error {
	res, err := db.ExecContext(ctx,
		`UPDATE books SET cover_image = $1, updated_at = $2 WHERE id = $3`,
		url, time.Now().UTC(), id)
	if err != nil {
		return mapPGError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
