package books

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/cozyreads/inventory-api/internal/api/httpx"
	storebooks "github.com/cozyreads/inventory-api/internal/store/books"
	"github.com/redis/go-redis/v9"
)

// Create handles POST /api/books. Title and author are the only required
// fields; every other field is defaulted. Numerics are coerced, not
// rejected.
func Create(db *sql.DB, rdb *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var body bookPayload
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			httpx.ErrorJSON(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		if strings.TrimSpace(body.Title) == "" || strings.TrimSpace(body.Author) == "" {
			httpx.ErrorJSON(w, http.StatusBadRequest, "Title and author are required")
			return
		}

		in := storebooks.BookInput{
			Title:         strings.TrimSpace(body.Title),
			Author:        strings.TrimSpace(body.Author),
			Price:         numOrZero(body.Price),
			Quantity:      intOrZero(body.Quantity),
			PublishedDate: body.PublishedDate,
		}
		if body.ISBN != nil {
			in.ISBN = *body.ISBN
		}
		if body.Genre != nil {
			in.Genre = *body.Genre
		}
		if body.Description != nil {
			in.Description = *body.Description
		}
		if body.Publisher != nil {
			in.Publisher = *body.Publisher
		}
		if body.Language != nil {
			in.Language = *body.Language
		}
		if body.Pages != nil {
			in.Pages = intOrZero(*body.Pages)
		}
		if body.CoverImage != nil {
			in.CoverImage = *body.CoverImage
		}
		if body.Tags != nil {
			in.Tags = *body.Tags
		}
		if body.Rating != nil {
			in.Rating = numOrZero(*body.Rating)
		}
		if body.Reviews != nil {
			in.Reviews = *body.Reviews
		}
		if body.SalesHistory != nil {
			in.SalesHistory = *body.SalesHistory
		}

		id, err := storebooks.Create(r.Context(), db, in)
		if err != nil {
			log.Printf("[books] create failed: %v", err)
			httpx.ErrorJSON(w, http.StatusInternalServerError, "Failed to add book")
			return
		}

		if err := storebooks.BumpVersion(r.Context(), rdb); err != nil {
			log.Printf("[books] cache bump failed: %v", err)
		}

		httpx.SuccessJSON(w, http.StatusCreated, "Book added successfully",
			map[string]any{"id": id})
	}
}
