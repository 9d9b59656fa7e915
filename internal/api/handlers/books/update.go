package books

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/cozyreads/inventory-api/internal/api/httpx"
	storebooks "github.com/cozyreads/inventory-api/internal/store/books"
	"github.com/redis/go-redis/v9"
)

// Update handles PUT /api/books/{id}. Title, author, price, quantity and
// updatedAt are rewritten on every update; optional fields only when
// present in the body. Fields outside the allow-list are ignored.
func Update(db *sql.DB, rdb *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		id := r.PathValue("id")
		if !looksLikeUUID(id) {
			httpx.ErrorJSON(w, http.StatusNotFound, "Book not found")
			return
		}

		var body bookPayload
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			httpx.ErrorJSON(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		title := strings.TrimSpace(body.Title)
		author := strings.TrimSpace(body.Author)
		if title == "" || author == "" {
			httpx.ErrorJSON(w, http.StatusBadRequest, "Title and author are required")
			return
		}

		in := storebooks.UpdateInput{
			Title:         title,
			Author:        author,
			Price:         numOrZero(body.Price),
			Quantity:      intOrZero(body.Quantity),
			ISBN:          body.ISBN,
			Genre:         body.Genre,
			Description:   body.Description,
			PublishedDate: body.PublishedDate,
			Publisher:     body.Publisher,
			Language:      body.Language,
			CoverImage:    body.CoverImage,
			Tags:          body.Tags,
		}
		if body.Pages != nil {
			pages := intOrZero(*body.Pages)
			in.Pages = &pages
		}
		if body.Rating != nil {
			rating := numOrZero(*body.Rating)
			in.Rating = &rating
		}

		err := storebooks.Update(r.Context(), db, id, in)
		if errors.Is(err, storebooks.ErrNotFound) {
			httpx.ErrorJSON(w, http.StatusNotFound, "Book not found")
			return
		}
		if err != nil {
			log.Printf("[books] update %s failed: %v", id, err)
			httpx.ErrorJSON(w, http.StatusInternalServerError, "Failed to update book")
			return
		}

		if err := storebooks.BumpVersion(r.Context(), rdb); err != nil {
			log.Printf("[books] cache bump failed: %v", err)
		}

		httpx.SuccessJSON(w, http.StatusOK, "Book updated successfully", nil)
	}
}
