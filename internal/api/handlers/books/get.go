package books

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/cozyreads/inventory-api/internal/api/httpx"
	storebooks "github.com/cozyreads/inventory-api/internal/store/books"
)

// Get handles GET /api/books/{id}. A malformed id is treated the same as
// an unknown one: the caller addressed a book that does not exist.
func Get(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if !looksLikeUUID(id) {
			httpx.ErrorJSON(w, http.StatusNotFound, "Book not found")
			return
		}

		b, err := storebooks.FetchByID(r.Context(), db, id)
		if errors.Is(err, storebooks.ErrNotFound) {
			httpx.ErrorJSON(w, http.StatusNotFound, "Book not found")
			return
		}
		if err != nil {
			log.Printf("[books] fetch %s failed: %v", id, err)
			httpx.ErrorJSON(w, http.StatusInternalServerError, "Failed to fetch book")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, b)
	}
}
