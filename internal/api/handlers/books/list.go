package books

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/cozyreads/inventory-api/internal/api/httpx"
	"github.com/cozyreads/inventory-api/internal/models"
	storebooks "github.com/cozyreads/inventory-api/internal/store/books"
)

// List handles GET /api/books. Malformed query parameters fall back to
// their defaults; the listing never rejects a query string.
func List(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := storebooks.ParseListParams(r.URL.Query())

		items, total, err := storebooks.List(r.Context(), db, params)
		if err != nil {
			log.Printf("[books] list failed: %v", err)
			httpx.ErrorJSON(w, http.StatusInternalServerError, "Failed to fetch books")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, struct {
			Books      []models.Book         `json:"books"`
			Pagination storebooks.Pagination `json:"pagination"`
		}{
			Books:      items,
			Pagination: storebooks.Paginate(total, params),
		})
	}
}
