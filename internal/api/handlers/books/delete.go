package books

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/cozyreads/inventory-api/internal/api/httpx"
	storebooks "github.com/cozyreads/inventory-api/internal/store/books"
	"github.com/redis/go-redis/v9"
)

// Delete handles DELETE /api/books/{id}. Hard delete; the row's reviews and
// sales history go with it.
func Delete(db *sql.DB, rdb *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if !looksLikeUUID(id) {
			httpx.ErrorJSON(w, http.StatusNotFound, "Book not found")
			return
		}

		err := storebooks.Delete(r.Context(), db, id)
		if errors.Is(err, storebooks.ErrNotFound) {
			httpx.ErrorJSON(w, http.StatusNotFound, "Book not found")
			return
		}
		if err != nil {
			log.Printf("[books] delete %s failed: %v", id, err)
			httpx.ErrorJSON(w, http.StatusInternalServerError, "Failed to delete book")
			return
		}

		if err := storebooks.BumpVersion(r.Context(), rdb); err != nil {
			log.Printf("[books] cache bump failed: %v", err)
		}

		httpx.SuccessJSON(w, http.StatusOK, "Book deleted successfully", nil)
	}
}
