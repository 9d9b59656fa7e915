package books

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"github.com/cozyreads/inventory-api/internal/api/httpx"
	storebooks "github.com/cozyreads/inventory-api/internal/store/books"
	"github.com/redis/go-redis/v9"
)

// Filters handles GET /api/books/filters. Always 200: any store failure
// degrades to the static defaults so the filter UI can render.
func Filters(db *sql.DB, rdb *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cache := storebooks.NewCache(rdb)
		if payload, ok := cache.Get(r.Context(), "filters"); ok {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(payload)
			return
		}

		opts, err := storebooks.FetchFilterOptions(r.Context(), db)
		if err != nil {
			// degradeToDefaults: hide the failure, serve the fallback.
			log.Printf("[books] filter options failed: %v (serving defaults)", err)
			opts = storebooks.DegradeToDefaults()
			httpx.WriteJSON(w, http.StatusOK, opts)
			return
		}

		if payload, err := json.Marshal(opts); err == nil {
			cache.Set(r.Context(), "filters", payload)
		}
		httpx.WriteJSON(w, http.StatusOK, opts)
	}
}
