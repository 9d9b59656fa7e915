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

// Stats handles GET /api/books/stats: the dashboard aggregate (counts,
// inventory value, stock buckets, genre breakdown). Cached under the
// mutation-bumped version prefix.
func Stats(db *sql.DB, rdb *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cache := storebooks.NewCache(rdb)
		if payload, ok := cache.Get(r.Context(), "stats"); ok {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(payload)
			return
		}

		stats, err := storebooks.FetchStats(r.Context(), db)
		if err != nil {
			log.Printf("[books] stats failed: %v", err)
			httpx.ErrorJSON(w, http.StatusInternalServerError, "Failed to fetch stats")
			return
		}

		if payload, err := json.Marshal(stats); err == nil {
			cache.Set(r.Context(), "stats", payload)
		}
		httpx.WriteJSON(w, http.StatusOK, stats)
	}
}
