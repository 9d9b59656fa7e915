package router

import (
	"database/sql"
	"net/http"

	"github.com/cozyreads/inventory-api/internal/api/handlers/books"
	"github.com/redis/go-redis/v9"
)

func Router(db *sql.DB, rdb *redis.Client) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", rootHandler)

	// Literal subpaths before the {id} pattern; the 1.22 mux prefers the
	// more specific match.
	mux.Handle("GET /api/books", books.List(db))
	mux.Handle("POST /api/books", books.Create(db, rdb))
	mux.Handle("GET /api/books/filters", books.Filters(db, rdb))
	mux.Handle("GET /api/books/stats", books.Stats(db, rdb))
	mux.Handle("GET /api/books/import-export", books.Export(db))
	mux.Handle("POST /api/books/import-export", books.Import(db, rdb))

	mux.Handle("GET /api/books/{id}", books.Get(db))
	mux.Handle("PUT /api/books/{id}", books.Update(db, rdb))
	mux.Handle("DELETE /api/books/{id}", books.Delete(db, rdb))
	mux.Handle("POST /api/books/{id}/cover", books.UploadCover(db))

	return mux
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write([]byte(`{"service":"cozyreads-inventory-api","status":"ok"}`))
}
