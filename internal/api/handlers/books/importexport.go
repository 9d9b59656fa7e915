package books

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/cozyreads/inventory-api/internal/api/httpx"
	"github.com/cozyreads/inventory-api/internal/models"
	storebooks "github.com/cozyreads/inventory-api/internal/store/books"
	"github.com/cozyreads/inventory-api/internal/validate"
	"github.com/redis/go-redis/v9"
)

// Export handles GET /api/books/import-export: the full catalog with
// stringified identifiers. Only JSON is produced; the format parameter is
// accepted for compatibility.
func Export(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := storebooks.ExportAll(r.Context(), db)
		if err != nil {
			log.Printf("[books] export failed: %v", err)
			httpx.ErrorJSON(w, http.StatusInternalServerError, "Failed to export books")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, struct {
			Success bool          `json:"success"`
			Books   []models.Book `json:"books"`
			Count   int           `json:"count"`
		}{Success: true, Books: items, Count: len(items)})
	}
}

// Import handles POST /api/books/import-export. Rows are normalized field
// by field (unknown titles and authors get placeholder values, numerics are
// coerced) and inserted in a single transaction.
func Import(db *sql.DB, rdb *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var body importPayload
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Books) == 0 {
			httpx.ErrorJSON(w, http.StatusBadRequest, "No valid books data provided")
			return
		}

		inputs := make([]storebooks.BookInput, 0, len(body.Books))
		for _, row := range body.Books {
			inputs = append(inputs, normalizeImportRow(row))
		}

		inserted, err := storebooks.ImportMany(r.Context(), db, inputs)
		if err != nil {
			log.Printf("[books] import failed: %v", err)
			httpx.ErrorJSON(w, http.StatusInternalServerError, "Failed to import books")
			return
		}

		if err := storebooks.BumpVersion(r.Context(), rdb); err != nil {
			log.Printf("[books] cache bump failed: %v", err)
		}

		httpx.SuccessJSON(w, http.StatusCreated,
			fmt.Sprintf("Successfully imported %d books", inserted),
			map[string]any{"insertedCount": inserted})
	}
}

func normalizeImportRow(row map[string]any) storebooks.BookInput {
	in := storebooks.BookInput{
		Title:       validate.CoerceString(row["title"]),
		Author:      validate.CoerceString(row["author"]),
		Price:       validate.CoerceFloat(row["price"]),
		Quantity:    validate.CoerceInt(row["quantity"]),
		ISBN:        validate.CoerceString(row["isbn"]),
		Genre:       validate.CoerceString(row["genre"]),
		Description: validate.CoerceString(row["description"]),
		Publisher:   validate.CoerceString(row["publisher"]),
		Language:    validate.CoerceString(row["language"]),
		Pages:       validate.CoerceInt(row["pages"]),
		CoverImage:  validate.CoerceString(row["coverImage"]),
		Tags:        validate.CoerceStrings(row["tags"]),
		Rating:      validate.CoerceFloat(row["rating"]),
	}
	if in.Title == "" {
		in.Title = "Unknown Title"
	}
	if in.Author == "" {
		in.Author = "Unknown Author"
	}
	if s := validate.CoerceString(row["publishedDate"]); s != "" {
		in.PublishedDate = &s
	}
	if raw, err := json.Marshal(row["reviews"]); err == nil && string(raw) != "null" {
		in.Reviews = raw
	}
	if raw, err := json.Marshal(row["salesHistory"]); err == nil && string(raw) != "null" {
		in.SalesHistory = raw
	}
	return in
}
