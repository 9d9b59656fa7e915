package books

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cozyreads/inventory-api/internal/api/apperr"
	"github.com/cozyreads/inventory-api/internal/api/httpx"
	storage "github.com/cozyreads/inventory-api/internal/storage/s3"
	storebooks "github.com/cozyreads/inventory-api/internal/store/books"
)

// UploadCover handles POST /api/books/{id}/cover: multipart image upload to
// object storage, then persists the presigned download URL as coverImage.
func UploadCover(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := r.PathValue("id")
		if !looksLikeUUID(id) {
			httpx.ErrorJSON(w, http.StatusNotFound, "Book not found")
			return
		}

		b, err := storebooks.FetchByID(ctx, db, id)
		if errors.Is(err, storebooks.ErrNotFound) {
			httpx.ErrorJSON(w, http.StatusNotFound, "Book not found")
			return
		}
		if err != nil {
			apperr.HandleDBError(w, r, err, "Failed to load book")
			return
		}

		// 10MB cap for cover images.
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "failed to parse form")
			return
		}
		file, header, err := r.FormFile("cover")
		if err != nil {
			apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "missing cover file")
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType != "image/webp" && contentType != "image/jpeg" && contentType != "image/png" {
			apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request",
				"invalid image type, must be webp, jpeg, or png")
			return
		}

		store, err := storage.NewR2Client(ctx)
		if err != nil {
			apperr.WriteStatus(w, r, http.StatusInternalServerError, "Storage unavailable", "")
			return
		}

		objectKey := fmt.Sprintf("covers/%s-%s-%d", slugifyKey(b.Title), id[:8], time.Now().Unix())

		if err := uploadCoverObject(ctx, store, objectKey, file, contentType, header.Size); err != nil {
			apperr.WriteStatus(w, r, http.StatusInternalServerError, "Upload failed", "")
			return
		}

		downloadURL, err := store.GeneratePresignedDownloadURL(ctx, objectKey)
		if err != nil {
			_ = store.DeleteObject(ctx, objectKey)
			apperr.WriteStatus(w, r, http.StatusInternalServerError, "Upload failed", "")
			return
		}

		if err := storebooks.SetCoverImage(ctx, db, id, downloadURL); err != nil {
			_ = store.DeleteObject(ctx, objectKey)
			apperr.HandleDBError(w, r, err, "Failed to save cover")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"coverImage": downloadURL,
			"objectKey":  objectKey,
		})
	}
}
