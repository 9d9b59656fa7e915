package books

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	storage "github.com/cozyreads/inventory-api/internal/storage/s3"
)

// uploadCoverObject creates a presigned PUT url and streams the file to it.
// contentLength MUST be set (R2 rejects chunked uploads without it).
func uploadCoverObject(ctx context.Context, store *storage.S3Client, objectKey string, file multipart.File, contentType string, contentLength int64) error {
	uploadURL, err := store.GeneratePresignedUploadURL(ctx, objectKey, contentType)
	if err != nil {
		return fmt.Errorf("generate presigned upload url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, file)
	if err != nil {
		return fmt.Errorf("create put request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Content-Length", strconv.FormatInt(contentLength, 10))
	req.ContentLength = contentLength // ensure no chunked encoding

	client := &http.Client{Timeout: 2 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("put to object storage failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("cover upload failed status=%d", resp.StatusCode)
	}
	return nil
}
