package books

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var bookRowCols = []string{
	"id", "title", "author", "price", "quantity", "isbn", "genre",
	"description", "published_date", "publisher", "language", "pages",
	"cover_image", "tags", "rating", "reviews", "sales_history",
	"created_at", "updated_at",
}

func bookRow(rows *sqlmock.Rows, id, title, author string, price float64) *sqlmock.Rows {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return rows.AddRow(
		id, title, author, price, 3, "", "", "", nil, "", "English", 0,
		"", []byte(`[]`), 0.0, []byte(`[]`), []byte(`[]`), now, now,
	)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}
	return body
}

func TestLooksLikeUUID(t *testing.T) {
	valid := "123e4567-e89b-12d3-a456-426614174000"
	if !looksLikeUUID(valid) {
		t.Errorf("looksLikeUUID(%q) = false", valid)
	}
	for _, bad := range []string{"", "abc", "12345", valid + "x", "123e4567e89b12d3a456426614174000abcd"} {
		if looksLikeUUID(bad) {
			t.Errorf("looksLikeUUID(%q) = true", bad)
		}
	}
}
