package books

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestUpdate_MalformedIDIsNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	req := httptest.NewRequest(http.MethodPut, "/api/books/oops",
		strings.NewReader(`{"title": "T", "author": "A"}`))
	req.SetPathValue("id", "oops")
	rec := httptest.NewRecorder()
	Update(db, nil)(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Book not found" {
		t.Errorf("body = %v", body)
	}
}

func TestUpdate_BlankTitleRejected(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	req := httptest.NewRequest(http.MethodPut, "/api/books/"+testUUID,
		strings.NewReader(`{"title": "", "author": "A"}`))
	req.SetPathValue("id", testUUID)
	rec := httptest.NewRecorder()
	Update(db, nil)(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Title and author are required" {
		t.Errorf("body = %v", body)
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE books SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	req := httptest.NewRequest(http.MethodPut, "/api/books/"+testUUID,
		strings.NewReader(`{"title": "T", "author": "A"}`))
	req.SetPathValue("id", testUUID)
	rec := httptest.NewRecorder()
	Update(db, nil)(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdate_PartialBodyOnlyTouchesPresentFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	// genre present, so it is written; everything else optional stays put.
	mock.ExpectExec(`UPDATE books SET title = \$1, author = \$2, price = \$3, quantity = \$4, updated_at = \$5, genre = \$6 WHERE id = \$7`).
		WithArgs("Dune", "Frank Herbert", 12.0, 5, sqlmock.AnyArg(), "Sci-Fi", testUUID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodPut, "/api/books/"+testUUID,
		strings.NewReader(`{"title": "Dune", "author": "Frank Herbert", "price": 12, "quantity": 5, "genre": "Sci-Fi"}`))
	req.SetPathValue("id", testUUID)
	rec := httptest.NewRecorder()
	Update(db, nil)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["success"] != true || body["message"] != "Book updated successfully" {
		t.Errorf("body = %v", body)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
