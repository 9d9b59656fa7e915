package books

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestList_PaginationMath(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM books`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	rows := sqlmock.NewRows(bookRowCols)
	for i := 0; i < 10; i++ {
		bookRow(rows, "id", "Title", "Author", 1)
	}
	mock.ExpectQuery(`FROM books`).WillReturnRows(rows)

	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	rec := httptest.NewRecorder()
	List(db)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	pg, _ := body["pagination"].(map[string]any)
	if pg["total"] != 25.0 || pg["page"] != 1.0 || pg["limit"] != 10.0 || pg["totalPages"] != 3.0 {
		t.Errorf("pagination = %v", pg)
	}
	if books, _ := body["books"].([]any); len(books) != 10 {
		t.Errorf("got %d books", len(body["books"].([]any)))
	}
}

func TestList_EmptyCatalog(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM books`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`FROM books`).WillReturnRows(sqlmock.NewRows(bookRowCols))

	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	rec := httptest.NewRecorder()
	List(db)(rec, req)

	body := decodeBody(t, rec)
	pg, _ := body["pagination"].(map[string]any)
	if pg["totalPages"] != 0.0 || pg["total"] != 0.0 {
		t.Errorf("pagination = %v, want zero totals", pg)
	}
	if books, ok := body["books"].([]any); !ok || len(books) != 0 {
		t.Errorf("books = %v, want empty array (not null)", body["books"])
	}
}

// Junk query parameters fall back to the defaults instead of failing the
// request.
func TestList_MalformedParamsStillServe(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM books`).
		WithArgs(0.0, 1000.0).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`ORDER BY title ASC`).
		WithArgs(0.0, 1000.0, 10, 0).
		WillReturnRows(sqlmock.NewRows(bookRowCols))

	req := httptest.NewRequest(http.MethodGet,
		"/api/books?page=banana&limit=-3&sortField=drop+table&minPrice=x", nil)
	rec := httptest.NewRecorder()
	List(db)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
