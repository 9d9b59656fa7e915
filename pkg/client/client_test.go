package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListParamsQuery(t *testing.T) {
	q := ListParams{
		Page: 2, Limit: 25,
		SortField: "price", SortOrder: "desc",
		Search: "dune", Genre: "Sci-Fi",
		MinPrice: 5, MaxPrice: 50,
	}.query()

	want := map[string]string{
		"page": "2", "limit": "25",
		"sortField": "price", "sortOrder": "desc",
		"search": "dune", "genre": "Sci-Fi",
		"minPrice": "5", "maxPrice": "50",
	}
	for k, v := range want {
		if got := q.Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}

	// zero values are omitted so the server decides the defaults
	if q := (ListParams{}).query(); len(q) != 0 {
		t.Errorf("zero params should produce an empty query, got %v", q)
	}
}

func TestClient_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/books" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("genre") != "Sci-Fi" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"books": [{"_id": "b1", "title": "Dune", "author": "Frank Herbert"}],
			"pagination": {"total": 1, "page": 1, "limit": 10, "totalPages": 1}
		}`))
	}))
	defer srv.Close()

	page, err := New(srv.URL).List(context.Background(), ListParams{Genre: "Sci-Fi"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page.Books) != 1 || page.Books[0].ID != "b1" {
		t.Errorf("books = %+v", page.Books)
	}
	if page.Pagination.TotalPages != 1 {
		t.Errorf("pagination = %+v", page.Pagination)
	}
}

func TestClient_NotFoundDecodesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "Book not found"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Get(context.Background(), "nope")
	var apiErr *Err
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Err", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "Book not found" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestClient_Create(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type = %s", ct)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success": true, "message": "Book added successfully", "id": "new-id"}`))
	}))
	defer srv.Close()

	id, err := New(srv.URL).Create(context.Background(), Book{Title: "Dune", Author: "Frank Herbert"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id != "new-id" {
		t.Errorf("id = %q", id)
	}
}

func TestClient_Import(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success": true, "message": "Successfully imported 2 books", "insertedCount": 2}`))
	}))
	defer srv.Close()

	n, err := New(srv.URL).Import(context.Background(), []Book{
		{Title: "A", Author: "B"}, {Title: "C", Author: "D"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 2 {
		t.Errorf("inserted = %d, want 2", n)
	}
}
