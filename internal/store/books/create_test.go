package books

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreate_FillsDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO books`).
		WithArgs(
			"Dune", "Frank Herbert",
			0.0, 0, // unset price and quantity
			"", "", "", nil, "",
			"English", // language default
			0, "",
			[]byte(`[]`), // tags
			0.0,
			[]byte(`[]`), []byte(`[]`), // reviews, sales history
			sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("new-id"))

	id, err := Create(context.Background(), db, BookInput{
		Title: "Dune", Author: "Frank Herbert",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id != "new-id" {
		t.Errorf("id = %q", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreate_ClampsOutOfRangeNumbers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO books`).
		WithArgs(
			"Dune", "Frank Herbert",
			0.0, 0, // negatives clamped
			"", "", "", nil, "", "English", 0, "",
			[]byte(`[]`),
			5.0, // rating capped
			[]byte(`[]`), []byte(`[]`),
			sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("new-id"))

	_, err = Create(context.Background(), db, BookInput{
		Title: "Dune", Author: "Frank Herbert",
		Price: -4, Quantity: -2, Rating: 11,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	published := "1965-08-01"
	in := BookInput{
		Title: "Dune", Author: "Frank Herbert",
		Price: 9.99, Quantity: 3, Language: "French",
		Tags: []string{"classic"}, Rating: 4.5,
		PublishedDate: &published,
	}
	ApplyDefaults(&in)
	if in.Language != "French" || in.Price != 9.99 || in.Rating != 4.5 {
		t.Errorf("explicit values overwritten: %+v", in)
	}
	if len(in.Tags) != 1 || in.Tags[0] != "classic" {
		t.Errorf("tags overwritten: %v", in.Tags)
	}
}
