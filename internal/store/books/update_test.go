package books

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestUpdate_MandatoryFieldsOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE books SET title = $1, author = $2, price = $3, quantity = $4, updated_at = $5 WHERE id = $6`,
	)).WithArgs("Dune", "Frank Herbert", 9.99, 3, sqlmock.AnyArg(), "b1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = Update(context.Background(), db, "b1", UpdateInput{
		Title: "Dune", Author: "Frank Herbert", Price: 9.99, Quantity: 3,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUpdate_OptionalFieldsAppended(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	genre := "Sci-Fi"
	rating := 9.0 // clamps to 5
	tags := []string{"classic"}

	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE books SET title = $1, author = $2, price = $3, quantity = $4, updated_at = $5, genre = $6, tags = $7, rating = $8 WHERE id = $9`,
	)).WithArgs("Dune", "Frank Herbert", 9.99, 3, sqlmock.AnyArg(),
		"Sci-Fi", []byte(`["classic"]`), 5.0, "b1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = Update(context.Background(), db, "b1", UpdateInput{
		Title: "Dune", Author: "Frank Herbert", Price: 9.99, Quantity: 3,
		Genre: &genre, Tags: &tags, Rating: &rating,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUpdate_ClampsNegativeNumbers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE books SET`).
		WithArgs("Dune", "Frank Herbert", 0.0, 0, sqlmock.AnyArg(), "b1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = Update(context.Background(), db, "b1", UpdateInput{
		Title: "Dune", Author: "Frank Herbert", Price: -1, Quantity: -7,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUpdate_UnknownIDReturnsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE books SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = Update(context.Background(), db, "nope", UpdateInput{
		Title: "T", Author: "A",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
