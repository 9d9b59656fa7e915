package apperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgconn"
)

// Map well-known constraint names to fields (extend as constraints grow).
var constraintField = map[string]string{
	"books_pkey":           "id",
	"books_price_check":    "price",
	"books_quantity_check": "quantity",
	"books_pages_check":    "pages",
	"books_rating_check":   "rating",
}

// Guess a field from a column name present in PG error detail
func fieldFromDetail(detail string) string {
	for _, k := range []string{"title", "author", "price", "quantity", "rating", "pages", "genre", "isbn", "id"} {
		if strings.Contains(detail, k) {
			return k
		}
	}
	return ""
}

func fieldFromConstraint(c string) string {
	if f, ok := constraintField[c]; ok {
		return f
	}
	return ""
}

// FromPG maps a pgconn.PgError to a Problem. Returns (Problem, true) if mapped.
func FromPG(err error) (Problem, bool) {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return Problem{}, false
	}

	p := Problem{
		Title:  "Database error",
		Status: 500,
		Detail: strings.TrimSpace(pg.Message),
	}

	field := fieldFromConstraint(pg.ConstraintName)
	if field == "" && pg.Detail != "" {
		field = fieldFromDetail(pg.Detail)
	}

	switch pg.Code {
	case "23514": // check_violation
		p.Status = 422
		p.Title = "Unprocessable Entity"
		if field == "" {
			field = "field"
		}
		p.FieldErrors = []FieldError{{Field: field, Code: "check", Message: "constraint failed"}}
		p.Detail = ""
	case "23502": // not_null_violation
		p.Status = 400
		p.Title = "Bad Request"
		if field == "" && pg.ColumnName != "" {
			field = pg.ColumnName
		}
		if field == "" {
			field = "field"
		}
		p.FieldErrors = []FieldError{{Field: field, Code: "not_null", Message: "required field is missing"}}
		p.Detail = ""
	case "22P02": // invalid_text_representation (e.g., bad UUID)
		p.Status = 400
		p.Title = "Bad Request"
		if field == "" {
			field = "id"
		}
		p.FieldErrors = []FieldError{{Field: field, Code: "invalid", Message: "invalid format"}}
		p.Detail = ""
	case "22001": // string_data_right_truncation
		p.Status = 400
		p.Title = "Bad Request"
		if field == "" {
			field = "field"
		}
		p.FieldErrors = []FieldError{{Field: field, Code: "too_long", Message: "value is too long"}}
		p.Detail = ""
	case "40001": // serialization_failure
		p.Status = 409
		p.Title = "Conflict"
		p.Detail = "transaction conflict, please retry"
		p.Retryable = true
	case "40P01": // deadlock_detected
		p.Status = 409
		p.Title = "Conflict"
		p.Detail = "deadlock detected, please retry"
		p.Retryable = true
	default:
		p.Title = "Database error"
		p.Detail = ""
	}

	return p, true
}

// HandleDBError maps err to a Problem and writes it. Returns true if handled.
func HandleDBError(w http.ResponseWriter, r *http.Request, err error, fallbackTitle string) bool {
	if err == nil {
		return false
	}
	if p, ok := FromPG(err); ok {
		Write(w, r, p)
		return true
	}
	Write(w, r, Problem{Status: 500, Title: fallbackTitle})
	return true
}
