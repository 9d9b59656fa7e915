package books

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/cozyreads/inventory-api/internal/models"
)

// List returns one page of the filtered, sorted catalog plus the total
// count of the filtered set (independent of paging).
func List(ctx context.Context, db *sql.DB, p ListParams) ([]models.Book, int, error) {
	where, args := buildWhere(p)

	var total int
	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM books `+where, args...).Scan(&total); err != nil {
		return nil, 0, mapPGError(err)
	}

	i := len(args) + 1
	q := `SELECT ` + bookColumns + ` FROM books ` + where + ` ` + orderBy(p) +
		` LIMIT $` + strconv.Itoa(i) + ` OFFSET $` + strconv.Itoa(i+1)

	rows, err := db.QueryContext(ctx, q, append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, mapPGError(err)
	}
	defer rows.Close()

	out := []models.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

// Paginate derives the pagination block for a page of results. An empty
// filtered set yields totalPages = 0, matching what the UI has always been
// shown.
func Paginate(total int, p ListParams) Pagination {
	totalPages := (total + p.Limit - 1) / p.Limit
	return Pagination{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
	}
}
