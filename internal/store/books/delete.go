package books

import (
	"context"
	"database/sql"
)

// Delete permanently removes a book. The JSONB sub-records (reviews, sales
// history) live in the same row, so they go with it. Returns ErrNotFound
// when the id does not resolve.
func Delete(ctx context.Context, db *sql.DB, id string) error {
	res, err := db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return mapPGError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
