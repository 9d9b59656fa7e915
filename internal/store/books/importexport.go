package books

import (
	"context"
	"database/sql"
	"time"

	"github.com/cozyreads/inventory-api/internal/models"
	"github.com/cozyreads/inventory-api/internal/store/dbx"
)

// ExportAll returns the whole catalog, oldest first. Ids are already
// stringified by the column cast.
func ExportAll(ctx context.Context, db *sql.DB) ([]models.Book, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+bookColumns+` FROM books ORDER BY created_at`)
	if err != nil {
		return nil, mapPGError(err)
	}
	defer rows.Close()

	out := []models.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ImportMany inserts a batch of normalized rows in one transaction and
// returns how many went in. All rows share the same timestamps.
func ImportMany(ctx context.Context, db *sql.DB, inputs []BookInput) (int, error) {
	now := time.Now().UTC()
	inserted := 0
	err := dbx.WithinTx(ctx, db, func(tx *sql.Tx) error {
		for i := range inputs {
			ApplyDefaults(&inputs[i])
			if _, err := insertOne(ctx, tx, inputs[i], now); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, mapPGError(err)
	}
	return inserted, nil
}
