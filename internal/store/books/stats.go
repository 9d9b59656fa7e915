package books

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/cozyreads/inventory-api/internal/models"
)

// FetchStats aggregates the dashboard numbers in two queries: the stock
// buckets plus inventory value, then the per-genre counts. Blank genres are
// reported as "Uncategorized".
func FetchStats(ctx context.Context, db *sql.DB) (InventoryStats, error) {
	stats := InventoryStats{Genres: map[string]int{}}

	low := strconv.Itoa(models.LowStockThreshold)
	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(price * quantity), 0)::float8,
		       COUNT(*) FILTER (WHERE quantity = 0),
		       COUNT(*) FILTER (WHERE quantity > 0 AND quantity < `+low+`)
		FROM books`).
		Scan(&stats.TotalBooks, &stats.TotalValue, &stats.OutOfStock, &stats.LowStock)
	if err != nil {
		return InventoryStats{}, mapPGError(err)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT COALESCE(NULLIF(btrim(genre), ''), 'Uncategorized'), COUNT(*)
		FROM books
		GROUP BY 1
		ORDER BY 1`)
	if err != nil {
		return InventoryStats{}, mapPGError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			genre string
			n     int
		)
		if err := rows.Scan(&genre, &n); err != nil {
			return InventoryStats{}, err
		}
		stats.Genres[genre] = n
	}
	return stats, rows.Err()
}
