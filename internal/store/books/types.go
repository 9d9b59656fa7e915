package books

import "errors"

var (
	// ErrNotFound means the id did not resolve to a row.
	ErrNotFound = errors.New("book not found")
	// ErrInvalid means the database rejected the values (check constraint etc).
	ErrInvalid = errors.New("invalid book data")
)

// BookInput carries a fully-resolved set of column values for an insert.
// Defaults are applied by the caller (see ApplyDefaults); nothing here is
// optional anymore.
type BookInput struct {
	Title         string
	Author        string
	Price         float64
	Quantity      int
	ISBN          string
	Genre         string
	Description   string
	PublishedDate *string
	Publisher     string
	Language      string
	Pages         int
	CoverImage    string
	Tags          []string
	Rating        float64
	Reviews       []byte
	SalesHistory  []byte
}

// UpdateInput is the explicit allow-list for PUT. Title/author/price/quantity
// are rewritten on every update; pointer fields only when present in the
// request body.
type UpdateInput struct {
	Title    string
	Author   string
	Price    float64
	Quantity int

	ISBN          *string
	Genre         *string
	Description   *string
	PublishedDate *string
	Publisher     *string
	Language      *string
	Pages         *int
	CoverImage    *string
	Tags          *[]string
	Rating        *float64
}

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type FilterOptions struct {
	Genres     []string   `json:"genres"`
	PriceRange PriceRange `json:"priceRange"`
}

// InventoryStats is the dashboard aggregate.
type InventoryStats struct {
	TotalBooks int            `json:"totalBooks"`
	TotalValue float64        `json:"totalValue"`
	OutOfStock int            `json:"outOfStock"`
	LowStock   int            `json:"lowStock"`
	Genres     map[string]int `json:"genres"`
}
