package models

import (
	"encoding/json"
	"time"
)

// Book is the single inventory record. JSON field names match the legacy
// wire format the web UI already speaks, including the Mongo-style "_id".
type Book struct {
	ID            string          `json:"_id"`
	Title         string          `json:"title"`
	Author        string          `json:"author"`
	Price         float64         `json:"price"`
	Quantity      int             `json:"quantity"`
	ISBN          string          `json:"isbn"`
	Genre         string          `json:"genre"`
	Description   string          `json:"description"`
	PublishedDate *string         `json:"publishedDate"`
	Publisher     string          `json:"publisher"`
	Language      string          `json:"language"`
	Pages         int             `json:"pages"`
	CoverImage    string          `json:"coverImage"`
	Tags          []string        `json:"tags"`
	Rating        float64         `json:"rating"`
	Reviews       json.RawMessage `json:"reviews"`
	SalesHistory  json.RawMessage `json:"salesHistory"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type StockStatus string

const (
	OutOfStock StockStatus = "out-of-stock"
	LowStock   StockStatus = "low-stock"
	InStock    StockStatus = "in-stock"
)

// LowStockThreshold matches the UI badges: 0 is out of stock, 1-4 is low.
// The stats aggregation buckets on the same constant.
const LowStockThreshold = 5

func StockStatusFor(quantity int) StockStatus {
	switch {
	case quantity <= 0:
		return OutOfStock
	case quantity < LowStockThreshold:
		return LowStock
	default:
		return InStock
	}
}
