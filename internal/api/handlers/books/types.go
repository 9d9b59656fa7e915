package books

import "encoding/json"

// bookPayload is the JSON body for POST /api/books and PUT /api/books/{id}.
// Pointers distinguish "absent" from "zero" for the optional fields; on PUT
// absent fields keep their stored values.
type bookPayload struct {
	Title         string           `json:"title"`
	Author        string           `json:"author"`
	Price         json.Number      `json:"price"`
	Quantity      json.Number      `json:"quantity"`
	ISBN          *string          `json:"isbn"`
	Genre         *string          `json:"genre"`
	Description   *string          `json:"description"`
	PublishedDate *string          `json:"publishedDate"`
	Publisher     *string          `json:"publisher"`
	Language      *string          `json:"language"`
	Pages         *json.Number     `json:"pages"`
	CoverImage    *string          `json:"coverImage"`
	Tags          *[]string        `json:"tags"`
	Rating        *json.Number     `json:"rating"`
	Reviews       *json.RawMessage `json:"reviews"`
	SalesHistory  *json.RawMessage `json:"salesHistory"`
}

// importPayload is the body for POST /api/books/import-export. Rows are
// loosely typed on purpose: bulk data gets coerced field by field, never
// rejected row by row.
type importPayload struct {
	Books  []map[string]any `json:"books"`
	Format string           `json:"format"`
}
