// Package client is a small Go client for the inventory API. It speaks the
// same wire contract as the web UI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

func New(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  "cozyreads-go-client/1.0",
	}
}

// ListParams mirrors the listing endpoint's query parameters. Zero values
// are omitted so the server applies its own defaults.
type ListParams struct {
	Page      int
	Limit     int
	SortField string
	SortOrder string
	Search    string
	Genre     string
	MinPrice  float64
	MaxPrice  float64
}

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
}

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type Page struct {
	Books      []Book     `json:"books"`
	Pagination Pagination `json:"pagination"`
}

type FilterOptions struct {
	Genres     []string `json:"genres"`
	PriceRange struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"priceRange"`
}

type apiError struct {
	Error string `json:"error"`
}

// Err is returned for every non-2xx response.
type Err struct {
	StatusCode int
	Message    string
}

func (e *Err) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

func (p ListParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.SortField != "" {
		q.Set("sortField", p.SortField)
	}
	if p.SortOrder != "" {
		q.Set("sortOrder", p.SortOrder)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Genre != "" {
		q.Set("genre", p.Genre)
	}
	if p.MinPrice > 0 {
		q.Set("minPrice", strconv.FormatFloat(p.MinPrice, 'f', -1, 64))
	}
	if p.MaxPrice > 0 {
		q.Set("maxPrice", strconv.FormatFloat(p.MaxPrice, 'f', -1, 64))
	}
	return q
}

// List fetches one page of the filtered catalog.
func (c *Client) List(ctx context.Context, p ListParams) (Page, error) {
	var page Page
	err := c.do(ctx, http.MethodGet, "/api/books?"+p.query().Encode(), nil, &page)
	return page, err
}

// Get fetches a single book by id.
func (c *Client) Get(ctx context.Context, id string) (Book, error) {
	var b Book
	err := c.do(ctx, http.MethodGet, "/api/books/"+url.PathEscape(id), nil, &b)
	return b, err
}

// Create adds a book and returns the new id.
func (c *Client) Create(ctx context.Context, b Book) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/books", b, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// Update overwrites a book's fields.
func (c *Client) Update(ctx context.Context, id string, b Book) error {
	return c.do(ctx, http.MethodPut, "/api/books/"+url.PathEscape(id), b, nil)
}

// Delete removes a book permanently.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/books/"+url.PathEscape(id), nil, nil)
}

// FilterOptions fetches the distinct genres and price range for filter UI.
func (c *Client) FilterOptions(ctx context.Context) (FilterOptions, error) {
	var opts FilterOptions
	err := c.do(ctx, http.MethodGet, "/api/books/filters", nil, &opts)
	return opts, err
}

// Export downloads the whole catalog.
func (c *Client) Export(ctx context.Context) ([]Book, error) {
	var resp struct {
		Books []Book `json:"books"`
	}
	err := c.do(ctx, http.MethodGet, "/api/books/import-export?format=json", nil, &resp)
	return resp.Books, err
}

// Import bulk-inserts books and returns how many were stored.
func (c *Client) Import(ctx context.Context, books []Book) (int, error) {
	var resp struct {
		InsertedCount int `json:"insertedCount"`
	}
	body := map[string]any{"books": books, "format": "json"}
	err := c.do(ctx, http.MethodPost, "/api/books/import-export", body, &resp)
	return resp.InsertedCount, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var ae apiError
		_ = json.NewDecoder(resp.Body).Decode(&ae)
		if ae.Error == "" {
			ae.Error = resp.Status
		}
		return &Err{StatusCode: resp.StatusCode, Message: ae.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
