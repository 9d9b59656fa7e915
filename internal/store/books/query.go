package books

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultPage     = 1
	defaultLimit    = 10
	defaultMinPrice = 0
	defaultMaxPrice = 1000
)

// ListParams is the full filter/sort/page parameter set for a listing query.
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

// sortColumns is the allow-list of sortable fields (request name -> column).
var sortColumns = map[string]string{
	"title":         "title",
	"author":        "author",
	"price":         "price",
	"quantity":      "quantity",
	"pages":         "pages",
	"rating":        "rating",
	"genre":         "genre",
	"publishedDate": "published_date",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
}

// ParseListParams reads the query string leniently: a malformed or
// out-of-range value falls back to its default instead of failing the
// request. The UI must never be unable to list books because of a bad
// query string.
func ParseListParams(q url.Values) ListParams {
	p := ListParams{
		Page:      intOrDefault(q.Get("page"), defaultPage, 1),
		Limit:     intOrDefault(q.Get("limit"), defaultLimit, 1),
		SortField: "title",
		SortOrder: "asc",
		Search:    strings.TrimSpace(q.Get("search")),
		Genre:     strings.TrimSpace(q.Get("genre")),
		MinPrice:  floatOrDefault(q.Get("minPrice"), defaultMinPrice),
		MaxPrice:  floatOrDefault(q.Get("maxPrice"), defaultMaxPrice),
	}
	if f := q.Get("sortField"); f != "" {
		if _, ok := sortColumns[f]; ok {
			p.SortField = f
		}
	}
	if strings.EqualFold(q.Get("sortOrder"), "desc") {
		p.SortOrder = "desc"
	}
	return p
}

func intOrDefault(raw string, def, min int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < min {
		return def
	}
	return v
}

func floatOrDefault(raw string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return def
	}
	return v
}

// Offset is the number of rows to skip for the requested page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// buildWhere renders the filter as a WHERE clause plus positional args.
// Search is a case-insensitive substring match over title, author,
// description and isbn; genre is exact; the price range is always applied
// inclusively.
func buildWhere(p ListParams) (string, []any) {
	where := []string{}
	args := []any{}
	i := 1

	if p.Search != "" {
		pat := "%" + escapeLike(p.Search) + "%"
		args = append(args, pat)
		n := strconv.Itoa(i)
		where = append(where,
			"(title ILIKE $"+n+" OR author ILIKE $"+n+" OR description ILIKE $"+n+" OR isbn ILIKE $"+n+")")
		i++
	}

	if p.Genre != "" {
		where = append(where, "genre = $"+strconv.Itoa(i))
		args = append(args, p.Genre)
		i++
	}

	where = append(where, "price BETWEEN $"+strconv.Itoa(i)+" AND $"+strconv.Itoa(i+1))
	args = append(args, p.MinPrice, p.MaxPrice)

	return "WHERE " + strings.Join(where, " AND "), args
}

// orderBy renders the single-field sort. Ties fall back to physical row
// order; the contract makes no promise about relative order of equal keys.
func orderBy(p ListParams) string {
	col := sortColumns[p.SortField]
	if col == "" {
		col = "title"
	}
	dir := "ASC"
	if p.SortOrder == "desc" {
		dir = "DESC"
	}
	return "ORDER BY " + col + " " + dir
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
