package books

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

func looksLikeUUID(s string) bool { return len(s) == 36 && strings.Count(s, "-") == 4 }

// numOrZero applies the coercion policy for price/quantity style fields:
// missing or malformed input becomes 0, never an error.
func numOrZero(n json.Number) float64 {
	f, err := n.Float64()
	if err != nil || f < 0 {
		return 0
	}
	return f
}

func intOrZero(n json.Number) int {
	return int(numOrZero(n))
}

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reDashes   = regexp.MustCompile(`-+`)
)

// slugifyKey turns a title into a safe object-key fragment for cover
// storage: lowercase ASCII with dashes, diacritics stripped.
func slugifyKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, s)
	s = reNonAlnum.ReplaceAllString(normalized, "-")
	s = reDashes.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "book"
	}
	return s
}
