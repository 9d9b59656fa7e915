package validate

import (
	"strconv"
	"strings"
)

// The Coerce* helpers implement the import leniency policy: whatever a bulk
// row carries for a field, it becomes a usable value rather than a rejected
// record.

func CoerceString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func CoerceFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		if t < 0 {
			return 0
		}
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil || f < 0 {
			return 0
		}
		return f
	default:
		return 0
	}
}

func CoerceInt(v any) int {
	switch t := v.(type) {
	case float64:
		if t < 0 {
			return 0
		}
		return int(t)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil || n < 0 {
			return 0
		}
		return n
	default:
		return 0
	}
}

// CoerceStrings keeps only the string members of a decoded JSON array.
func CoerceStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
