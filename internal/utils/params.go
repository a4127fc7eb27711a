package utils

import (
	"strconv"
	"strings"
)

const MaxPageSize = 100

// ParseLimit parses a ?limit value with a per-endpoint default, capped at
// MaxPageSize. Out-of-range input clamps instead of erroring.
func ParseLimit(raw string, def int) int {
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return def
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}

// ParseOffset parses a ?offset value; anything unusable clamps to 0.
func ParseOffset(raw string) int {
	if raw == "" {
		return 0
	}
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

// NormalizeSort returns the requested sort field when allow-listed,
// otherwise the default column.
func NormalizeSort(field string, allowed []string, def string) string {
	for _, f := range allowed {
		if f == field {
			return field
		}
	}
	return def
}

// NormalizeOrder accepts asc/desc, defaulting to desc.
func NormalizeOrder(order string) string {
	if strings.EqualFold(order, "asc") {
		return "asc"
	}
	return "desc"
}

// ToInt coerces a decoded JSON value to an int. Numeric strings are
// accepted the way the API has always accepted them.
func ToInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// ToFloat coerces a decoded JSON value to a float64.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
