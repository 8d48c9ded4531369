package util

import "strconv"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// Calculate turns a 1-based page and a page size into offset and limit.
func Calculate(page, size int) (offset int, limit int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return (page - 1) * size, size
}

// Meta is the pagination block returned next to a page of data.
func Meta(page, limit int, total int64) map[string]any {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	return map[string]any{
		"page":        page,
		"size":        limit,
		"total":       total,
		"total_pages": (total + int64(limit) - 1) / int64(limit),
		"has_prev":    page > 1,
		"has_next":    int64(offset+limit) < total,
	}
}
