package domain

import "math"

const (
	// DefaultPageLimit is used when a listing does not specify a limit.
	DefaultPageLimit = 10
	// MaxPageLimit is the largest page a listing returns.
	MaxPageLimit = 100
)

// Pagination is a normalized page request. Page and Limit are at least 1.
type Pagination struct {
	Page  int
	Limit int
}

// NewPagination floors page and limit to 1 and caps limit at MaxPageLimit.
// Page is capped so that Offset never overflows.
func NewPagination(page, limit int) Pagination {
	if limit < 1 {
		limit = 1
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if page < 1 {
		page = 1
	}
	if maxPage := math.MaxInt/limit + 1; page > maxPage {
		page = maxPage
	}
	return Pagination{Page: page, Limit: limit}
}

// Offset returns the number of records to skip.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is one page of a listing.
type Page[T any] struct {
	Total   int `json:"total"`
	Page    int `json:"page"`
	Limit   int `json:"limit"`
	Results []T `json:"results"`
}

// NewPage wraps results with their pagination metadata.
func NewPage[T any](p Pagination, total int, results []T) Page[T] {
	if results == nil {
		results = []T{}
	}
	return Page[T]{Total: total, Page: p.Page, Limit: p.Limit, Results: results}
}
