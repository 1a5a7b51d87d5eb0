package domain

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageRequest is a 1-indexed page selector.
type PageRequest struct {
	Page     int
	PageSize int
}

// Normalize clamps the request to usable values: pages below 1 become 1,
// a missing size becomes DefaultPageSize and sizes above MaxPageSize are
// capped. Pages are capped so Offset never overflows; any capped page lies
// far past the end of every result set.
func (p PageRequest) Normalize() PageRequest {
	switch {
	case p.PageSize <= 0:
		p.PageSize = DefaultPageSize
	case p.PageSize > MaxPageSize:
		p.PageSize = MaxPageSize
	}
	p.Page = min(max(p.Page, 1), math.MaxInt/p.PageSize)
	return p
}

// Offset returns the number of items preceding the page. The request must
// be normalized.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page is one window of an ordered result set.
type Page[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
}

// NewPage assembles a page. A nil items slice is replaced with an empty one
// so pages past the end encode as [].
func NewPage[T any](items []T, total int64, req PageRequest) Page[T] {
	req = req.Normalize()
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		TotalCount: total,
		TotalPages: TotalPages(total, req.PageSize),
		Page:       req.Page,
		PageSize:   req.PageSize,
	}
}

// TotalPages returns ceil(total/size).
func TotalPages(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
