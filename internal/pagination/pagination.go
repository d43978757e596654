package pagination

import (
	"context"
	"strconv"

	"gorm.io/gorm"
)

// Scope narrows or decorates a query. Filters go to both the count and the
// fetch; ordering and preloads only to the fetch.
type Scope = func(*gorm.DB) *gorm.DB

// Request is the page the caller asked for. Page may be out of range; it is
// clamped, never rejected.
type Request struct {
	Page     int
	PageSize int
}

// ParsePage reads a page number from a query value. Missing or non-numeric
// values mean the first page.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}

// Page is one page of results with its metadata.
type Page[T any] struct {
	Items       []T   `json:"items"`
	Number      int   `json:"number"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// IsPaginated reports whether the result spans more than one page.
func (p *Page[T]) IsPaginated() bool {
	return p.TotalPages > 1
}

// Clamp returns the nearest valid page number and the page count. An empty
// result still has one (empty) page.
func Clamp(page int, totalItems int64, pageSize int) (number, totalPages int) {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages = int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	number = page
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}
	return number, totalPages
}

// NewPage assembles a Page from already fetched items.
func NewPage[T any](items []T, number, pageSize int, totalItems int64, totalPages int) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:       items,
		Number:      number,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNext:     number < totalPages,
		HasPrevious: number > 1,
	}
}

// Paginate counts the rows matched by filter, clamps the requested page and
// fetches it.
func Paginate[T any](ctx context.Context, db *gorm.DB, req Request, filter Scope, fetch ...Scope) (*Page[T], error) {
	if req.PageSize < 1 {
		req.PageSize = 1
	}
	if filter == nil {
		filter = func(db *gorm.DB) *gorm.DB { return db }
	}

	var totalItems int64
	if err := db.WithContext(ctx).Model(new(T)).Scopes(filter).Count(&totalItems).Error; err != nil {
		return nil, err
	}

	number, totalPages := Clamp(req.Page, totalItems, req.PageSize)

	var items []T
	if totalItems > 0 {
		offset := (number - 1) * req.PageSize
		query := db.WithContext(ctx).Model(new(T)).Scopes(filter).Scopes(fetch...)
		if err := query.Offset(offset).Limit(req.PageSize).Find(&items).Error; err != nil {
			return nil, err
		}
	}

	return NewPage(items, number, req.PageSize, totalItems, totalPages), nil
}
