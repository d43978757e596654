package handler

import "gamehub/backend/internal/pagination"

// PaginationMeta defines the structure for pagination metadata.
type PaginationMeta struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
	IsPaginated bool  `json:"is_paginated"`
}

// PaginatedResponse defines the structure for a paginated list of any type.
type PaginatedResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// newPaginatedResponse converts every item of a page into its response type.
func newPaginatedResponse[M, T any](page *pagination.Page[M], convert func(M) T) PaginatedResponse[T] {
	data := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		data = append(data, convert(item))
	}
	return PaginatedResponse[T]{
		Data: data,
		Meta: PaginationMeta{
			TotalItems:  page.TotalItems,
			TotalPages:  page.TotalPages,
			CurrentPage: page.Number,
			PageSize:    page.PageSize,
			HasNext:     page.HasNext,
			HasPrevious: page.HasPrevious,
			IsPaginated: page.IsPaginated(),
		},
	}
}
