package service

import "github.com/aussiebroadwan/casais/internal/casais/store"

// Page is one slice of a filtered list plus the counters clients paginate
// with.
type Page[T any] struct {
	Items       []T
	CurrentPage int
	Total       int
	Pages       int
}

func newPage[T any](items []T, total int, q store.ListQuery) (Page[T], error) {
	if len(items) == 0 {
		return Page[T]{}, ErrNoRecords
	}
	return Page[T]{
		Items:       items,
		CurrentPage: q.Page,
		Total:       total,
		Pages:       q.Pages(total),
	}, nil
}
