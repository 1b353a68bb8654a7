package todo

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Query returns one page of todos matching filter. Non-positive limit and
// page fall back to DefaultLimit and DefaultPage; an empty sort orders by
// creation time ascending.
func (s *Service) Query(ctx context.Context, filter domain.TodoFilter, opts domain.QueryOptions) (*domain.TodoPage, error) {
	if err := validateQuery(opts); err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	page := opts.Page
	if page <= 0 {
		page = DefaultPage
	}
	sort := opts.SortBy
	if len(sort) == 0 {
		sort = domain.DefaultSort
	}

	items, total, err := s.store.List(ctx, filter, sort, limit, pageOffset(page, limit))
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}
	if items == nil {
		items = []*domain.Todo{}
	}

	return &domain.TodoPage{
		Results:      items,
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages(total, limit),
		TotalResults: total,
	}, nil
}

// pageOffset returns the number of items before page. Offsets past
// math.MaxInt saturate, which every store treats as beyond the last item.
func pageOffset(page, limit int) int {
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

func totalPages(total, limit int) int {
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}

// GetByID returns the todo, or nil without an error when it does not exist.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Todo, error) {
	t, err := s.store.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get todo: %w", err)
	}
	return t, nil
}
