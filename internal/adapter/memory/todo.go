// Package memory implements the todo repository in process memory.
// Used for local runs and HTTP tests; data is lost on restart.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

type entry struct {
	todo domain.Todo
	seq  uint64
}

// TodoRepo is a mutex-guarded map of todos keyed by id.
type TodoRepo struct {
	mu    sync.RWMutex
	todos map[string]*entry
	seq   uint64
	newID func() string
}

// NewTodoRepo creates an empty repository.
func NewTodoRepo() *TodoRepo {
	return &TodoRepo{
		todos: make(map[string]*entry),
		newID: uuid.NewString,
	}
}

// Ping always succeeds.
func (r *TodoRepo) Ping(context.Context) error { return nil }

// ValidID reports whether id is a canonical UUID string.
func (r *TodoRepo) ValidID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// Create stores a copy of t under a new id.
func (r *TodoRepo) Create(_ context.Context, t *domain.Todo) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *t
	stored.ID = r.newID()
	r.seq++
	r.todos[stored.ID] = &entry{todo: stored, seq: r.seq}

	return &stored, nil
}

// GetByID returns a copy of the todo or domain.ErrTodoNotFound.
func (r *TodoRepo) GetByID(_ context.Context, id string) (*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.todos[id]
	if !ok {
		return nil, fmt.Errorf("todo %s: %w", id, domain.ErrTodoNotFound)
	}
	out := e.todo
	return &out, nil
}

// List filters, sorts and slices the stored todos.
func (r *TodoRepo) List(_ context.Context, filter domain.TodoFilter, sort []domain.SortCriterion, limit, offset int) ([]*domain.Todo, int, error) {
	if limit < 0 || offset < 0 {
		return nil, 0, fmt.Errorf("list todos: limit %d offset %d: negative window", limit, offset)
	}

	r.mu.RLock()
	matched := make([]*entry, 0, len(r.todos))
	for _, e := range r.todos {
		if filter.Title != nil && e.todo.Title != *filter.Title {
			continue
		}
		cp := *e
		matched = append(matched, &cp)
	}
	r.mu.RUnlock()

	if len(sort) == 0 {
		sort = domain.DefaultSort
	}
	slices.SortFunc(matched, func(a, b *entry) int {
		for _, c := range sort {
			if n := compareBy(c.Field, &a.todo, &b.todo); n != 0 {
				if c.Desc {
					return -n
				}
				return n
			}
		}
		return cmp.Compare(a.seq, b.seq)
	})

	total := len(matched)
	if offset >= total {
		return []*domain.Todo{}, total, nil
	}
	end := total
	if limit < total-offset {
		end = offset + limit
	}

	page := make([]*domain.Todo, 0, end-offset)
	for _, e := range matched[offset:end] {
		t := e.todo
		page = append(page, &t)
	}
	return page, total, nil
}

// Update overwrites the supplied fields under the write lock.
func (r *TodoRepo) Update(_ context.Context, id string, params domain.TodoUpdateParams, now time.Time) (*domain.Todo, error) {
	return r.mutate(id, func(t *domain.Todo) {
		if params.Title != nil {
			t.Title = *params.Title
		}
		if params.Description != nil {
			t.Description = *params.Description
		}
		t.UpdatedAt = now
	})
}

// ToggleCompleted flips the completed flag under the write lock.
func (r *TodoRepo) ToggleCompleted(_ context.Context, id string, now time.Time) (*domain.Todo, error) {
	return r.mutate(id, func(t *domain.Todo) {
		t.Completed = !t.Completed
		t.UpdatedAt = now
	})
}

// Delete removes the todo and returns it as it was.
func (r *TodoRepo) Delete(_ context.Context, id string) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.todos[id]
	if !ok {
		return nil, fmt.Errorf("todo %s: %w", id, domain.ErrTodoNotFound)
	}
	delete(r.todos, id)

	out := e.todo
	return &out, nil
}

func (r *TodoRepo) mutate(id string, fn func(t *domain.Todo)) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.todos[id]
	if !ok {
		return nil, fmt.Errorf("todo %s: %w", id, domain.ErrTodoNotFound)
	}
	fn(&e.todo)

	out := e.todo
	return &out, nil
}

func compareBy(f domain.SortField, a, b *domain.Todo) int {
	switch f {
	case domain.SortByTitle:
		return strings.Compare(a.Title, b.Title)
	case domain.SortByDescription:
		return strings.Compare(a.Description, b.Description)
	case domain.SortByCompleted:
		return compareBool(a.Completed, b.Completed)
	case domain.SortByCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	case domain.SortByUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	}
	return 0
}

// compareBool orders false before true.
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
