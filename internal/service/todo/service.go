package todo

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

const (
	DefaultLimit = 10
	DefaultPage  = 1
)

//go:generate moq -out todo_store_mock_test.go -pkg todo . todoStore

// todoStore is the persistence collaborator. Every mutation is a single
// atomic statement in the backing store.
type todoStore interface {
	Create(ctx context.Context, t *domain.Todo) (*domain.Todo, error)
	GetByID(ctx context.Context, id string) (*domain.Todo, error)
	List(ctx context.Context, filter domain.TodoFilter, sort []domain.SortCriterion, limit, offset int) ([]*domain.Todo, int, error)
	Update(ctx context.Context, id string, params domain.TodoUpdateParams, now time.Time) (*domain.Todo, error)
	ToggleCompleted(ctx context.Context, id string, now time.Time) (*domain.Todo, error)
	Delete(ctx context.Context, id string) (*domain.Todo, error)
	ValidID(id string) bool
}

// Service provides todo management operations.
type Service struct {
	store todoStore
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new Todo service.
func NewService(
	log *slog.Logger,
	store todoStore,
) *Service {
	return &Service{
		store: store,
		log:   log.With("service", "todo"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// ValidID reports whether id is in the storage backend's identifier format.
func (s *Service) ValidID(id string) bool {
	return s.store.ValidID(id)
}
