package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Create stores a new, not yet completed todo owned by ownerID.
func (s *Service) Create(ctx context.Context, input CreateInput, ownerID string) (*domain.Todo, error) {
	if ownerID == "" {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	created, err := s.store.Create(ctx, &domain.Todo{
		Title:       input.Title,
		Description: input.Description,
		Completed:   false,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	s.log.InfoContext(ctx, "todo created",
		slog.String("todo_id", created.ID),
		slog.String("owner_id", ownerID),
	)

	return created, nil
}
