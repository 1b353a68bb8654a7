package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// UpdateByID overwrites the supplied fields and refreshes updatedAt.
// Returns domain.ErrTodoNotFound when the todo does not exist.
func (s *Service) UpdateByID(ctx context.Context, id string, params domain.TodoUpdateParams) (*domain.Todo, error) {
	if err := validateUpdate(params); err != nil {
		return nil, err
	}

	updated, err := s.store.Update(ctx, id, params, s.now())
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}

	s.log.InfoContext(ctx, "todo updated",
		slog.String("todo_id", updated.ID),
		slog.Bool("title_changed", params.Title != nil),
		slog.Bool("description_changed", params.Description != nil),
	)

	return updated, nil
}

// ToggleCompletedByID flips the completed flag and refreshes updatedAt.
// Returns domain.ErrTodoNotFound when the todo does not exist.
func (s *Service) ToggleCompletedByID(ctx context.Context, id string) (*domain.Todo, error) {
	toggled, err := s.store.ToggleCompleted(ctx, id, s.now())
	if err != nil {
		return nil, fmt.Errorf("toggle todo: %w", err)
	}

	s.log.InfoContext(ctx, "todo toggled",
		slog.String("todo_id", toggled.ID),
		slog.Bool("completed", toggled.Completed),
	)

	return toggled, nil
}
