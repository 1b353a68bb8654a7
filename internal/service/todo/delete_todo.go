package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// DeleteByID permanently removes a todo and returns it as it was.
// Returns domain.ErrTodoNotFound when the todo does not exist.
func (s *Service) DeleteByID(ctx context.Context, id string) (*domain.Todo, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete todo: %w", err)
	}

	s.log.InfoContext(ctx, "todo deleted",
		slog.String("todo_id", deleted.ID),
		slog.String("owner_id", deleted.OwnerID),
	)

	return deleted, nil
}
