package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// notFound is returned for missing rows so callers can use an
// entity-specific sentinel such as domain.ErrTodoNotFound.
// context.DeadlineExceeded and context.Canceled pass through.
func MapError(err error, notFound error, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s: %w", id, notFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23502", "23514": // not_null_violation, check_violation
			return fmt.Errorf("%s: %s: %w", id, pgErr.ConstraintName, domain.ErrValidation)
		case "22P02": // invalid_text_representation
			return fmt.Errorf("%s: %w", id, notFound)
		}
	}

	return fmt.Errorf("%s: %w", id, err)
}
