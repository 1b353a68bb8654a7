package middleware

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/todo-backend/internal/domain"
	"github.com/heartmarshall/todo-backend/internal/rbac"
	"github.com/heartmarshall/todo-backend/pkg/ctxutil"
)

// Authorize returns a step that admits only callers whose role grants perm.
func Authorize(checker rbac.Checker, perm rbac.Permission, logger *slog.Logger) Step {
	return func(r *http.Request) (*http.Request, error) {
		caller, ok := ctxutil.CallerFromCtx(r.Context())
		if !ok {
			return nil, domain.ErrUnauthorized
		}
		if !checker.HasPermission(caller.Role, perm) {
			logger.WarnContext(r.Context(), "permission denied",
				slog.String("route", r.Method+" "+r.URL.Path),
				slog.String("role", caller.Role),
				slog.String("permission", string(perm)),
				slog.String("caller_id", caller.ID),
			)
			return nil, domain.ErrForbidden
		}
		return r, nil
	}
}
