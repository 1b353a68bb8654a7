package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/todo-backend/internal/domain"
	"github.com/heartmarshall/todo-backend/internal/transport/httputil"
	"github.com/heartmarshall/todo-backend/pkg/ctxutil"
)

// errorWriter translates errors returned by route steps into HTTP responses.
type errorWriter struct {
	log *slog.Logger
}

func (e errorWriter) write(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		httputil.WriteValidationError(w, verr)
	case errors.Is(err, domain.ErrValidation):
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.WriteError(w, http.StatusUnauthorized, "Please authenticate")
	case errors.Is(err, domain.ErrForbidden):
		httputil.WriteError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrTodoNotFound):
		httputil.WriteError(w, http.StatusNotFound, "Todo not found")
	case errors.Is(err, domain.ErrNotFound):
		httputil.WriteError(w, http.StatusNotFound, "Not found")
	default:
		e.log.ErrorContext(r.Context(), "request failed",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		httputil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
