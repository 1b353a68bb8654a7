package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/todo-backend/internal/transport/httputil"
	"github.com/heartmarshall/todo-backend/pkg/ctxutil"
)

type tokenValidator interface {
	Validate(token string) (callerID string, role string, err error)
}

// Auth resolves the bearer token into a caller on the request context.
// Requests without a token pass through anonymously; whether they may
// proceed is decided per route by Authorize.
func Auth(validator tokenValidator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			callerID, role, err := validator.Validate(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected",
					slog.String("error", err.Error()),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				)
				httputil.WriteError(w, http.StatusUnauthorized, "Please authenticate")
				return
			}
			ctx := ctxutil.WithCaller(r.Context(), callerID, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
