package rest

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/todo-backend/internal/rbac"
	"github.com/heartmarshall/todo-backend/internal/transport/httputil"
	"github.com/heartmarshall/todo-backend/internal/transport/middleware"
	"github.com/heartmarshall/todo-backend/internal/transport/validation"
)

// Route is one entry of the routing table.
type Route struct {
	Name       string
	Method     string
	Path       string
	Permission rbac.Permission
	Schema     validation.Schema
	Handle     HandlerFunc
}

// Routes is the todo routing table.
func Routes(h *TodoHandler, s validation.Schemas) []Route {
	byID := "/todos/{" + validation.IDParam + "}"
	return []Route{
		{"createTodo", http.MethodPost, "/todos", rbac.PermCreateTodo, s.Create, h.Create},
		{"getTodos", http.MethodGet, "/todos", rbac.PermGetTodos, s.List, h.List},
		{"getTodo", http.MethodGet, byID, rbac.PermGetTodo, s.ByID, h.Get},
		{"updateTodo", http.MethodPatch, byID, rbac.PermUpdateTodo, s.Update, h.Update},
		{"deleteTodo", http.MethodDelete, byID, rbac.PermDeleteTodo, s.ByID, h.Delete},
		{"toggleCompleted", http.MethodPatch, byID + "/completed", rbac.PermToggleCompleted, s.ByID, h.ToggleCompleted},
	}
}

// RouterDeps holds everything NewRouter wires together.
// Health, Metrics and Gatherer are optional.
type RouterDeps struct {
	Routes   []Route
	Checker  rbac.Checker
	Health   *HealthHandler
	Metrics  *middleware.Metrics
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// NewRouter builds the HTTP router. Each todo route runs the steps
// authorize, validate, handle; the first error ends the request.
func NewRouter(deps RouterDeps) http.Handler {
	r := mux.NewRouter()
	ew := errorWriter{log: deps.Logger}

	if deps.Metrics != nil {
		r.Use(mux.MiddlewareFunc(deps.Metrics.Middleware()))
	}

	for _, route := range deps.Routes {
		steps := []middleware.Step{
			middleware.Authorize(deps.Checker, route.Permission, deps.Logger),
			route.Schema.Check,
		}
		r.Handle(route.Path, pipeline(steps, route.Handle, ew)).
			Methods(route.Method).
			Name(route.Name)
	}

	if deps.Health != nil {
		r.HandleFunc("/live", deps.Health.Live).Methods(http.MethodGet)
		r.HandleFunc("/ready", deps.Health.Ready).Methods(http.MethodGet)
		r.HandleFunc("/health", deps.Health.Health).Methods(http.MethodGet)
	}
	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

func pipeline(steps []middleware.Step, handle HandlerFunc, ew errorWriter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next, err := middleware.RunSteps(r, steps...)
		if err != nil {
			ew.write(w, r, err)
			return
		}
		if err := handle(w, next); err != nil {
			ew.write(w, next, err)
		}
	})
}
