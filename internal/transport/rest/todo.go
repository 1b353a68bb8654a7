package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/todo-backend/internal/domain"
	todosvc "github.com/heartmarshall/todo-backend/internal/service/todo"
	"github.com/heartmarshall/todo-backend/internal/transport/httputil"
	"github.com/heartmarshall/todo-backend/internal/transport/validation"
	"github.com/heartmarshall/todo-backend/pkg/ctxutil"
)

//go:generate moq -out todo_service_mock_test.go -pkg rest . todoService

type todoService interface {
	Create(ctx context.Context, input todosvc.CreateInput, ownerID string) (*domain.Todo, error)
	Query(ctx context.Context, filter domain.TodoFilter, opts domain.QueryOptions) (*domain.TodoPage, error)
	GetByID(ctx context.Context, id string) (*domain.Todo, error)
	UpdateByID(ctx context.Context, id string, params domain.TodoUpdateParams) (*domain.Todo, error)
	ToggleCompletedByID(ctx context.Context, id string) (*domain.Todo, error)
	DeleteByID(ctx context.Context, id string) (*domain.Todo, error)
}

// HandlerFunc is the last step of a route. Errors go to the error writer.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// TodoHandler serves the todo REST endpoints.
type TodoHandler struct {
	svc todoService
	log *slog.Logger
}

// NewTodoHandler creates a TodoHandler.
func NewTodoHandler(svc todoService, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, log: logger.With("handler", "todo")}
}

type todoResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type pageResponse struct {
	Results      []todoResponse `json:"results"`
	Page         int            `json:"page"`
	Limit        int            `json:"limit"`
	TotalPages   int            `json:"totalPages"`
	TotalResults int            `json:"totalResults"`
}

var errNoValues = errors.New("rest: request reached handler without validated values")

func values(r *http.Request) (validation.Values, error) {
	v, ok := validation.FromContext(r.Context())
	if !ok {
		return validation.Values{}, errNoValues
	}
	return v, nil
}

// Create handles POST /todos.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) error {
	v, err := values(r)
	if err != nil {
		return err
	}
	t, err := h.svc.Create(r.Context(), todosvc.CreateInput{
		Title:       v.Body.Title,
		Description: v.Body.Description,
	}, ctxutil.CallerIDFromCtx(r.Context()))
	if err != nil {
		return err
	}
	h.respond(w, r, http.StatusCreated, toTodoResponse(t))
	return nil
}

// List handles GET /todos.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) error {
	v, err := values(r)
	if err != nil {
		return err
	}
	page, err := h.svc.Query(r.Context(), v.Query.Filter, v.Query.Options)
	if err != nil {
		return err
	}
	resp := pageResponse{
		Results:      make([]todoResponse, len(page.Results)),
		Page:         page.Page,
		Limit:        page.Limit,
		TotalPages:   page.TotalPages,
		TotalResults: page.TotalResults,
	}
	for i, t := range page.Results {
		resp.Results[i] = toTodoResponse(t)
	}
	h.respond(w, r, http.StatusOK, resp)
	return nil
}

// Get handles GET /todos/{todoId}.
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) error {
	v, err := values(r)
	if err != nil {
		return err
	}
	t, err := h.svc.GetByID(r.Context(), v.ID)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrTodoNotFound
	}
	h.respond(w, r, http.StatusOK, toTodoResponse(t))
	return nil
}

// Update handles PATCH /todos/{todoId}.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) error {
	v, err := values(r)
	if err != nil {
		return err
	}
	t, err := h.svc.UpdateByID(r.Context(), v.ID, domain.TodoUpdateParams{
		Title:       &v.Body.Title,
		Description: &v.Body.Description,
	})
	if err != nil {
		return err
	}
	h.respond(w, r, http.StatusOK, toTodoResponse(t))
	return nil
}

// ToggleCompleted handles PATCH /todos/{todoId}/completed.
func (h *TodoHandler) ToggleCompleted(w http.ResponseWriter, r *http.Request) error {
	v, err := values(r)
	if err != nil {
		return err
	}
	if _, err := h.svc.ToggleCompletedByID(r.Context(), v.ID); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// Delete handles DELETE /todos/{todoId}.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	v, err := values(r)
	if err != nil {
		return err
	}
	if _, err := h.svc.DeleteByID(r.Context(), v.ID); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// respond writes a success body. The status is already on the wire when
// encoding fails, so the failure is only logged.
func (h *TodoHandler) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := httputil.WriteJSON(w, status, v); err != nil {
		h.log.WarnContext(r.Context(), "write response",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
	}
}

func toTodoResponse(t *domain.Todo) todoResponse {
	return todoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
