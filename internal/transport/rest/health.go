package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/todo-backend/internal/transport/httputil"
)

const pingTimeout = 3 * time.Second

// storagePinger is satisfied by every todo storage backend.
type storagePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	storage     storagePinger
	storageName string
	version     string
	log         *slog.Logger
}

// NewHealthHandler creates a HealthHandler. storageName is the configured
// storage driver and keys the component in /health output.
func NewHealthHandler(storage storagePinger, storageName, version string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		storage:     storage,
		storageName: storageName,
		version:     version,
		log:         logger.With("handler", "health"),
	}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	_ = httputil.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 200 when the todo storage responds and 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	comp := h.pingStorage(r.Context())
	_ = httputil.WriteJSON(w, statusCode(comp), HealthResponse{Status: comp.Status, Timestamp: time.Now()})
}

// Health reports the storage component with its ping latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	comp := h.pingStorage(r.Context())
	_ = httputil.WriteJSON(w, statusCode(comp), HealthResponse{
		Status:     comp.Status,
		Version:    h.version,
		Components: map[string]CompStatus{h.storageName: comp},
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) pingStorage(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.storage.Ping(ctx); err != nil {
		h.log.WarnContext(ctx, "storage ping failed",
			slog.String("storage", h.storageName),
			slog.String("error", err.Error()),
		)
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusCode(c CompStatus) int {
	if c.Status != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
