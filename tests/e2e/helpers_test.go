//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	pgtodo "github.com/heartmarshall/todo-backend/internal/adapter/postgres/todo"
	"github.com/heartmarshall/todo-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/todo-backend/internal/auth"
	"github.com/heartmarshall/todo-backend/internal/config"
	"github.com/heartmarshall/todo-backend/internal/rbac"
	todosvc "github.com/heartmarshall/todo-backend/internal/service/todo"
	"github.com/heartmarshall/todo-backend/internal/transport/middleware"
	"github.com/heartmarshall/todo-backend/internal/transport/rest"
	"github.com/heartmarshall/todo-backend/internal/transport/validation"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	tokens *auth.TokenManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper). The todos table is emptied
// first so each test starts from a known state.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	testhelper.Truncate(t, pool)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	tokens := auth.NewTokenManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)
	svc := todosvc.NewService(logger, pgtodo.New(pool))
	reg := prometheus.NewRegistry()

	router := rest.NewRouter(rest.RouterDeps{
		Routes:   rest.Routes(rest.NewTodoHandler(svc, logger), validation.NewSchemas(svc.ValidID)),
		Checker:  rbac.DefaultTable(),
		Health:   rest.NewHealthHandler(pool, config.DriverPostgres, "test-version", logger),
		Metrics:  middleware.NewMetrics(reg),
		Gatherer: reg,
		Logger:   logger,
	})

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		}),
		middleware.Auth(tokens, logger),
		middleware.Logger(logger),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		tokens: tokens,
	}
}

// token mints a bearer token for callerID with the given role.
func (ts *testServer) token(t *testing.T, callerID, role string) string {
	t.Helper()
	tok, err := ts.tokens.Issue(callerID, role)
	require.NoError(t, err)
	return tok
}

// do sends a JSON request and returns the status and the decoded body
// (nil for empty bodies).
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var rd *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(data)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	if resp.ContentLength != 0 {
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			result = nil
		}
	}
	return resp.StatusCode, result
}

// createTodo creates a todo through the API and returns its id.
func (ts *testServer) createTodo(t *testing.T, token, title string) string {
	t.Helper()
	status, body := ts.do(t, http.MethodPost, "/todos", token, map[string]any{
		"title":       title,
		"description": "e2e " + title,
	})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)
	id, ok := body["id"].(string)
	require.True(t, ok, "expected id string")
	return id
}
