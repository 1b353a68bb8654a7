package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/todo-backend/internal/auth"
	"github.com/heartmarshall/todo-backend/internal/config"
	"github.com/heartmarshall/todo-backend/internal/rbac"
	"github.com/heartmarshall/todo-backend/internal/transport/middleware"
	"github.com/heartmarshall/todo-backend/internal/transport/rest"
	"github.com/heartmarshall/todo-backend/internal/transport/validation"
)

// Run is the application entry point. It loads configuration, opens the
// storage backend, and serves HTTP until ctx is cancelled, then shuts the
// server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
	)

	be, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer be.close()

	handler, stop := newHandler(cfg, be, logger)
	defer stop()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// newHandler assembles the router and the global middleware chain:
// request id, panic recovery, CORS, rate limiting, authentication, logging.
// stop releases the background work the chain started.
func newHandler(cfg *config.Config, be *backend, logger *slog.Logger) (handler http.Handler, stop func()) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	router := rest.NewRouter(rest.RouterDeps{
		Routes:   rest.Routes(rest.NewTodoHandler(be.todos, logger), validation.NewSchemas(be.todos.ValidID)),
		Checker:  rbac.DefaultTable(),
		Health:   rest.NewHealthHandler(be.pinger, be.name, Version, logger),
		Metrics:  middleware.NewMetrics(reg),
		Gatherer: reg,
		Logger:   logger,
	})

	var limit middleware.Middleware
	stop = func() {}
	if cfg.RateLimit.RequestsPerMinute > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, logger)
		stop = limiter.Stop
		limit = limiter.Limit()
	}

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limit,
		middleware.Auth(tokens, logger),
		middleware.Logger(logger),
	)
	return chain(router), stop
}
