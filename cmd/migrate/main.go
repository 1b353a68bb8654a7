// Command migrate applies or inspects the PostgreSQL schema migrations
// embedded in the binary.
//
// Usage:
//
//	migrate up
//	migrate status
//
// Configuration is read the same way as the server (CONFIG_PATH, env).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/todo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/todo-backend/internal/app"
	"github.com/heartmarshall/todo-backend/internal/config"
	"github.com/heartmarshall/todo-backend/migrations"
)

func main() {
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	cmd := flag.Arg(0)
	if cmd != "up" && cmd != "status" {
		fmt.Fprintln(os.Stderr, "Usage: migrate [--timeout=2m] up|status")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Storage.Driver != config.DriverPostgres {
		log.Fatalf("migrations only apply to the %s driver, configured driver is %q", config.DriverPostgres, cfg.Storage.Driver)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	switch cmd {
	case "up":
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			logger.Error("migrate up failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrations applied")
	case "status":
		current, latest, err := postgres.MigrationStatus(ctx, pool, migrations.FS)
		if err != nil {
			logger.Error("migration status failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("current version: %d\nlatest version:  %d\n", current, latest)
		if current < latest {
			os.Exit(3)
		}
	}
}
