package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/todo-backend/internal/adapter/memory"
	"github.com/heartmarshall/todo-backend/internal/adapter/mongodb"
	mongotodo "github.com/heartmarshall/todo-backend/internal/adapter/mongodb/todo"
	"github.com/heartmarshall/todo-backend/internal/adapter/postgres"
	pgtodo "github.com/heartmarshall/todo-backend/internal/adapter/postgres/todo"
	"github.com/heartmarshall/todo-backend/internal/config"
	todosvc "github.com/heartmarshall/todo-backend/internal/service/todo"
	"github.com/heartmarshall/todo-backend/migrations"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// backend is an opened storage driver with the todo service on top of it.
type backend struct {
	todos  *todosvc.Service
	pinger pinger
	name   string
	close  func()
}

// openBackend connects the configured storage driver and builds the todo
// service over it.
func openBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*backend, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
				pool.Close()
				return nil, fmt.Errorf("auto migrate: %w", err)
			}
		}
		return &backend{
			todos:  todosvc.NewService(logger, pgtodo.New(pool)),
			pinger: pool,
			name:   config.DriverPostgres,
			close:  pool.Close,
		}, nil

	case config.DriverMongo:
		client, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		repo := mongotodo.New(client.Database(cfg.Mongo.Database))
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("ensure indexes: %w", err)
		}
		return &backend{
			todos:  todosvc.NewService(logger, repo),
			pinger: mongodb.Pinger{Client: client},
			name:   config.DriverMongo,
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					logger.Warn("mongo disconnect", slog.String("error", err.Error()))
				}
			},
		}, nil

	case config.DriverMemory:
		repo := memory.NewTodoRepo()
		return &backend{
			todos:  todosvc.NewService(logger, repo),
			pinger: repo,
			name:   config.DriverMemory,
			close:  func() {},
		}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
