// Package storage selects the state backend named by the store config.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/jsamuelsen11/todo-store/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/todo-store/internal/adapters/storage/redisstore"
	"github.com/jsamuelsen11/todo-store/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen11/todo-store/internal/platform/config"
	"github.com/jsamuelsen11/todo-store/internal/ports"
)

// Backend is a state store that also reports health and owns resources.
type Backend interface {
	ports.StateStore
	ports.HealthChecker
	io.Closer
}

// Open builds the backend for cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig) (Backend, error) {
	var (
		backend Backend
		err     error
	)
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverSQLite:
		backend, err = sqlstore.OpenSQLite(ctx, cfg.SQLite.Path)
	case config.DriverPostgres:
		backend, err = sqlstore.OpenPostgres(ctx, cfg.Postgres.DSN)
	case config.DriverRedis:
		backend, err = redisstore.Open(ctx, cfg.Redis)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Driver, err)
	}
	return backend, nil
}
