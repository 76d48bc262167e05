package store

import (
	"context"
	"fmt"
	"time"

	"bookfinder/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewKV builds the backend selected by cfg.StorageBackend.
func NewKV(ctx context.Context, cfg *config.Config) (KV, error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		return NewFileKV(cfg.StateDir)
	case config.BackendSQLite:
		return NewSQLiteKV(cfg.SQLitePath)
	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("create db pool: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ping database: %w", err)
		}
		return NewPGKV(pool), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
}
