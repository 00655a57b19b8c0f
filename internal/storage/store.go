package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/infrastructure/config"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/logging"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/resilience"
)

var ErrNotFound = errors.New("key not found")

// Store is a flat string-keyed slot store that survives process restarts.
// Set replaces the whole value for a key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open builds the store selected by cfg.Backend
func Open(ctx context.Context, cfg config.StorageConfig, log *zap.Logger) (Store, error) {
	log = logging.OrNop(log)

	var (
		store Store
		err   error
	)
	switch cfg.Backend {
	case "memory":
		store = NewMemory()
	case "file":
		store, err = NewFile(cfg.Path)
	case "sqlite":
		store, err = OpenSQLite(ctx, cfg.Path)
	case "redis":
		store, err = OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPrefix)
	default:
		return nil, fmt.Errorf("unknown save backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}

	if cfg.Breaker && cfg.Backend == "redis" {
		store = NewGuard(store, resilience.Settings{
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts resilience.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from, to resilience.State) {
				log.Warn("Storage breaker changed state",
					zap.String("breaker", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
			},
		})
	}

	log.Info("Save store opened",
		zap.String("backend", cfg.Backend),
		zap.String("path", cfg.Path),
	)
	return store, nil
}
