package persistence

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/khoahotran/cvos/internal/application/service"
	"github.com/khoahotran/cvos/internal/config"
	"github.com/khoahotran/cvos/pkg/logger"
)

const (
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// NewStore opens the key-value store selected by store.driver. The returned
// closer releases the underlying connection.
func NewStore(ctx context.Context, cfg config.Config, log logger.Logger) (service.KeyValueStore, func(), error) {
	log.Info("Opening key-value store", zap.String("driver", cfg.Store.Driver))

	switch cfg.Store.Driver {
	case DriverRedis, "":
		rdb, err := NewRedisClient(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisStore(rdb), func() { _ = rdb.Close() }, nil
	case DriverPostgres:
		pool, err := NewPostgresPool(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		if err := EnsureKVSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return NewPostgresStore(pool), pool.Close, nil
	case DriverMemory:
		return NewMemoryStore(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
