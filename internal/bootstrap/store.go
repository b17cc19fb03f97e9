package bootstrap

import (
	"fmt"

	"github.com/satwik073/Priscus-server/config"
	"github.com/satwik073/Priscus-server/internal/projects/repository"
	"github.com/satwik073/Priscus-server/internal/storage"
	"github.com/satwik073/Priscus-server/internal/storage/postgres"
	"github.com/satwik073/Priscus-server/internal/storage/redis"
)

// OpenStore builds the project store for the configured driver. No
// connection is made here; the store connects on Connect or first use.
func OpenStore(cfg config.StoreConfig) (repository.Store, error) {
	lazy := storage.Options{
		AutoConnect:    cfg.AutoConnect,
		ConnectTimeout: cfg.ConnectTimeout,
	}

	switch cfg.Driver {
	case config.DriverPostgres:
		return repository.NewPostgresStore(postgres.Options{
			DSN:      cfg.DSN,
			MaxConns: cfg.MaxConns,
			MinConns: cfg.MinConns,
		}, lazy), nil
	case config.DriverRedis:
		return repository.NewRedisStore(redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, lazy), nil
	case config.DriverSQLite:
		return repository.NewSQLiteStore(cfg.SQLitePath, lazy), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Driver)
	}
}
