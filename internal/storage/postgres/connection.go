package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/satwik073/Priscus-server/internal/storage"
)

type Options struct {
	DSN      string
	MaxConns int
	MinConns int
	PingTO   time.Duration
}

// Dial returns a DialFunc that opens a pgx pool and fails fast on ping.
func Dial(opt Options) storage.DialFunc[*pgxpool.Pool] {
	return func(ctx context.Context) (*pgxpool.Pool, error) {
		if opt.DSN == "" {
			return nil, fmt.Errorf("DB_DSN is not set")
		}

		cfg, err := pgxpool.ParseConfig(opt.DSN)
		if err != nil {
			return nil, fmt.Errorf("parse dsn: %w", err)
		}
		if opt.MaxConns > 0 {
			cfg.MaxConns = int32(opt.MaxConns)
		}
		if opt.MinConns > 0 {
			cfg.MinConns = int32(opt.MinConns)
		}
		cfg.MaxConnIdleTime = 5 * time.Minute
		cfg.HealthCheckPeriod = 30 * time.Second

		pool, err := pgxpool.NewWithConfig(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}

		pingTO := opt.PingTO
		if pingTO == 0 {
			pingTO = 2 * time.Second
		}
		pctx, cancel := context.WithTimeout(ctx, pingTO)
		defer cancel()

		if err := pool.Ping(pctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("db ping: %w", err)
		}

		return pool, nil
	}
}

func Close(pool *pgxpool.Pool) error {
	pool.Close()
	return nil
}
