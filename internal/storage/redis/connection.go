package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/satwik073/Priscus-server/internal/storage"
)

type Options struct {
	Addr     string
	Password string
	DB       int
}

// Dial returns a DialFunc that creates a redis client and verifies it with PING.
func Dial(opt Options) storage.DialFunc[*goredis.Client] {
	return func(ctx context.Context) (*goredis.Client, error) {
		client := goredis.NewClient(&goredis.Options{
			Addr:     opt.Addr,
			Password: opt.Password,
			DB:       opt.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return client, nil
	}
}

func Close(client *goredis.Client) error {
	return client.Close()
}
