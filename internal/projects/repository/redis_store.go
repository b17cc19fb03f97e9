package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/satwik073/Priscus-server/internal/projects/domain"
	"github.com/satwik073/Priscus-server/internal/storage"
	"github.com/satwik073/Priscus-server/internal/storage/redis"
)

const (
	projectKeyPrefix = "priscus:project:"
	projectIndexKey  = "priscus:projects"
	maxUpdateRetries = 3
)

func projectKey(id string) string { return projectKeyPrefix + id }

// RedisStore keeps each project as a JSON blob and a sorted set of ids
// scored by creation time.
type RedisStore struct {
	conn *storage.Lazy[*goredis.Client]
	now  Clock
}

func NewRedisStore(opt redis.Options, lazy storage.Options) *RedisStore {
	return newRedisStore(storage.NewLazy(redis.Dial(opt), redis.Close, lazy))
}

func newRedisStore(conn *storage.Lazy[*goredis.Client]) *RedisStore {
	return &RedisStore{conn: conn, now: utcNow}
}

func (s *RedisStore) Connect(ctx context.Context) error {
	_, err := s.conn.Connect(ctx)
	return err
}

func (s *RedisStore) Create(ctx context.Context, p *domain.Project) (string, error) {
	client, err := s.conn.Get(ctx)
	if err != nil {
		return "", err
	}

	prepareNew(p, s.now())
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode project: %w", err)
	}

	pipe := client.TxPipeline()
	pipe.Set(ctx, projectKey(p.ID), b, 0)
	pipe.ZAdd(ctx, projectIndexKey, goredis.Z{Score: float64(p.CreatedAt.UnixMicro()), Member: p.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("insert project: %w", err)
	}
	return p.ID, nil
}

func (s *RedisStore) Update(ctx context.Context, id string, u domain.ProjectUpdate) error {
	id, err := domain.NormalizeID(id)
	if err != nil {
		return err
	}
	client, err := s.conn.Get(ctx)
	if err != nil {
		return err
	}

	key := projectKey(id)
	txf := func(tx *goredis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, goredis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}

		var p domain.Project
		if err := json.Unmarshal(raw, &p); err != nil {
			return fmt.Errorf("decode project: %w", err)
		}
		p.Apply(u, s.now())

		b, err := json.Marshal(&p)
		if err != nil {
			return fmt.Errorf("encode project: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, b, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err = client.Watch(ctx, txf, key)
		if !errors.Is(err, goredis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*domain.Project, error) {
	id, err := domain.NormalizeID(id)
	if err != nil {
		return nil, err
	}
	client, err := s.conn.Get(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := client.Get(ctx, projectKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	var p domain.Project
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	return &p, nil
}

func (s *RedisStore) List(ctx context.Context) ([]domain.Project, error) {
	client, err := s.conn.Get(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := client.ZRevRange(ctx, projectIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Project{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = projectKey(id)
	}
	vals, err := client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	out := make([]domain.Project, 0, len(vals))
	for _, v := range vals {
		// Index entries can outlive their blob between a delete's two commands.
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var p domain.Project
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	id, err := domain.NormalizeID(id)
	if err != nil {
		return err
	}
	client, err := s.conn.Get(ctx)
	if err != nil {
		return err
	}

	_, err = client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, projectKey(id))
		pipe.ZRem(ctx, projectIndexKey, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	client, err := s.conn.Get(ctx)
	if err != nil {
		return err
	}
	return client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.conn.Close()
}
