package store

import (
	"context"
	"errors"
	"fmt"
	errs "github.com/osmike/cronpick/internal/error"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces expressions stored in Redis.
const DefaultKeyPrefix = "cronpick:expr:"

// KV is the subset of the Redis client the host needs.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Redis keeps the expression of one key under prefix+key.
type Redis struct {
	client  KV
	key     string
	timeout time.Duration
}

// NewRedis returns a host bound to prefix+key. An empty prefix uses DefaultKeyPrefix.
func NewRedis(client KV, prefix, key string) (*Redis, error) {
	if key == "" {
		return nil, errs.ErrEmptyKey
	}
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Redis{client: client, key: prefix + key, timeout: 5 * time.Second}, nil
}

// Value returns the stored expression, or "" if the key does not exist.
func (r *Redis) Value() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	expr, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", r.key, err)
	}
	return expr, nil
}

func (r *Redis) SetValue(expr string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.client.Set(ctx, r.key, expr, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", r.key, err)
	}
	return nil
}
