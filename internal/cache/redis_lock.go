package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/nerobarber/booking-api/internal/lock"
)

// RedisLocker implements lock.Locker with SETNX, so the in-flight guard
// holds across multiple API instances sharing one redis.
type RedisLocker struct {
	client *redis.Client
	prefix string
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{
		client: client,
		prefix: "nero:lock:",
	}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, l.prefix+key, 1, ttl).Result()
}

func (l *RedisLocker) Release(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.prefix+key).Err()
}

var _ lock.Locker = (*RedisLocker)(nil)
