package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend is a Backend implementation over github.com/redis/go-redis/v9,
// grounded on WeKnora's webSearchStateService (Get/Set with a *redis.Client,
// errors treated as "not found" rather than propagated). Used when the
// pipeline runs behind multiple processes that must share one cache.
type RedisBackend struct {
	client *redis.Client
}

// NewRedisBackend wraps an already-constructed *redis.Client.
func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

func (b *RedisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := b.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (b *RedisBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return b.client.Set(ctx, key, value, 0).Err()
	}
	return b.client.Set(ctx, key, value, ttl).Err()
}

func (b *RedisBackend) Delete(ctx context.Context, key string) error {
	return b.client.Del(ctx, key).Err()
}

// DeleteMatching uses SCAN rather than KEYS so a large shared Redis instance
// is never blocked by a single pattern invalidation.
func (b *RedisBackend) DeleteMatching(ctx context.Context, pattern string) error {
	iter := b.client.Scan(ctx, 0, pattern, 100).Iterator()
	const batchSize = 256
	batch := make([]string, 0, batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		err := b.client.Del(ctx, batch...).Err()
		batch = batch[:0]
		return err
	}

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return flush()
}

func (b *RedisBackend) Flush(ctx context.Context) error {
	return b.client.FlushDB(ctx).Err()
}

func (b *RedisBackend) Close() error {
	return b.client.Close()
}
