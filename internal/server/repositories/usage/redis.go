package usage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/astroproof/internal/timex"
)

// redisClient is the subset of redis.Cmdable the counter needs.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
}

// RedisRepository implements Repository with one INCR-ed key per identity
// and day. Keys expire at the end of their UTC day.
type RedisRepository struct {
	client    redisClient
	namespace string
}

func NewRedisRepository(client redisClient, namespace string) *RedisRepository {
	return &RedisRepository{client: client, namespace: namespace}
}

func createKey(namespace, identity string, day time.Time) string {
	return fmt.Sprintf("%s:usage:%s:%s", namespace, identity, timex.Day(day))
}

func (r *RedisRepository) Get(ctx context.Context, identity string, day time.Time) (int, error) {
	v, err := r.client.Get(ctx, createKey(r.namespace, identity, day)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis error: %w", err)
	}

	count, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("redis error: bad counter %q: %w", v, err)
	}
	return count, nil
}

// Increment bumps the counter and sets its expiry in one MULTI/EXEC
// transaction, so a counter never outlives its day.
func (r *RedisRepository) Increment(ctx context.Context, identity string, day time.Time) (int, error) {
	key := createKey(r.namespace, identity, day)

	var incr *redis.IntCmd
	if _, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireAt(ctx, key, timex.EndOfDay(day))
		return nil
	}); err != nil {
		return 0, fmt.Errorf("redis error: %w", err)
	}

	return int(incr.Val()), nil
}
