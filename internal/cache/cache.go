package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// DatesPrefix keys every cached available-dates payload so capacity
// changes can invalidate all month windows at once.
const DatesPrefix = "available-dates:"

// Cache wraps redis for two jobs: a short-TTL read cache for the
// available-dates listing, and the per-reference reconcile guard.
type Cache struct {
	rdb *redis.Client
	log zerolog.Logger
}

func New(addr, password string, log zerolog.Logger) *Cache {
	return &Cache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		log: log.With().Str("component", "cache").Logger(),
	}
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// GetJSON reports a miss (false, nil) when the key is absent.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, ttl).Err()
}

// InvalidatePrefix deletes every key under prefix. Best effort; a stale
// cache entry only lasts until its TTL anyway.
func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) {
	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			c.log.Warn().Err(err).Str("prefix", prefix).Msg("cache invalidation failed")
			return
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				c.log.Warn().Err(err).Msg("cache delete failed")
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}

// AcquireOnce takes a short-lived exclusive marker (SETNX). Used to
// serialize concurrent reconciliation polls for the same reference.
func (c *Cache) AcquireOnce(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return c.rdb.SetNX(ctx, key, 1, ttl).Result()
}

func (c *Cache) Release(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}
