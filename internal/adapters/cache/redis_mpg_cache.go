package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisMPGCache holds (year, make, model) -> combined MPG lookups.
// Vehicle catalogs rarely change, so the TTL is long (24h by default).
type RedisMPGCache struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewRedisMPGCache(rdb *redis.Client, ttl time.Duration) *RedisMPGCache {
	return &RedisMPGCache{RDB: rdb, TTL: ttl}
}

func mpgKey(year int, make, model string) string {
	return fmt.Sprintf("mpg:%d:%s:%s", year, strings.ToLower(make), strings.ToLower(model))
}

// Get returns the cached rating and whether the key was present.
func (c *RedisMPGCache) Get(ctx context.Context, year int, make, model string) (float64, bool, error) {
	if c.RDB == nil {
		return 0, false, errors.New("mpg cache: redis client is nil")
	}

	raw, err := c.RDB.Get(ctx, mpgKey(year, make, model)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get mpg cache: %w", err)
	}

	mpg, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("get mpg cache: parse %q: %w", raw, err)
	}

	return mpg, true, nil
}

// Put stores a resolved rating under the configured TTL.
func (c *RedisMPGCache) Put(ctx context.Context, year int, make, model string, mpg float64) error {
	if c.RDB == nil {
		return errors.New("mpg cache: redis client is nil")
	}

	if mpg <= 0 {
		return fmt.Errorf("insert mpg cache: rating must be positive, got %f", mpg)
	}

	val := strconv.FormatFloat(mpg, 'f', -1, 64)
	if err := c.RDB.Set(ctx, mpgKey(year, make, model), val, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert mpg cache: %w", err)
	}

	return nil
}
