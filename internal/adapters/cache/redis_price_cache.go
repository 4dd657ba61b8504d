package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"trip-cost-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisPriceCache holds resolved (region, grade) -> price lookups with a
// short TTL. Pump prices drift daily, so entries expire quickly; a stale
// read is still closer to reality than the hard-coded fallback.
type RedisPriceCache struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewRedisPriceCache(rdb *redis.Client, ttl time.Duration) *RedisPriceCache {
	return &RedisPriceCache{RDB: rdb, TTL: ttl}
}

func priceKey(region domain.Region, grade domain.FuelGrade) string {
	return fmt.Sprintf("fuelprice:%s:%s", region, grade)
}

// Get returns the cached price and whether the key was present.
func (c *RedisPriceCache) Get(
	ctx context.Context,
	region domain.Region,
	grade domain.FuelGrade,
) (float64, bool, error) {
	if c.RDB == nil {
		return 0, false, errors.New("price cache: redis client is nil")
	}

	raw, err := c.RDB.Get(ctx, priceKey(region, grade)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get price cache: %w", err)
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("get price cache: parse %q: %w", raw, err)
	}

	return price, true, nil
}

// Put stores a resolved price under the configured TTL.
func (c *RedisPriceCache) Put(
	ctx context.Context,
	region domain.Region,
	grade domain.FuelGrade,
	price float64,
) error {
	if c.RDB == nil {
		return errors.New("price cache: redis client is nil")
	}

	if price <= 0 {
		return fmt.Errorf("insert price cache: price must be positive, got %f", price)
	}

	val := strconv.FormatFloat(price, 'f', -1, 64)
	if err := c.RDB.Set(ctx, priceKey(region, grade), val, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert price cache: %w", err)
	}

	return nil
}
