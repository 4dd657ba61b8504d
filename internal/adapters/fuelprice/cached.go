package fuelprice

import (
	"context"
	"log"

	"trip-cost-service/internal/adapters/cache"
	"trip-cost-service/internal/domain"
	"trip-cost-service/internal/ports"
)

// CachedPricer wraps a RegionPricer with the Redis price cache.
// Cache failures are logged and fall through to the inner strategy;
// the cache is an optimization, never a correctness dependency.
type CachedPricer struct {
	Inner ports.RegionPricer
	Cache *cache.RedisPriceCache
}

func NewCachedPricer(inner ports.RegionPricer, c *cache.RedisPriceCache) *CachedPricer {
	return &CachedPricer{Inner: inner, Cache: c}
}

func (p *CachedPricer) PriceForRegion(
	ctx context.Context,
	region domain.Region,
	grade domain.FuelGrade,
) (float64, error) {
	if p.Cache != nil {
		price, ok, err := p.Cache.Get(ctx, region, grade)
		if err != nil {
			log.Printf("price cache read failed: %v", err)
		} else if ok {
			return price, nil
		}
	}

	price, err := p.Inner.PriceForRegion(ctx, region, grade)
	if err != nil {
		return 0, err
	}

	if p.Cache != nil {
		if err := p.Cache.Put(ctx, region, grade, price); err != nil {
			log.Printf("price cache write failed: %v", err)
		}
	}

	return price, nil
}
