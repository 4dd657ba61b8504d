package efficiency

import (
	"context"
	"log"

	"trip-cost-service/internal/adapters/cache"
	"trip-cost-service/internal/ports"
)

// CachedSource wraps an EfficiencySource with the Redis MPG cache.
// Cache failures are logged and fall through to the inner source.
type CachedSource struct {
	Inner ports.EfficiencySource
	Cache *cache.RedisMPGCache
}

func NewCachedSource(inner ports.EfficiencySource, c *cache.RedisMPGCache) *CachedSource {
	return &CachedSource{Inner: inner, Cache: c}
}

func (s *CachedSource) CombinedMPG(ctx context.Context, year int, make, model string) (float64, error) {
	if s.Cache != nil {
		mpg, ok, err := s.Cache.Get(ctx, year, make, model)
		if err != nil {
			log.Printf("mpg cache read failed: %v", err)
		} else if ok {
			return mpg, nil
		}
	}

	mpg, err := s.Inner.CombinedMPG(ctx, year, make, model)
	if err != nil {
		return 0, err
	}

	if s.Cache != nil {
		if err := s.Cache.Put(ctx, year, make, model, mpg); err != nil {
			log.Printf("mpg cache write failed: %v", err)
		}
	}

	return mpg, nil
}
