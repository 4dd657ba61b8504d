package fuelprice

import (
	"context"
	"testing"
	"time"

	"trip-cost-service/internal/adapters/cache"
	"trip-cost-service/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type countingPricer struct {
	price float64
	calls int
}

func (c *countingPricer) PriceForRegion(_ context.Context, _ domain.Region, _ domain.FuelGrade) (float64, error) {
	c.calls++
	return c.price, nil
}

func TestCachedPricerHitsCacheOnSecondLookup(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	inner := &countingPricer{price: 3.25}
	p := NewCachedPricer(inner, cache.NewRedisPriceCache(rdb, time.Hour))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		got, err := p.PriceForRegion(ctx, "PA", domain.GradeRegular)
		if err != nil {
			t.Fatalf("lookup %d: %v", i, err)
		}
		if got != 3.25 {
			t.Fatalf("lookup %d: price = %v, want 3.25", i, got)
		}
	}

	if inner.calls != 1 {
		t.Fatalf("inner pricer called %d times, want 1", inner.calls)
	}
}

func TestCachedPricerNilCachePassesThrough(t *testing.T) {
	inner := &countingPricer{price: 2.99}
	p := NewCachedPricer(inner, nil)

	got, err := p.PriceForRegion(context.Background(), "OH", domain.GradeDiesel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2.99 {
		t.Fatalf("price = %v, want 2.99", got)
	}
	if inner.calls != 1 {
		t.Fatalf("inner pricer called %d times, want 1", inner.calls)
	}
}
