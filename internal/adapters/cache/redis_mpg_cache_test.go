package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testMPGCache(t *testing.T) (*RedisMPGCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewRedisMPGCache(rdb, 24*time.Hour), mr
}

func TestMPGCacheRoundTrip(t *testing.T) {
	c, _ := testMPGCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, 2017, "Honda", "Civic", 34); err != nil {
		t.Fatalf("put: %v", err)
	}

	mpg, found, err := c.Get(ctx, 2017, "Honda", "Civic")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatal("expected cache hit")
	}
	if mpg != 34 {
		t.Fatalf("mpg = %v, want 34", mpg)
	}
}

func TestMPGCacheKeyIsCaseInsensitive(t *testing.T) {
	c, _ := testMPGCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, 2017, "HONDA", "CIVIC", 34); err != nil {
		t.Fatalf("put: %v", err)
	}

	mpg, found, err := c.Get(ctx, 2017, "honda", "civic")
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if mpg != 34 {
		t.Fatalf("mpg = %v, want 34", mpg)
	}
}

func TestMPGCacheMiss(t *testing.T) {
	c, _ := testMPGCache(t)

	_, found, err := c.Get(context.Background(), 2020, "Toyota", "Corolla")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatal("expected cache miss")
	}
}

func TestMPGCacheEntriesExpire(t *testing.T) {
	c, mr := testMPGCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, 2017, "Honda", "Civic", 34); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(25 * time.Hour)

	_, found, err := c.Get(ctx, 2017, "Honda", "Civic")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatal("expected entry to expire past the TTL")
	}
}
