package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"trip-cost-service/internal/domain"
	"trip-cost-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

// AveragePrice resolves one price per distinct region and returns the flat
// arithmetic mean. Duplicate and empty regions are skipped before pricing,
// so the result is independent of input order and multiplicity.
//
// Regions without a resolvable price are dropped from the average, not
// treated as zero; failures are logged so they stay observable. When no
// region resolves, ok is false and the caller applies the fallback price.
func AveragePrice(
	ctx context.Context,
	pricer ports.RegionPricer,
	regions []domain.Region,
	grade domain.FuelGrade,
) (price float64, ok bool) {
	seen := make(map[domain.Region]struct{}, len(regions))
	distinct := make([]domain.Region, 0, len(regions))
	for _, r := range regions {
		if r == "" {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		distinct = append(distinct, r)
	}

	if len(distinct) == 0 {
		return 0, false
	}

	var (
		mu     sync.Mutex
		prices []float64
	)

	// Region lookups share no state and may run concurrently; the limit
	// keeps external sources from being hammered on long trips.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(5)

	for _, region := range distinct {
		region := region
		g.Go(func() error {
			p, err := pricer.PriceForRegion(gctx, region, grade)
			if err != nil {
				if !errors.Is(err, domain.ErrPriceUnavailable) {
					log.Printf("price lookup failed: region=%s grade=%s err=%v", region, grade, err)
				}
				return nil
			}

			mu.Lock()
			prices = append(prices, p)
			mu.Unlock()
			return nil
		})
	}

	// Goroutines never return errors; dropped regions are the failure mode.
	_ = g.Wait()

	if len(prices) == 0 {
		return 0, false
	}

	sum := 0.0
	for _, p := range prices {
		sum += p
	}

	return sum / float64(len(prices)), true
}
