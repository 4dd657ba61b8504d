package services

import (
	"context"
	"math"
	"sync"
	"testing"

	"trip-cost-service/internal/domain"
)

// fakePricer serves fixed prices and counts lookups per region.
type fakePricer struct {
	mu     sync.Mutex
	prices map[domain.Region]float64
	calls  map[domain.Region]int
}

func newFakePricer(prices map[domain.Region]float64) *fakePricer {
	return &fakePricer{prices: prices, calls: map[domain.Region]int{}}
}

func (f *fakePricer) PriceForRegion(_ context.Context, region domain.Region, _ domain.FuelGrade) (float64, error) {
	f.mu.Lock()
	f.calls[region]++
	f.mu.Unlock()

	p, ok := f.prices[region]
	if !ok {
		return 0, domain.ErrPriceUnavailable
	}
	return p, nil
}

func TestAveragePriceFlatMeanOfDistinctRegions(t *testing.T) {
	pricer := newFakePricer(map[domain.Region]float64{
		"AZ": 3.00,
		"CA": 5.00,
		"NV": 4.00,
	})

	price, ok := AveragePrice(context.Background(), pricer, []domain.Region{"AZ", "CA", "NV"}, domain.GradeRegular)
	if !ok {
		t.Fatal("expected a resolved price")
	}
	if math.Abs(price-4.00) > 1e-12 {
		t.Fatalf("price = %v, want 4.00", price)
	}
}

func TestAveragePriceIgnoresDuplicatesAndOrder(t *testing.T) {
	prices := map[domain.Region]float64{"AZ": 3.00, "CA": 5.00}

	inputs := [][]domain.Region{
		{"AZ", "CA"},
		{"CA", "AZ"},
		{"AZ", "AZ", "CA", "AZ", "CA"},
	}

	for _, regions := range inputs {
		pricer := newFakePricer(prices)
		price, ok := AveragePrice(context.Background(), pricer, regions, domain.GradeRegular)
		if !ok {
			t.Fatalf("regions %v: expected a resolved price", regions)
		}
		if math.Abs(price-4.00) > 1e-12 {
			t.Fatalf("regions %v: price = %v, want 4.00", regions, price)
		}
		for region, n := range pricer.calls {
			if n != 1 {
				t.Fatalf("regions %v: region %s priced %d times, want 1", regions, region, n)
			}
		}
	}
}

func TestAveragePriceDropsUnresolvableRegions(t *testing.T) {
	pricer := newFakePricer(map[domain.Region]float64{"AZ": 3.50})

	price, ok := AveragePrice(context.Background(), pricer, []domain.Region{"AZ", "CA"}, domain.GradeRegular)
	if !ok {
		t.Fatal("expected a resolved price")
	}
	// CA is dropped, not averaged in as zero.
	if math.Abs(price-3.50) > 1e-12 {
		t.Fatalf("price = %v, want 3.50", price)
	}
}

func TestAveragePriceAbsentWhenNothingResolves(t *testing.T) {
	pricer := newFakePricer(nil)

	if _, ok := AveragePrice(context.Background(), pricer, []domain.Region{"AZ", "CA"}, domain.GradeRegular); ok {
		t.Fatal("expected absent result")
	}
}

func TestAveragePriceSkipsEmptyRegions(t *testing.T) {
	pricer := newFakePricer(map[domain.Region]float64{"AZ": 3.00})

	price, ok := AveragePrice(context.Background(), pricer, []domain.Region{"", "AZ", ""}, domain.GradeRegular)
	if !ok || math.Abs(price-3.00) > 1e-12 {
		t.Fatalf("got (%v, %v), want (3.00, true)", price, ok)
	}
	if pricer.calls[""] != 0 {
		t.Fatal("empty region must never be priced")
	}
}
