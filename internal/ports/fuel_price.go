package ports

import (
	"context"
	"trip-cost-service/internal/domain"
)

// RegionPricer resolves one price per gallon for a region and grade.
//
// Implementations are interchangeable strategies (statistical API, scraped
// price table); callers never need to know which is configured. A region
// with no published price returns domain.ErrPriceUnavailable.
type RegionPricer interface {
	PriceForRegion(ctx context.Context, region domain.Region, grade domain.FuelGrade) (float64, error)
}
