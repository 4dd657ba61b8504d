package ports

import "context"

// EfficiencySource looks up a combined MPG rating from a vehicle catalog.
type EfficiencySource interface {
	// A vehicle with no catalog entry surfaces as *domain.EfficiencyError.
	CombinedMPG(ctx context.Context, year int, make, model string) (float64, error)
}
