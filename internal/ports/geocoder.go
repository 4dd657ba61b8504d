package ports

import (
	"context"
	"trip-cost-service/internal/domain"
)

// Suggester proposes human-readable matches for a free-text address query.
type Suggester interface {
	// Return at most five display strings in provider order.
	// Empty input yields an empty, not error, result.
	Suggest(ctx context.Context, query string) ([]string, error)
}

// AddressResolver turns chosen candidate strings into coordinates and a
// normalized region label.
type AddressResolver interface {
	// Resolve a batch of addresses, keyed by the normalized input string.
	// A missing result surfaces as *domain.ResolutionError.
	ResolveMany(ctx context.Context, addresses []string) (map[string]domain.Candidate, error)
}
