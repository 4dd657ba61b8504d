package domain

import (
	"errors"
	"fmt"
)

// ErrPriceUnavailable marks a region/grade pair with no resolvable price.
// It is an absence, not a failure: the price resolver drops the region from
// the average, and a fully unpriced trip falls back to
// FallbackPricePerGallon with a warning.
var ErrPriceUnavailable = errors.New("fuel price unavailable")

// ResolutionError means an address could not be geocoded. It is fatal for
// the request; the aggregator never runs with missing coordinates.
type ResolutionError struct {
	Query string
	Err   error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resolve address %q: %v", e.Query, e.Err)
	}
	return fmt.Sprintf("resolve address %q: no results", e.Query)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// RoutingError means the routing service failed or returned no usable path.
// Fatal for the request; no partial itinerary is produced.
type RoutingError struct {
	Err error
}

func (e *RoutingError) Error() string { return fmt.Sprintf("fetch route: %v", e.Err) }

func (e *RoutingError) Unwrap() error { return e.Err }

// EfficiencyError means no combined MPG could be found for a vehicle.
// Recoverable: callers prompt for a manual value instead of crashing.
type EfficiencyError struct {
	Year  int
	Make  string
	Model string
	Err   error
}

func (e *EfficiencyError) Error() string {
	return fmt.Sprintf("look up efficiency for %d %s %s: %v", e.Year, e.Make, e.Model, e.Err)
}

func (e *EfficiencyError) Unwrap() error { return e.Err }
