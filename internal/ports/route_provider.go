package ports

import (
	"context"
	"trip-cost-service/internal/domain"
)

// RouteProvider fetches a driving itinerary through the given waypoints.
type RouteProvider interface {
	// Route requires at least two waypoints, in visit order.
	// Transport or decoding failures surface as *domain.RoutingError.
	Route(ctx context.Context, waypoints []domain.Coordinates) (domain.Itinerary, error)
}
