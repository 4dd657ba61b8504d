package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"trip-cost-service/internal/domain"
	"trip-cost-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidRequest marks estimate input the caller can fix.
var ErrInvalidRequest = errors.New("invalid estimate request")

// maxStops bounds intermediate waypoints between start and end.
const maxStops = 5

type EstimateTripRequest struct {
	Start   string
	Stops   []string
	End     string
	Vehicle domain.Vehicle
	Grade   domain.FuelGrade
}

// TripPlan is the outward-facing result: the cost estimate plus everything
// a presentation layer needs to draw the trip (path geometry and one
// labelled marker per waypoint, in visit order).
type TripPlan struct {
	Estimate  domain.TripEstimate
	Itinerary domain.Itinerary
	Markers   []domain.Marker
}

// EstimateTrip runs one estimate end to end: resolve all addresses, then
// fetch the route, resolve the regional fuel price, and look up the vehicle
// rating concurrently, and finally aggregate.
//
// Resolution and routing failures abort the request. A missing fuel price
// degrades to the fallback with a warning flag; a missing MPG rating
// surfaces as *domain.EfficiencyError so callers can ask for a manual value.
func EstimateTrip(
	ctx context.Context,
	req EstimateTripRequest,
	resolver ports.AddressResolver,
	router ports.RouteProvider,
	pricer ports.RegionPricer,
	ratings ports.EfficiencySource,
) (*TripPlan, error) {
	addresses, err := req.addresses()
	if err != nil {
		return nil, err
	}

	vehicle := req.Vehicle
	needsRating := !vehicle.Electric && vehicle.CombinedMPG <= 0
	if needsRating && (vehicle.Year <= 0 || vehicle.Make == "" || vehicle.Model == "") {
		return nil, &domain.EfficiencyError{
			Year: vehicle.Year, Make: vehicle.Make, Model: vehicle.Model,
			Err: errors.New("no rating given and vehicle identity incomplete"),
		}
	}

	resolved, err := resolver.ResolveMany(ctx, addresses)
	if err != nil {
		return nil, fmt.Errorf("estimate trip: %w", err)
	}

	waypoints := make([]domain.Coordinates, 0, len(addresses))
	markers := make([]domain.Marker, 0, len(addresses))
	regions := make([]domain.Region, 0, len(addresses))
	for _, a := range addresses {
		c, ok := resolved[a]
		if !ok {
			return nil, &domain.ResolutionError{Query: a, Err: errors.New("resolver returned no candidate")}
		}
		waypoints = append(waypoints, c.Coordinates)
		markers = append(markers, domain.Marker{Label: c.DisplayName, Coordinates: c.Coordinates})
		regions = append(regions, c.Region)
	}

	var (
		itinerary domain.Itinerary
		avgPrice  float64
		priced    bool
	)

	// Route, price, and rating lookups are independent once addresses are
	// resolved; aggregation waits for all three.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		it, err := router.Route(gctx, waypoints)
		if err != nil {
			return fmt.Errorf("estimate trip: %w", err)
		}
		itinerary = it
		return nil
	})

	// Electric trips have zero fuel cost, so no price is resolved for them.
	if !vehicle.Electric {
		g.Go(func() error {
			avgPrice, priced = AveragePrice(gctx, pricer, regions, req.Grade)
			return nil
		})
	}

	if needsRating {
		g.Go(func() error {
			mpg, err := ratings.CombinedMPG(gctx, vehicle.Year, vehicle.Make, vehicle.Model)
			if err != nil {
				return fmt.Errorf("estimate trip: %w", err)
			}
			vehicle.CombinedMPG = mpg
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	priceFallback := false
	if !vehicle.Electric && !priced {
		avgPrice = domain.FallbackPricePerGallon
		priceFallback = true
		log.Printf("no regional fuel price resolved, using fallback %.2f", avgPrice)
	}

	estimate, err := EstimateCost(itinerary, vehicle, avgPrice, priceFallback)
	if err != nil {
		return nil, fmt.Errorf("estimate trip: %w", err)
	}

	return &TripPlan{
		Estimate:  estimate,
		Itinerary: itinerary,
		Markers:   markers,
	}, nil
}

// addresses validates and orders the trip's waypoint addresses.
// Keys are whitespace-normalized to line up with resolver result keys.
func (r EstimateTripRequest) addresses() ([]string, error) {
	normalize := func(s string) string { return strings.Join(strings.Fields(s), " ") }

	start := normalize(r.Start)
	end := normalize(r.End)
	if start == "" || end == "" {
		return nil, fmt.Errorf("%w: start and end are required", ErrInvalidRequest)
	}

	if len(r.Stops) > maxStops {
		return nil, fmt.Errorf("%w: at most %d stops allowed, got %d", ErrInvalidRequest, maxStops, len(r.Stops))
	}

	out := make([]string, 0, 2+len(r.Stops))
	out = append(out, start)
	for i, s := range r.Stops {
		ns := normalize(s)
		if ns == "" {
			return nil, fmt.Errorf("%w: stop %d is empty", ErrInvalidRequest, i+1)
		}
		out = append(out, ns)
	}
	out = append(out, end)

	return out, nil
}
