package services

import (
	"fmt"

	"trip-cost-service/internal/domain"
)

// EstimateCost combines a resolved itinerary, a vehicle, and a fuel price
// into a TripEstimate. Pure function, no I/O: identical inputs always yield
// identical output. Values stay unrounded; presentation formats them.
//
// Electric vehicles consume no fuel, so fuel used and total cost are zero
// regardless of price. Combustion vehicles must carry a positive MPG.
func EstimateCost(
	itinerary domain.Itinerary,
	vehicle domain.Vehicle,
	pricePerGallon float64,
	priceFallback bool,
) (domain.TripEstimate, error) {
	if err := vehicle.Validate(); err != nil {
		return domain.TripEstimate{}, fmt.Errorf("estimate cost: %w", err)
	}

	if itinerary.DistanceMeters < 0 || itinerary.DurationSeconds < 0 {
		return domain.TripEstimate{}, fmt.Errorf(
			"estimate cost: negative itinerary metrics: distance=%f duration=%f",
			itinerary.DistanceMeters, itinerary.DurationSeconds,
		)
	}

	est := domain.TripEstimate{
		DistanceMeters:  itinerary.DistanceMeters,
		DistanceMiles:   domain.MetersToMiles(itinerary.DistanceMeters),
		DurationSeconds: itinerary.DurationSeconds,
		PricePerGallon:  pricePerGallon,
		PriceFallback:   priceFallback,
	}

	if vehicle.Electric {
		return est, nil
	}

	est.FuelUsedGallons = est.DistanceMiles / vehicle.CombinedMPG
	est.TotalCost = est.FuelUsedGallons * pricePerGallon

	return est, nil
}
