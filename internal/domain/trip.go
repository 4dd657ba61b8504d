package domain

// milesPerKilometer is the only distance conversion factor in the codebase.
// It is never re-derived at call sites.
const milesPerKilometer = 0.621371

// MetersToMiles converts a metric route distance to miles.
func MetersToMiles(meters float64) float64 {
	return meters / 1000 * milesPerKilometer
}

// Itinerary is a resolved driving route: totals plus the path geometry.
// Invariants: built from >= 2 waypoints; distance and duration non-negative.
type Itinerary struct {
	DistanceMeters  float64
	DurationSeconds float64
	Geometry        []Coordinates
}

// TripEstimate is the derived output of one estimate request.
// It is computed once and never mutated; values are unrounded, the
// presentation layer formats to two decimals.
type TripEstimate struct {
	DistanceMeters  float64
	DistanceMiles   float64
	DurationSeconds float64
	FuelUsedGallons float64
	PricePerGallon  float64
	PriceFallback   bool
	TotalCost       float64
}
