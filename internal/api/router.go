package api

import (
	"net/http"

	"trip-cost-service/internal/api/handlers"
	"trip-cost-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	suggester ports.Suggester,
	resolver ports.AddressResolver,
	router ports.RouteProvider,
	pricer ports.RegionPricer,
	ratings ports.EfficiencySource,
) http.Handler {
	mux := http.NewServeMux()

	addressHandler := &handlers.AddressHandler{Suggester: suggester}
	vehicleHandler := &handlers.VehicleHandler{Ratings: ratings}
	tripHandler := &handlers.TripHandler{
		Resolver: resolver,
		Router:   router,
		Pricer:   pricer,
		Ratings:  ratings,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/addresses/suggest", addressHandler.Suggest)
	mux.HandleFunc("/vehicles/mpg", vehicleHandler.MPG)
	mux.HandleFunc("/trips/estimate", tripHandler.Estimate)

	return loggingMiddleware(mux)
}
