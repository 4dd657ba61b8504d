package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"trip-cost-service/internal/api/dto"
	"trip-cost-service/internal/domain"
	"trip-cost-service/internal/ports"
	"trip-cost-service/internal/services"
)

// TripHandler orchestrates one estimate request end to end: it coordinates
// address resolution, routing, fuel pricing, and the cost aggregation.
type TripHandler struct {
	Resolver ports.AddressResolver
	Router   ports.RouteProvider
	Pricer   ports.RegionPricer
	Ratings  ports.EfficiencySource
}

func (h *TripHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}

	var req dto.EstimateRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "body must contain only one JSON object")
		return
	}

	grade, err := domain.ParseFuelGrade(req.Grade)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	svcReq := services.EstimateTripRequest{
		Start: req.Start,
		Stops: req.Stops,
		End:   req.End,
		Vehicle: domain.Vehicle{
			Make:        req.Vehicle.Make,
			Model:       req.Vehicle.Model,
			Year:        req.Vehicle.Year,
			Electric:    req.Vehicle.Electric,
			CombinedMPG: req.Vehicle.MPG,
		},
		Grade: grade,
	}

	plan, err := services.EstimateTrip(r.Context(), svcReq, h.Resolver, h.Router, h.Pricer, h.Ratings)
	if err != nil {
		h.writeEstimateError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toEstimateResponse(plan))
}

// writeEstimateError maps the service error taxonomy onto HTTP statuses.
// Resolution and efficiency gaps are client-fixable; routing failures are
// upstream faults; anything else stays opaque.
func (h *TripHandler) writeEstimateError(w http.ResponseWriter, r *http.Request, err error) {
	var resErr *domain.ResolutionError
	if errors.As(err, &resErr) {
		writeError(w, r, http.StatusUnprocessableEntity, "address_unresolved", resErr.Error())
		return
	}

	var effErr *domain.EfficiencyError
	if errors.As(err, &effErr) {
		writeError(w, r, http.StatusUnprocessableEntity, "efficiency_unavailable", "no combined MPG found; supply a manual value")
		return
	}

	var routeErr *domain.RoutingError
	if errors.As(err, &routeErr) {
		log.Printf("routing failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "routing_failed", "routing service failed")
		return
	}

	if errors.Is(err, services.ErrInvalidRequest) {
		writeError(w, r, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	log.Printf("estimate trip failed: %v", err)
	writeError(w, r, http.StatusInternalServerError, "internal_error", "internal server error")
}

func toEstimateResponse(plan *services.TripPlan) dto.EstimateResponse {
	markers := make([]dto.MarkerResponse, 0, len(plan.Markers))
	for _, m := range plan.Markers {
		markers = append(markers, dto.MarkerResponse{
			Label: m.Label,
			Lat:   m.Coordinates.Lat,
			Lon:   m.Coordinates.Lon,
		})
	}

	geometry := make([][2]float64, 0, len(plan.Itinerary.Geometry))
	for _, pt := range plan.Itinerary.Geometry {
		geometry = append(geometry, [2]float64{pt.Lat, pt.Lon})
	}

	est := plan.Estimate
	return dto.EstimateResponse{
		DistanceKm:      round2(est.DistanceMeters / 1000),
		DistanceMiles:   round2(est.DistanceMiles),
		DurationMinutes: round2(est.DurationSeconds / 60),
		FuelUsedGallons: round2(est.FuelUsedGallons),
		PricePerGallon:  round2(est.PricePerGallon),
		PriceFallback:   est.PriceFallback,
		TotalCost:       round2(est.TotalCost),
		Markers:         markers,
		Geometry:        geometry,
	}
}
