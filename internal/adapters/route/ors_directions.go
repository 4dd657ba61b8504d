package route

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"trip-cost-service/internal/domain"
	"trip-cost-service/internal/platform/obs"
)

// ORSRouteProvider implements RouteProvider using the OpenRouteService
// directions endpoint with a single driving profile.
//
// The provider is safe for concurrent use.
type ORSRouteProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	profile string
}

func NewORSRouteProvider(apiKey string) (*ORSRouteProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSRouteProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
		profile: "driving-car",
	}, nil
}

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Features []struct {
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Route fetches a driving itinerary through the waypoints in order.
// The wire payload carries [lon, lat] pairs; any transport or decoding
// failure aborts the estimate with a *domain.RoutingError.
func (o *ORSRouteProvider) Route(
	ctx context.Context,
	waypoints []domain.Coordinates,
) (_ domain.Itinerary, err error) {
	defer obs.Time(ctx, "ors.Route")(&err)

	if len(waypoints) < 2 {
		return domain.Itinerary{}, &domain.RoutingError{
			Err: fmt.Errorf("need at least 2 waypoints, got %d", len(waypoints)),
		}
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", o.baseURL, o.profile)

	locations := make([][]float64, 0, len(waypoints))
	for _, w := range waypoints {
		locations = append(locations, w.CoordsToList())
	}

	payload, err := json.Marshal(directionsRequest{Coordinates: locations})
	if err != nil {
		return domain.Itinerary{}, &domain.RoutingError{Err: fmt.Errorf("marshal directions request: %w", err)}
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		body := bytes.NewReader(payload)
		return o.newRequest(ctx, http.MethodPost, endpoint, body)
	})
	if err != nil {
		return domain.Itinerary{}, &domain.RoutingError{Err: fmt.Errorf("directions request failed: %w", err)}
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return domain.Itinerary{}, &domain.RoutingError{Err: fmt.Errorf("decode directions response: %w", err)}
	}

	if len(dr.Features) == 0 {
		return domain.Itinerary{}, &domain.RoutingError{Err: errors.New("no route found")}
	}

	feature := dr.Features[0]
	summary := feature.Properties.Summary

	if summary.Distance < 0 || summary.Duration < 0 {
		return domain.Itinerary{}, &domain.RoutingError{
			Err: fmt.Errorf("negative route metrics: distance=%f duration=%f", summary.Distance, summary.Duration),
		}
	}

	geometry := make([]domain.Coordinates, 0, len(feature.Geometry.Coordinates))
	for i, pt := range feature.Geometry.Coordinates {
		if len(pt) < 2 {
			return domain.Itinerary{}, &domain.RoutingError{
				Err: fmt.Errorf("invalid geometry point at index %d", i),
			}
		}
		geometry = append(geometry, domain.Coordinates{Lon: pt[0], Lat: pt[1]})
	}

	return domain.Itinerary{
		DistanceMeters:  summary.Distance,
		DurationSeconds: summary.Duration,
		Geometry:        geometry,
	}, nil
}
