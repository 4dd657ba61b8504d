package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"trip-cost-service/internal/adapters/cache"
	"trip-cost-service/internal/domain"
	"trip-cost-service/internal/platform/obs"
)

const defaultOpenCageURL = "https://api.opencagedata.com"

// OpenCageClient resolves chosen candidate strings to coordinates and a
// normalized region using the OpenCage forward geocoding API.
//
// It coordinates:
//   - Address normalization
//   - Persistent geocode caching
//   - External API calls
//
// The client is safe for concurrent use.
type OpenCageClient struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	geocodeCache *cache.SQLGeocodeCache
}

func NewOpenCageClient(apiKey string, geocodeCache *cache.SQLGeocodeCache) (*OpenCageClient, error) {
	if apiKey == "" {
		return nil, errors.New("OpenCage api key is empty")
	}

	return &OpenCageClient{
		session:      &http.Client{Timeout: 10 * time.Second},
		apiKey:       apiKey,
		baseURL:      defaultOpenCageURL,
		geocodeCache: geocodeCache,
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (o *OpenCageClient) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type opencageResponse struct {
	Results []struct {
		Formatted string `json:"formatted"`
		Geometry  struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
		Components struct {
			State     string `json:"state"`
			StateCode string `json:"state_code"`
		} `json:"components"`
	} `json:"results"`
}

// ResolveMany resolves addresses individually, consulting the persistent
// cache first. Each address maps to its normalized form in the result;
// any address the service cannot place fails the whole batch with a
// *domain.ResolutionError.
func (o *OpenCageClient) ResolveMany(
	ctx context.Context,
	addresses []string,
) (_ map[string]domain.Candidate, err error) {
	defer obs.Time(ctx, "opencage.ResolveMany")(&err)

	needed := make([]string, 0, len(addresses))
	seen := make(map[string]struct{}, len(addresses))
	for _, a := range addresses {
		na := o.normalize(a)
		if na == "" {
			return nil, &domain.ResolutionError{Query: a, Err: errors.New("empty address")}
		}
		if _, ok := seen[na]; ok {
			continue
		}
		seen[na] = struct{}{}
		needed = append(needed, na)
	}

	hits := make(map[string]domain.Candidate)
	if o.geocodeCache != nil {
		var err error
		hits, err = o.geocodeCache.GetMany(ctx, needed)
		if err != nil {
			return nil, fmt.Errorf("resolve addresses: geocode cache: %w", err)
		}
	}

	misses := make([]string, 0, len(needed))
	for _, a := range needed {
		if _, ok := hits[a]; !ok {
			misses = append(misses, a)
		}
	}

	fresh := make(map[string]domain.Candidate, len(misses))
	for _, a := range misses {
		c, err := o.resolveOne(ctx, a)
		if err != nil {
			return nil, err
		}
		fresh[a] = c
	}

	if o.geocodeCache != nil && len(fresh) > 0 {
		if err := o.geocodeCache.PutMany(ctx, fresh); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	out := make(map[string]domain.Candidate, len(hits)+len(fresh))
	for k, v := range hits {
		out[k] = v
	}
	for k, v := range fresh {
		out[k] = v
	}

	return out, nil
}

// resolveOne calls OpenCage for exactly one address and takes the first
// result. The region label is normalized to a USPS code here, at the
// resolver boundary; unrecognized states leave the region empty.
func (o *OpenCageClient) resolveOne(ctx context.Context, address string) (domain.Candidate, error) {
	params := url.Values{}
	params.Set("q", address)
	params.Set("key", o.apiKey)
	params.Set("limit", "1")
	params.Set("countrycode", "us")

	endpoint := fmt.Sprintf("%s/geocode/v1/json?%s", o.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("resolve address: create request: %w", err)
	}

	resp, err := o.session.Do(req)
	if err != nil {
		return domain.Candidate{}, &domain.ResolutionError{Query: address, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Candidate{}, &domain.ResolutionError{
			Query: address,
			Err:   fmt.Errorf("unexpected status: %d", resp.StatusCode),
		}
	}

	var decoded opencageResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Candidate{}, &domain.ResolutionError{
			Query: address,
			Err:   fmt.Errorf("decode geocode response: %w", err),
		}
	}

	if len(decoded.Results) == 0 {
		return domain.Candidate{}, &domain.ResolutionError{Query: address}
	}

	first := decoded.Results[0]

	region, ok := domain.NormalizeRegion(first.Components.StateCode)
	if !ok {
		// Some responses carry only the spelled-out state name.
		region, ok = domain.NormalizeRegion(first.Components.State)
	}
	if !ok {
		log.Printf("no recognizable state for address %q", address)
	}

	display := first.Formatted
	if display == "" {
		display = address
	}

	return domain.Candidate{
		DisplayName: display,
		Coordinates: domain.Coordinates{
			Lon: first.Geometry.Lng,
			Lat: first.Geometry.Lat,
		},
		Region: region,
	}, nil
}
