package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultNominatimURL = "https://nominatim.openstreetmap.org"

// maxSuggestions caps the candidate list shown for one query.
const maxSuggestions = 5

// NominatimClient suggests address candidates using the OpenStreetMap
// Nominatim search endpoint. Suggestions are best-effort: callers absorb
// failures into an empty list after logging them.
type NominatimClient struct {
	session   *http.Client
	baseURL   string
	userAgent string
}

func NewNominatimClient(userAgent string) *NominatimClient {
	return &NominatimClient{
		session:   &http.Client{Timeout: 10 * time.Second},
		baseURL:   defaultNominatimURL,
		userAgent: userAgent,
	}
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
}

// Suggest returns at most five display names in provider order.
// An empty query yields an empty result without a network call.
func (n *NominatimClient) Suggest(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return []string{}, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", fmt.Sprintf("%d", maxSuggestions))

	endpoint := fmt.Sprintf("%s/search?%s", n.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("suggest addresses: create request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("suggest addresses: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggest addresses: unexpected status: %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("suggest addresses: decode response: %w", err)
	}

	out := make([]string, 0, len(results))
	for _, r := range results {
		if r.DisplayName == "" {
			continue
		}
		out = append(out, r.DisplayName)
		if len(out) == maxSuggestions {
			break
		}
	}

	return out, nil
}
