package fuelprice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"trip-cost-service/internal/domain"
	"trip-cost-service/internal/platform/obs"
)

const defaultEIAURL = "https://api.eia.gov"

// eiaProducts maps pump grades to EIA petroleum product codes.
var eiaProducts = map[domain.FuelGrade]string{
	domain.GradeRegular:  "EPMR",
	domain.GradeMidGrade: "EPMM",
	domain.GradePremium:  "EPMP",
	domain.GradeDiesel:   "EPD2D",
}

// EIAClient resolves state fuel prices from the EIA open-data API
// (weekly retail gasoline and diesel series, keyed by state duoarea).
type EIAClient struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewEIAClient(apiKey string) (*EIAClient, error) {
	if apiKey == "" {
		return nil, errors.New("EIA api key is empty")
	}

	return &EIAClient{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: defaultEIAURL,
	}, nil
}

type eiaResponse struct {
	Response struct {
		Data []struct {
			Value *float64 `json:"value"`
		} `json:"data"`
	} `json:"response"`
}

// PriceForRegion fetches the most recent weekly price for one state.
// A state with no published series returns domain.ErrPriceUnavailable.
func (e *EIAClient) PriceForRegion(
	ctx context.Context,
	region domain.Region,
	grade domain.FuelGrade,
) (_ float64, err error) {
	defer obs.Time(ctx, "eia.PriceForRegion")(&err)

	product, ok := eiaProducts[grade]
	if !ok {
		return 0, fmt.Errorf("eia price: unsupported grade %q", grade)
	}

	params := url.Values{}
	params.Set("api_key", e.apiKey)
	params.Set("frequency", "weekly")
	params.Set("data[0]", "value")
	params.Add("facets[duoarea][]", "S"+string(region))
	params.Add("facets[product][]", product)
	params.Set("sort[0][column]", "period")
	params.Set("sort[0][direction]", "desc")
	params.Set("length", "1")

	endpoint := fmt.Sprintf("%s/v2/petroleum/pri/gnd/data/?%s", e.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("eia price: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := e.session.Do(req)
	if err != nil {
		return 0, fmt.Errorf("eia price: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("eia price: unexpected status: %d", resp.StatusCode)
	}

	var decoded eiaResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, fmt.Errorf("eia price: decode response: %w", err)
	}

	if len(decoded.Response.Data) == 0 || decoded.Response.Data[0].Value == nil {
		return 0, fmt.Errorf("eia price: region %s grade %s: %w", region, grade, domain.ErrPriceUnavailable)
	}

	price := *decoded.Response.Data[0].Value
	if price <= 0 {
		return 0, fmt.Errorf("eia price: region %s grade %s: %w", region, grade, domain.ErrPriceUnavailable)
	}

	return price, nil
}
