package efficiency

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"trip-cost-service/internal/domain"
	"trip-cost-service/internal/platform/obs"
)

const defaultFuelEconomyURL = "https://www.fueleconomy.gov"

// FuelEconomyClient looks up combined MPG ratings from the fueleconomy.gov
// vehicle web service: year/make/model narrows to trim options, the first
// option's vehicle id yields the comb08 combined rating.
type FuelEconomyClient struct {
	session *http.Client
	baseURL string
}

func NewFuelEconomyClient() *FuelEconomyClient {
	return &FuelEconomyClient{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultFuelEconomyURL,
	}
}

type menuItems struct {
	Items []struct {
		Text  string `xml:"text"`
		Value string `xml:"value"`
	} `xml:"menuItem"`
}

type vehicleRecord struct {
	Comb08 float64 `xml:"comb08"`
}

// CombinedMPG resolves the rating for the first trim of a year/make/model.
// Every failure mode wraps into *domain.EfficiencyError so callers can
// degrade to a manually supplied value.
func (f *FuelEconomyClient) CombinedMPG(
	ctx context.Context,
	year int,
	make, model string,
) (_ float64, err error) {
	defer obs.Time(ctx, "fueleconomy.CombinedMPG")(&err)

	fail := func(cause error) (float64, error) {
		return 0, &domain.EfficiencyError{Year: year, Make: make, Model: model, Err: cause}
	}

	params := url.Values{}
	params.Set("year", fmt.Sprintf("%d", year))
	params.Set("make", make)
	params.Set("model", model)

	var options menuItems
	optionsURL := fmt.Sprintf("%s/ws/rest/vehicle/menu/options?%s", f.baseURL, params.Encode())
	if err := f.getXML(ctx, optionsURL, &options); err != nil {
		return fail(err)
	}

	if len(options.Items) == 0 || options.Items[0].Value == "" {
		return fail(errors.New("no matching vehicle"))
	}

	vehicleID := options.Items[0].Value

	var record vehicleRecord
	vehicleURL := fmt.Sprintf("%s/ws/rest/vehicle/%s", f.baseURL, url.PathEscape(vehicleID))
	if err := f.getXML(ctx, vehicleURL, &record); err != nil {
		return fail(err)
	}

	if record.Comb08 <= 0 {
		return fail(fmt.Errorf("vehicle %s has no combined rating", vehicleID))
	}

	return record.Comb08, nil
}

func (f *FuelEconomyClient) getXML(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := f.session.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := xml.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
