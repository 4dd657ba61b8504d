package fuelprice

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"trip-cost-service/internal/domain"
	"trip-cost-service/internal/platform/obs"

	"github.com/PuerkitoBio/goquery"
)

const defaultAAAURL = "https://gasprices.aaa.com/state-gas-price-averages/"

// aaaColumns maps pump grades to their column in the AAA averages table.
// Column 0 is the state name.
var aaaColumns = map[domain.FuelGrade]int{
	domain.GradeRegular:  1,
	domain.GradeMidGrade: 2,
	domain.GradePremium:  3,
	domain.GradeDiesel:   4,
}

// AAAScraper resolves state fuel prices from the public AAA state-averages
// table. Scraping is inherently fragile; this implementation lives behind
// the RegionPricer port so it can be swapped for the EIA API without
// touching callers.
type AAAScraper struct {
	session *http.Client
	baseURL string
}

func NewAAAScraper() *AAAScraper {
	return &AAAScraper{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultAAAURL,
	}
}

// PriceForRegion extracts the row matching the region's full name and the
// column matching the grade. A missing row or unparseable cell returns
// domain.ErrPriceUnavailable.
func (a *AAAScraper) PriceForRegion(
	ctx context.Context,
	region domain.Region,
	grade domain.FuelGrade,
) (_ float64, err error) {
	defer obs.Time(ctx, "aaa.PriceForRegion")(&err)

	col, ok := aaaColumns[grade]
	if !ok {
		return 0, fmt.Errorf("aaa price: unsupported grade %q", grade)
	}

	stateName := region.FullName()
	if stateName == "" {
		return 0, fmt.Errorf("aaa price: unknown region %q: %w", region, domain.ErrPriceUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL, nil)
	if err != nil {
		return 0, fmt.Errorf("aaa price: create request: %w", err)
	}

	resp, err := a.session.Do(req)
	if err != nil {
		return 0, fmt.Errorf("aaa price: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("aaa price: unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("aaa price: parse page: %w", err)
	}

	var price float64
	found := false

	doc.Find("table tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() <= col {
			return true
		}

		name := strings.TrimSpace(cells.Eq(0).Text())
		if !strings.EqualFold(name, stateName) {
			return true
		}

		raw := strings.TrimSpace(cells.Eq(col).Text())
		raw = strings.TrimPrefix(raw, "$")

		p, perr := strconv.ParseFloat(raw, 64)
		if perr != nil || p <= 0 {
			return true
		}

		price = p
		found = true
		return false
	})

	if !found {
		return 0, fmt.Errorf("aaa price: region %s grade %s: %w", region, grade, domain.ErrPriceUnavailable)
	}

	return price, nil
}
