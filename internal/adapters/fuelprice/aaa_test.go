package fuelprice

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trip-cost-service/internal/domain"
)

const aaaTablePage = `
<html><body>
<table>
  <tr><th>State</th><th>Regular</th><th>Mid-Grade</th><th>Premium</th><th>Diesel</th></tr>
  <tr><td>Arizona</td><td>$3.449</td><td>$3.781</td><td>$4.102</td><td>$3.902</td></tr>
  <tr><td>California</td><td>$4.812</td><td>$5.021</td><td>$5.230</td><td>$5.110</td></tr>
  <tr><td>New Hampshire</td><td>$2.998</td><td>$3.402</td><td>$3.811</td><td>$3.650</td></tr>
</table>
</body></html>`

func testScraper(baseURL string) *AAAScraper {
	return &AAAScraper{
		session: &http.Client{Timeout: 2 * time.Second},
		baseURL: baseURL,
	}
}

func TestAAAPriceForRegion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(aaaTablePage))
	}))
	defer srv.Close()

	scraper := testScraper(srv.URL)

	cases := []struct {
		region domain.Region
		grade  domain.FuelGrade
		want   float64
	}{
		{"AZ", domain.GradeRegular, 3.449},
		{"AZ", domain.GradePremium, 4.102},
		{"CA", domain.GradeDiesel, 5.110},
		{"NH", domain.GradeMidGrade, 3.402},
	}

	for _, tc := range cases {
		got, err := scraper.PriceForRegion(context.Background(), tc.region, tc.grade)
		if err != nil {
			t.Fatalf("%s/%s: unexpected error: %v", tc.region, tc.grade, err)
		}
		if got != tc.want {
			t.Fatalf("%s/%s: price = %v, want %v", tc.region, tc.grade, got, tc.want)
		}
	}
}

func TestAAAMissingStateIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(aaaTablePage))
	}))
	defer srv.Close()

	_, err := testScraper(srv.URL).PriceForRegion(context.Background(), "WY", domain.GradeRegular)
	if !errors.Is(err, domain.ErrPriceUnavailable) {
		t.Fatalf("expected ErrPriceUnavailable, got %v", err)
	}
}

func TestAAAUpstreamFailureIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := testScraper(srv.URL).PriceForRegion(context.Background(), "AZ", domain.GradeRegular)
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	// Upstream failure is a real error, not a quiet absence.
	if errors.Is(err, domain.ErrPriceUnavailable) {
		t.Fatalf("upstream failure misreported as unavailable: %v", err)
	}
}
