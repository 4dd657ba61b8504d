package efficiency

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trip-cost-service/internal/domain"
)

func testClient(baseURL string) *FuelEconomyClient {
	return &FuelEconomyClient{
		session: &http.Client{Timeout: 2 * time.Second},
		baseURL: baseURL,
	}
}

func TestCombinedMPGTwoStepLookup(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/rest/vehicle/menu/options", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("year") != "2017" || q.Get("make") != "Honda" || q.Get("model") != "Civic" {
			t.Errorf("unexpected options query: %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, `<menuItems>
			<menuItem><text>Auto (S6)</text><value>38403</value></menuItem>
			<menuItem><text>Man 6-spd</text><value>38404</value></menuItem>
		</menuItems>`)
	})
	mux.HandleFunc("/ws/rest/vehicle/38403", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<vehicle><comb08>34</comb08></vehicle>`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	mpg, err := testClient(srv.URL).CombinedMPG(context.Background(), 2017, "Honda", "Civic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mpg != 34 {
		t.Fatalf("mpg = %v, want 34", mpg)
	}
}

func TestCombinedMPGNoMatchingVehicle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<menuItems></menuItems>`)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).CombinedMPG(context.Background(), 1901, "Nope", "Nothing")

	var effErr *domain.EfficiencyError
	if !errors.As(err, &effErr) {
		t.Fatalf("expected *domain.EfficiencyError, got %v", err)
	}
	if effErr.Make != "Nope" || effErr.Year != 1901 {
		t.Fatalf("error identity not carried: %+v", effErr)
	}
}

func TestCombinedMPGMissingRating(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/rest/vehicle/menu/options", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<menuItems><menuItem><text>Auto</text><value>99</value></menuItem></menuItems>`)
	})
	mux.HandleFunc("/ws/rest/vehicle/99", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<vehicle></vehicle>`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := testClient(srv.URL).CombinedMPG(context.Background(), 2020, "Honda", "Civic")

	var effErr *domain.EfficiencyError
	if !errors.As(err, &effErr) {
		t.Fatalf("expected *domain.EfficiencyError, got %v", err)
	}
}

func TestCombinedMPGUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).CombinedMPG(context.Background(), 2017, "Honda", "Civic")

	var effErr *domain.EfficiencyError
	if !errors.As(err, &effErr) {
		t.Fatalf("expected *domain.EfficiencyError, got %v", err)
	}
}
