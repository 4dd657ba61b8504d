package fuelprice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"trip-cost-service/internal/domain"
)

func testEIA(baseURL string) *EIAClient {
	return &EIAClient{
		session: &http.Client{Timeout: 2 * time.Second},
		apiKey:  "test-key",
		baseURL: baseURL,
	}
}

func TestEIAPriceForRegion(t *testing.T) {
	var gotQuery string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"response":{"data":[{"value":3.215}]}}`)
	}))
	defer srv.Close()

	price, err := testEIA(srv.URL).PriceForRegion(context.Background(), "PA", domain.GradeMidGrade)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 3.215 {
		t.Fatalf("price = %v, want 3.215", price)
	}

	q, err := url.ParseQuery(gotQuery)
	if err != nil {
		t.Fatalf("parse captured query: %v", err)
	}
	if got := q.Get("facets[duoarea][]"); got != "SPA" {
		t.Fatalf("duoarea facet = %q, want %q", got, "SPA")
	}
	if got := q.Get("facets[product][]"); got != "EPMM" {
		t.Fatalf("product facet = %q, want %q", got, "EPMM")
	}
	if got := q.Get("length"); got != "1" {
		t.Fatalf("length = %q, want 1", got)
	}
	if got := q.Get("sort[0][direction]"); got != "desc" {
		t.Fatalf("sort direction = %q, want desc", got)
	}
}

func TestEIAEmptySeriesIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"response":{"data":[]}}`)
	}))
	defer srv.Close()

	_, err := testEIA(srv.URL).PriceForRegion(context.Background(), "AK", domain.GradeDiesel)
	if !errors.Is(err, domain.ErrPriceUnavailable) {
		t.Fatalf("expected ErrPriceUnavailable, got %v", err)
	}
}

func TestEIANullValueIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"response":{"data":[{"value":null}]}}`)
	}))
	defer srv.Close()

	_, err := testEIA(srv.URL).PriceForRegion(context.Background(), "AK", domain.GradeRegular)
	if !errors.Is(err, domain.ErrPriceUnavailable) {
		t.Fatalf("expected ErrPriceUnavailable, got %v", err)
	}
}

func TestEIAUpstreamFailureIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := testEIA(srv.URL).PriceForRegion(context.Background(), "PA", domain.GradeRegular)
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	if errors.Is(err, domain.ErrPriceUnavailable) {
		t.Fatalf("upstream failure misreported as unavailable: %v", err)
	}
}
