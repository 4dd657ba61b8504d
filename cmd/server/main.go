package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"trip-cost-service/internal/adapters/cache"
	"trip-cost-service/internal/adapters/efficiency"
	"trip-cost-service/internal/adapters/fuelprice"
	"trip-cost-service/internal/adapters/geocode"
	"trip-cost-service/internal/adapters/route"
	"trip-cost-service/internal/api"
	"trip-cost-service/internal/platform/db"
	"trip-cost-service/internal/ports"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

const (
	priceCacheTTL = 1 * time.Hour
	mpgCacheTTL   = 24 * time.Hour
)

// main is the application composition root.
// It wires concrete adapters (Nominatim, OpenCage, ORS, fuel price sources,
// Postgres/Redis caches) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8080")
	userAgent := getEnv("NOMINATIM_USER_AGENT", "trip-cost-service/1.0")
	priceSource := getEnv("FUEL_PRICE_SOURCE", "aaa")

	opencageKey := os.Getenv("OPENCAGE_API_KEY")
	if strings.TrimSpace(opencageKey) == "" {
		log.Fatal("OPENCAGE_API_KEY is required")
	}

	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		log.Fatal("ORS_API_KEY is required")
	}

	// Postgres and Redis back the lookup caches; both are optional and the
	// service degrades to uncached external calls without them.
	var geocodeCache *cache.SQLGeocodeCache
	if dbURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(dbURL) != "" {
		pg, err := db.Open(dbURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()

		if err := initSchema(pg); err != nil {
			log.Fatal(err)
		}
		geocodeCache = cache.NewSQLGeocodeCache(pg)
	} else {
		log.Println("DATABASE_URL not set, geocode cache disabled")
	}

	var priceCache *cache.RedisPriceCache
	var mpgCache *cache.RedisMPGCache
	if redisURL := os.Getenv("REDIS_URL"); strings.TrimSpace(redisURL) != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatal(fmt.Errorf("parse REDIS_URL: %w", err))
		}
		rdb := redis.NewClient(opt)
		defer rdb.Close()

		priceCache = cache.NewRedisPriceCache(rdb, priceCacheTTL)
		mpgCache = cache.NewRedisMPGCache(rdb, mpgCacheTTL)
	} else {
		log.Println("REDIS_URL not set, price and mpg caches disabled")
	}

	suggester := geocode.NewNominatimClient(userAgent)

	resolver, err := geocode.NewOpenCageClient(opencageKey, geocodeCache)
	if err != nil {
		log.Fatal(err)
	}

	routeProvider, err := route.NewORSRouteProvider(orsKey)
	if err != nil {
		log.Fatal(err)
	}

	pricer, err := newPricer(priceSource)
	if err != nil {
		log.Fatal(err)
	}
	pricer = fuelprice.NewCachedPricer(pricer, priceCache)

	var ratings ports.EfficiencySource = efficiency.NewFuelEconomyClient()
	ratings = efficiency.NewCachedSource(ratings, mpgCache)

	router := api.NewRouter(suggester, resolver, routeProvider, pricer, ratings)

	// Timeouts are tuned for cold-cache estimates (external API latency).
	log.Printf("Server listening addr=:%s price_source=%s", port, priceSource)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// newPricer selects the configured fuel price strategy. Callers only ever
// see the RegionPricer port.
func newPricer(source string) (ports.RegionPricer, error) {
	switch source {
	case "aaa":
		return fuelprice.NewAAAScraper(), nil
	case "eia":
		eiaKey := os.Getenv("EIA_API_KEY")
		if strings.TrimSpace(eiaKey) == "" {
			return nil, fmt.Errorf("EIA_API_KEY is required when FUEL_PRICE_SOURCE=eia")
		}
		return fuelprice.NewEIAClient(eiaKey)
	}
	return nil, fmt.Errorf("unknown FUEL_PRICE_SOURCE %q (want aaa or eia)", source)
}

func initSchema(pg *sql.DB) error {
	if err := cache.InitSchema(pg); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
