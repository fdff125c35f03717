package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"travel-route-service/internal/adapters/cache"
	"travel-route-service/internal/adapters/lookup"
	"travel-route-service/internal/domain"
	"travel-route-service/internal/platform/db"
	"travel-route-service/internal/platform/metrics"
	"travel-route-service/internal/ports"
	"travel-route-service/internal/services"
)

// plantool runs one itinerary search against a built-in demo dataset and
// prints the ranked result as JSON. It is the manual smoke-test entrypoint:
// the engine itself ships as a library.
//
// REDIS_URL or DATABASE_URL select a shared lookup cache; without either,
// an in-process cache is used. PARAMS_PATH points at an optional YAML
// tuning file.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	metrics.RegisterDefault()

	params := services.DefaultParams()
	if path := os.Getenv("PARAMS_PATH"); path != "" {
		var err error
		params, err = services.LoadParams(path)
		if err != nil {
			log.Fatal(err)
		}
	}

	ctx := context.Background()

	lookupCache, closeCache, err := buildCache(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	geocoder, routes, attractions := demoProviders(lookupCache, params.CacheTTL)

	observer := services.ObserverFunc(func(stage services.Stage, detail string) {
		log.Printf("stage=%s %s", stage, detail)
	})
	searcher := services.NewSearcher(geocoder, routes, attractions, params, observer)

	req := domain.TravelRequest{
		Departure:    getEnv("DEPARTURE", "Seoul"),
		Destination:  getEnv("DESTINATION", "Busan"),
		StartDate:    time.Now().AddDate(0, 0, 7),
		DurationDays: getEnvInt("DURATION_DAYS", 2),
		Budget:       getEnvInt("BUDGET", 500000),
		Preferences:  splitList(getEnv("PREFERENCES", "history,beach")),
	}

	result, err := searcher.Search(ctx, req)
	if err != nil {
		log.Fatal(err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	os.Stdout.Write(append(out, '\n'))
}

// buildCache picks the lookup cache backend from the environment:
// Redis, then Postgres, then in-process memory.
func buildCache(ctx context.Context) (ports.LookupCache, func(), error) {
	if url := os.Getenv("REDIS_URL"); url != "" {
		c, err := cache.NewRedisLookupCacheFromURL(url)
		if err != nil {
			return nil, nil, err
		}
		log.Println("lookup cache: redis")
		return c, func() { _ = c.Close() }, nil
	}

	if url := os.Getenv("DATABASE_URL"); url != "" {
		conn, err := db.Open(url)
		if err != nil {
			return nil, nil, err
		}
		c := cache.NewSQLLookupCache(conn)
		if err := c.InitSchema(ctx); err != nil {
			conn.Close()
			return nil, nil, err
		}
		log.Println("lookup cache: postgres")
		return c, func() { _ = conn.Close() }, nil
	}

	log.Println("lookup cache: in-memory")
	return cache.NewMemoryLookupCache(), func() {}, nil
}

// demoProviders wires the static demo dataset behind the caching decorators.
func demoProviders(lookupCache ports.LookupCache, ttl time.Duration) (ports.Geocoder, ports.RouteProvider, ports.AttractionProvider) {
	seoul := domain.Coordinates{Lat: 37.5665, Lon: 126.9780}
	busan := domain.Coordinates{Lat: 35.1796, Lon: 129.0756}

	geocoder := lookup.NewStaticGeocoder(map[string]ports.Place{
		"Seoul": {DisplayName: "Seoul", Location: seoul},
		"Busan": {DisplayName: "Busan", Location: busan},
	})

	routes := lookup.NewStaticRouteProvider([]lookup.StaticRoute{
		{From: seoul, To: busan, DistanceKm: 390, DurationMinutes: 280},
		{From: busan, To: seoul, DistanceKm: 390, DurationMinutes: 280},
	})

	attractions := lookup.NewStaticAttractionProvider([]ports.AttractionInfo{
		{Name: "Haeundae Beach", Location: domain.Coordinates{Lat: 35.1587, Lon: 129.1604}, Categories: []string{"beach"}, Popularity: 4.6},
		{Name: "Gamcheon Culture Village", Location: domain.Coordinates{Lat: 35.0975, Lon: 129.0106}, Categories: []string{"village", "history"}, Popularity: 4.5},
		{Name: "Haedong Yonggungsa", Location: domain.Coordinates{Lat: 35.1884, Lon: 129.2233}, Categories: []string{"temple", "history"}, Popularity: 4.4},
		{Name: "Gwangalli Beach", Location: domain.Coordinates{Lat: 35.1532, Lon: 129.1188}, Categories: []string{"beach"}, Popularity: 4.3},
		{Name: "Jagalchi Market", Location: domain.Coordinates{Lat: 35.0967, Lon: 129.0306}, Categories: []string{"market", "food"}, Popularity: 4.2},
		{Name: "Busan Tower", Location: domain.Coordinates{Lat: 35.1013, Lon: 129.0324}, Categories: []string{"tower"}, Popularity: 4.0},
		{Name: "BIFF Square", Location: domain.Coordinates{Lat: 35.0988, Lon: 129.0266}, Categories: []string{"square", "street"}, Popularity: 3.9},
		{Name: "Taejongdae Park", Location: domain.Coordinates{Lat: 35.0530, Lon: 129.0870}, Categories: []string{"park", "nature"}, Popularity: 4.4},
	})

	return &lookup.CachedGeocoder{Inner: geocoder, Cache: lookupCache, TTL: ttl},
		&lookup.CachedRouteProvider{Inner: routes, Cache: lookupCache, TTL: ttl},
		&lookup.CachedAttractionProvider{Inner: attractions, Cache: lookupCache, TTL: ttl}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("%s must be an integer, got %q", key, v)
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
