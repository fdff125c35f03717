package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"travel-route-service/internal/domain"
	"travel-route-service/internal/platform/metrics"
	"travel-route-service/internal/ports"
)

// Caching decorators wrapping the external-lookup ports. Keys are canonical
// representations of the lookup parameters, payloads are JSON, and every
// entry carries the configured TTL. Within the TTL window stale data is
// acceptable; past it the backing cache never returns the entry.
//
// Not-found results are NOT cached: a place that failed to resolve once may
// resolve later, and negative entries would hide that for a full TTL.

// normalizeName collapses whitespace and case so equivalent spellings share
// a cache key.
func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func coordKey(c domain.Coordinates) string {
	return fmt.Sprintf("%.5f,%.5f", c.Lat, c.Lon)
}

// CachedGeocoder caches successful geocode results.
type CachedGeocoder struct {
	Inner ports.Geocoder
	Cache ports.LookupCache
	TTL   time.Duration
}

func (g *CachedGeocoder) Geocode(ctx context.Context, name string) (ports.Place, error) {
	key := "geocode|" + normalizeName(name)

	if payload, ok, err := g.Cache.Get(ctx, key); err != nil {
		return ports.Place{}, fmt.Errorf("cached geocode: get %q: %w", key, err)
	} else if ok {
		metrics.CacheRequests.WithLabelValues("geocode", "hit").Inc()
		var place ports.Place
		if err := json.Unmarshal(payload, &place); err != nil {
			return ports.Place{}, fmt.Errorf("cached geocode: decode %q: %w", key, err)
		}
		return place, nil
	}
	metrics.CacheRequests.WithLabelValues("geocode", "miss").Inc()

	place, err := g.Inner.Geocode(ctx, name)
	if err != nil {
		return ports.Place{}, err
	}

	payload, err := json.Marshal(place)
	if err != nil {
		return ports.Place{}, fmt.Errorf("cached geocode: encode %q: %w", key, err)
	}
	if err := g.Cache.Put(ctx, key, payload, g.TTL); err != nil {
		return ports.Place{}, fmt.Errorf("cached geocode: put %q: %w", key, err)
	}
	return place, nil
}

// CachedRouteProvider caches successful route lookups.
type CachedRouteProvider struct {
	Inner ports.RouteProvider
	Cache ports.LookupCache
	TTL   time.Duration
}

func (r *CachedRouteProvider) Route(ctx context.Context, origin, destination domain.Coordinates) (ports.RouteResult, error) {
	key := "route|" + coordKey(origin) + "|" + coordKey(destination)

	if payload, ok, err := r.Cache.Get(ctx, key); err != nil {
		return ports.RouteResult{}, fmt.Errorf("cached route: get %q: %w", key, err)
	} else if ok {
		metrics.CacheRequests.WithLabelValues("route", "hit").Inc()
		var route ports.RouteResult
		if err := json.Unmarshal(payload, &route); err != nil {
			return ports.RouteResult{}, fmt.Errorf("cached route: decode %q: %w", key, err)
		}
		return route, nil
	}
	metrics.CacheRequests.WithLabelValues("route", "miss").Inc()

	route, err := r.Inner.Route(ctx, origin, destination)
	if err != nil {
		return ports.RouteResult{}, err
	}

	payload, err := json.Marshal(route)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("cached route: encode %q: %w", key, err)
	}
	if err := r.Cache.Put(ctx, key, payload, r.TTL); err != nil {
		return ports.RouteResult{}, fmt.Errorf("cached route: put %q: %w", key, err)
	}
	return route, nil
}

// CachedAttractionProvider caches attraction list lookups.
type CachedAttractionProvider struct {
	Inner ports.AttractionProvider
	Cache ports.LookupCache
	TTL   time.Duration
}

func (a *CachedAttractionProvider) Nearby(ctx context.Context, center domain.Coordinates, radiusKm float64, categories []string) ([]ports.AttractionInfo, error) {
	normCats := make([]string, len(categories))
	for i, c := range categories {
		normCats[i] = normalizeName(c)
	}
	key := fmt.Sprintf("poi|%s|%.1f|%s", coordKey(center), radiusKm, strings.Join(normCats, ","))

	if payload, ok, err := a.Cache.Get(ctx, key); err != nil {
		return nil, fmt.Errorf("cached attractions: get %q: %w", key, err)
	} else if ok {
		metrics.CacheRequests.WithLabelValues("poi", "hit").Inc()
		var pois []ports.AttractionInfo
		if err := json.Unmarshal(payload, &pois); err != nil {
			return nil, fmt.Errorf("cached attractions: decode %q: %w", key, err)
		}
		return pois, nil
	}
	metrics.CacheRequests.WithLabelValues("poi", "miss").Inc()

	pois, err := a.Inner.Nearby(ctx, center, radiusKm, categories)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(pois)
	if err != nil {
		return nil, fmt.Errorf("cached attractions: encode %q: %w", key, err)
	}
	if err := a.Cache.Put(ctx, key, payload, a.TTL); err != nil {
		return nil, fmt.Errorf("cached attractions: put %q: %w", key, err)
	}
	return pois, nil
}
