package lookup

import (
	"context"
	"fmt"

	"travel-route-service/internal/domain"
	"travel-route-service/internal/ports"
)

// Map-backed providers for tests and local demo runs. They stand in for the
// real geocoding/routing/places collaborators with fixed datasets.

// StaticGeocoder resolves place names from a fixed table. Lookups are
// case-insensitive and whitespace-normalized.
type StaticGeocoder struct {
	places map[string]ports.Place
}

func NewStaticGeocoder(places map[string]ports.Place) *StaticGeocoder {
	m := make(map[string]ports.Place, len(places))
	for name, place := range places {
		m[normalizeName(name)] = place
	}
	return &StaticGeocoder{places: m}
}

func (g *StaticGeocoder) Geocode(_ context.Context, name string) (ports.Place, error) {
	place, ok := g.places[normalizeName(name)]
	if !ok {
		return ports.Place{}, fmt.Errorf("static geocode %q: %w", name, ports.ErrPlaceNotFound)
	}
	return place, nil
}

// One directed origin->destination road route in a static dataset.
type StaticRoute struct {
	From, To        domain.Coordinates
	DistanceKm      float64
	DurationMinutes int
}

// StaticRouteProvider serves road routes from a fixed pair table. Missing
// pairs report ErrRouteUnavailable, which exercises the engine's
// straight-line fallback.
type StaticRouteProvider struct {
	routes map[string]ports.RouteResult
}

func NewStaticRouteProvider(routes []StaticRoute) *StaticRouteProvider {
	m := make(map[string]ports.RouteResult, len(routes))
	for _, r := range routes {
		m[coordKey(r.From)+"|"+coordKey(r.To)] = ports.RouteResult{
			DistanceKm:      r.DistanceKm,
			DurationMinutes: r.DurationMinutes,
		}
	}
	return &StaticRouteProvider{routes: m}
}

func (p *StaticRouteProvider) Route(_ context.Context, origin, destination domain.Coordinates) (ports.RouteResult, error) {
	route, ok := p.routes[coordKey(origin)+"|"+coordKey(destination)]
	if !ok {
		return ports.RouteResult{}, fmt.Errorf("static route %s -> %s: %w",
			coordKey(origin), coordKey(destination), ports.ErrRouteUnavailable)
	}
	return route, nil
}

// StaticAttractionProvider serves attractions from a fixed list, filtered by
// radius. Category filters are ignored; the engine weighs preference matches
// during scoring instead.
type StaticAttractionProvider struct {
	pois []ports.AttractionInfo
}

func NewStaticAttractionProvider(pois []ports.AttractionInfo) *StaticAttractionProvider {
	return &StaticAttractionProvider{pois: pois}
}

func (p *StaticAttractionProvider) Nearby(_ context.Context, center domain.Coordinates, radiusKm float64, _ []string) ([]ports.AttractionInfo, error) {
	var out []ports.AttractionInfo
	for _, poi := range p.pois {
		if center.DistanceKm(poi.Location) <= radiusKm {
			out = append(out, poi)
		}
	}
	return out, nil
}
