package ports

import (
	"context"
	"errors"

	"travel-route-service/internal/domain"
)

// Road distance and travel duration between two coordinates.
type RouteResult struct {
	DistanceKm      float64
	DurationMinutes int
}

// Returned when the routing backend cannot produce a result. The engine
// falls back to straight-line estimation instead of failing the search.
var ErrRouteUnavailable = errors.New("route unavailable")

// Contract for retrieving road distance and duration between coordinates.
type RouteProvider interface {
	// Return the road route between two points, or ErrRouteUnavailable
	// (possibly wrapped) when the backend is degraded.
	Route(ctx context.Context, origin, destination domain.Coordinates) (RouteResult, error)
}
