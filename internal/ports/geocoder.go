package ports

import (
	"context"
	"errors"

	"travel-route-service/internal/domain"
)

// A resolved place: canonical display name plus coordinates.
type Place struct {
	DisplayName string
	Location    domain.Coordinates
}

// Returned when a place name cannot be resolved to coordinates.
// An unresolvable origin or destination is fatal for the search.
var ErrPlaceNotFound = errors.New("place not found")

// Contract for resolving free-form place names to coordinates.
type Geocoder interface {
	// Resolve a place name. Returns ErrPlaceNotFound (possibly wrapped)
	// when the name matches nothing.
	Geocode(ctx context.Context, name string) (Place, error)
}
