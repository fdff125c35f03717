package ports

import (
	"context"

	"travel-route-service/internal/domain"
)

// Raw attraction record as returned by an external places source. The
// collector normalizes these into domain.AttractionOption at the boundary,
// so source-specific shapes never reach the core.
type AttractionInfo struct {
	Name       string
	Location   domain.Coordinates
	Categories []string
	Popularity float64 // 0..5 rating scale
}

// Contract for listing attractions around a point.
type AttractionProvider interface {
	// Return attractions within radiusKm of center. An empty categories
	// slice means no category filter.
	Nearby(ctx context.Context, center domain.Coordinates, radiusKm float64, categories []string) ([]AttractionInfo, error)
}
