package ports

import (
	"context"
	"geospend-itinerary-service/internal/domain"
)

// Contract for resolving a road-following polyline between two coordinates.
//
// Providers may fail or return no geometry for a pair; callers degrade to a
// straight segment rather than failing the plan.
type RouteGeometryProvider interface {
	// Return the road polyline from one coordinate to another, in path order.
	RouteSegment(ctx context.Context, from, to domain.Coordinates) ([]domain.Coordinates, error)
}
