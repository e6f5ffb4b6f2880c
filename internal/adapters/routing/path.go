package routing

import (
	"context"

	"go.uber.org/zap"

	"geospend-itinerary-service/internal/domain"
	"geospend-itinerary-service/internal/platform/obs"
	"geospend-itinerary-service/internal/ports"
)

// BuildRoadPath resolves a road-following polyline through the given
// waypoints by fetching one segment per consecutive pair, in path order.
//
// Any segment the provider cannot resolve degrades to a straight line for
// that pair; the path as a whole never fails. A nil provider yields the
// waypoints themselves (an all-straight path).
func BuildRoadPath(
	ctx context.Context,
	provider ports.RouteGeometryProvider,
	waypoints []domain.Coordinates,
) []domain.Coordinates {
	if len(waypoints) < 2 {
		return waypoints
	}
	if provider == nil {
		return waypoints
	}

	full := make([]domain.Coordinates, 0, len(waypoints))

	for i := 0; i < len(waypoints)-1; i++ {
		from := waypoints[i]
		to := waypoints[i+1]

		segment, err := provider.RouteSegment(ctx, from, to)
		if err != nil || len(segment) == 0 {
			if err != nil {
				zap.L().Warn("route segment failed, using straight line",
					zap.Int("segment", i),
					zap.Error(err),
				)
			}
			obs.RouteSegmentFallbacks.Inc()
			segment = []domain.Coordinates{from, to}
		}

		// Drop the joint point where consecutive segments meet.
		if len(full) > 0 {
			segment = segment[1:]
		}
		full = append(full, segment...)
	}

	return full
}
