package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"geospend-itinerary-service/internal/adapters/cache"
	"geospend-itinerary-service/internal/domain"
	"geospend-itinerary-service/internal/platform/obs"
)

// ORSRouteProvider implements RouteGeometryProvider using the
// OpenRouteService directions endpoint.
//
// It coordinates:
//   - Per-segment geometry caching (Redis, optional)
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type ORSRouteProvider struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	profile      string
	segmentCache *cache.RedisSegmentCache
}

func NewORSRouteProvider(apiKey string, segmentCache *cache.RedisSegmentCache) (*ORSRouteProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	provider := &ORSRouteProvider{
		session:      &http.Client{Timeout: 10 * time.Second},
		apiKey:       apiKey,
		baseURL:      "https://api.openrouteservice.org",
		profile:      "driving-car",
		segmentCache: segmentCache,
	}

	return provider, nil
}

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// RouteSegment returns the road polyline from one coordinate to another.
func (o *ORSRouteProvider) RouteSegment(
	ctx context.Context,
	from, to domain.Coordinates,
) (_ []domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.RouteSegment")(&err)

	// Check the segment cache before issuing an external API call.
	// Cache failures are logged and bypassed, never surfaced.
	if o.segmentCache != nil {
		cached, err := o.segmentCache.Get(ctx, from, to)
		if err != nil {
			zap.L().Warn("segment cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", o.baseURL, o.profile)

	bodyObj := directionsRequest{
		Coordinates: [][]float64{from.CoordsToList(), to.CoordsToList()},
	}
	payload, err := json.Marshal(bodyObj)
	if err != nil {
		return nil, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		body := bytes.NewReader(payload)
		return o.newRequest(ctx, http.MethodPost, endpoint, body)
	})
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	if len(dr.Features) == 0 {
		return nil, errors.New("directions returned no route for segment")
	}

	raw := dr.Features[0].Geometry.Coordinates
	segment := make([]domain.Coordinates, 0, len(raw))
	for _, c := range raw {
		if len(c) != 2 {
			return nil, errors.New("directions returned invalid coordinate format")
		}
		// ORS emits [lng, lat].
		segment = append(segment, domain.Coordinates{Lat: c[1], Lng: c[0]})
	}

	if o.segmentCache != nil {
		if err := o.segmentCache.Put(ctx, from, to, segment); err != nil {
			zap.L().Warn("segment cache write failed", zap.Error(err))
		}
	}

	return segment, nil
}
