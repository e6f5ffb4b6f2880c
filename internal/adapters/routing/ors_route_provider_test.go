package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"geospend-itinerary-service/internal/adapters/cache"
	"geospend-itinerary-service/internal/domain"
)

const directionsBody = `{
  "features": [
    {
      "geometry": {
        "coordinates": [
          [36.817223, -1.286389],
          [36.811, -1.278],
          [36.8046, -1.2686]
        ]
      }
    }
  ]
}`

func newTestProvider(t *testing.T, server *httptest.Server, segmentCache *cache.RedisSegmentCache) *ORSRouteProvider {
	t.Helper()

	provider, err := NewORSRouteProvider("test-key", segmentCache)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	provider.baseURL = server.URL
	return provider
}

func TestRouteSegmentParsesGeometry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "test-key" {
			t.Errorf("expected api key header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(directionsBody))
	}))
	defer server.Close()

	provider := newTestProvider(t, server, nil)

	from := domain.Coordinates{Lat: -1.286389, Lng: 36.817223}
	to := domain.Coordinates{Lat: -1.2686, Lng: 36.8046}

	segment, err := provider.RouteSegment(context.Background(), from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(segment) != 3 {
		t.Fatalf("expected 3 points, got %d", len(segment))
	}
	// Response coordinates are [lng, lat] and must be flipped.
	if segment[0].Lat != -1.286389 || segment[0].Lng != 36.817223 {
		t.Fatalf("expected lat/lng flip, got %+v", segment[0])
	}
}

func TestRouteSegmentRetriesTransientFailure(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(directionsBody))
	}))
	defer server.Close()

	provider := newTestProvider(t, server, nil)

	segment, err := provider.RouteSegment(context.Background(),
		domain.Coordinates{Lat: -1.28, Lng: 36.81},
		domain.Coordinates{Lat: -1.26, Lng: 36.80},
	)
	if err != nil {
		t.Fatalf("unexpected error after retries: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
	if len(segment) != 3 {
		t.Fatalf("expected parsed segment, got %d points", len(segment))
	}
}

func TestRouteSegmentDoesNotRetryClientError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	provider := newTestProvider(t, server, nil)

	_, err := provider.RouteSegment(context.Background(),
		domain.Coordinates{Lat: -1.28, Lng: 36.81},
		domain.Coordinates{Lat: -1.26, Lng: 36.80},
	)
	if err == nil {
		t.Fatal("expected error for 403 response")
	}
	if attempts != 1 {
		t.Fatalf("expected a single attempt for a client error, got %d", attempts)
	}
}

func TestRouteSegmentEmptyFeaturesIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"features":[]}`))
	}))
	defer server.Close()

	provider := newTestProvider(t, server, nil)

	_, err := provider.RouteSegment(context.Background(),
		domain.Coordinates{Lat: -1.28, Lng: 36.81},
		domain.Coordinates{Lat: -1.26, Lng: 36.80},
	)
	if err == nil {
		t.Fatal("expected error when no route is returned")
	}
}

func TestRouteSegmentServedFromCache(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(directionsBody))
	}))
	defer server.Close()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	segmentCache := cache.NewRedisSegmentCache(client, time.Hour)

	provider := newTestProvider(t, server, segmentCache)

	from := domain.Coordinates{Lat: -1.286389, Lng: 36.817223}
	to := domain.Coordinates{Lat: -1.2686, Lng: 36.8046}
	ctx := context.Background()

	first, err := provider.RouteSegment(ctx, from, to)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	second, err := provider.RouteSegment(ctx, from, to)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}

	if calls != 1 {
		t.Fatalf("expected second fetch from cache, got %d upstream calls", calls)
	}
	if len(first) != len(second) {
		t.Fatalf("expected identical segments, got %d and %d points", len(first), len(second))
	}
}
