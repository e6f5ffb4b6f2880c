package routing

import (
	"context"
	"fmt"

	"geospend-itinerary-service/internal/domain"
)

type MockSegment struct {
	From, To domain.Coordinates
	Path     []domain.Coordinates
}

type MockRouteProvider struct {
	m map[string][]domain.Coordinates
}

func segKey(from, to domain.Coordinates) string {
	return fmt.Sprintf("%.6f,%.6f|%.6f,%.6f", from.Lat, from.Lng, to.Lat, to.Lng)
}

func NewMockRouteProvider(segments []MockSegment) *MockRouteProvider {
	m := make(map[string][]domain.Coordinates, len(segments))
	for _, s := range segments {
		m[segKey(s.From, s.To)] = s.Path
	}
	return &MockRouteProvider{m: m}
}

func (p *MockRouteProvider) RouteSegment(ctx context.Context, from, to domain.Coordinates) ([]domain.Coordinates, error) {
	path, ok := p.m[segKey(from, to)]
	if !ok {
		return nil, fmt.Errorf("missing segment %q", segKey(from, to))
	}

	return path, nil
}
