package services

import (
	"testing"

	"geospend-itinerary-service/internal/domain"
)

func testCatalogue() *domain.Catalogue {
	return &domain.Catalogue{
		Neighbourhoods: map[string]domain.Neighbourhood{
			"CBD":       {Name: "CBD", Center: domain.Coordinates{Lat: -1.286389, Lng: 36.817223}},
			"Westlands": {Name: "Westlands", Center: domain.Coordinates{Lat: -1.2686, Lng: 36.8046}},
			"Karen":     {Name: "Karen", Center: domain.Coordinates{Lat: -1.3358, Lng: 36.7249}},
		},
		TransportTable: map[string]domain.TransportEdge{
			domain.EdgeKey("CBD", "Westlands"): {Mode: "Matatu", Fare: 50, Minutes: 20},
		},
	}
}

func TestResolveSameNeighbourhoodWalks(t *testing.T) {
	resolver := NewTransportResolver(testCatalogue(), DefaultPlannerConfig())

	edge := resolver.Resolve("CBD", "CBD")
	if edge.Mode != WalkMode {
		t.Fatalf("expected mode %q, got %q", WalkMode, edge.Mode)
	}
	if edge.Fare != 0 || edge.Minutes != 0 {
		t.Fatalf("expected free instant walk, got fare=%d minutes=%d", edge.Fare, edge.Minutes)
	}
}

func TestResolveTableEdgeWins(t *testing.T) {
	resolver := NewTransportResolver(testCatalogue(), DefaultPlannerConfig())

	edge := resolver.Resolve("CBD", "Westlands")
	if edge.Mode != "Matatu" || edge.Fare != 50 || edge.Minutes != 20 {
		t.Fatalf("expected table edge Matatu/50/20, got %+v", edge)
	}
}

func TestResolveEstimatesFromDistance(t *testing.T) {
	// CBD to Karen has no table edge; the resolver estimates from the
	// straight-line distance of roughly 11.7 km at 8 KES and 3 min per km.
	resolver := NewTransportResolver(testCatalogue(), DefaultPlannerConfig())

	edge := resolver.Resolve("CBD", "Karen")
	if edge.Mode != "Matatu" {
		t.Fatalf("expected fallback mode Matatu, got %q", edge.Mode)
	}
	if edge.Fare < 85 || edge.Fare > 100 {
		t.Fatalf("expected estimated fare near 94, got %d", edge.Fare)
	}
	if edge.Minutes < 32 || edge.Minutes > 38 {
		t.Fatalf("expected estimated minutes near 35, got %d", edge.Minutes)
	}
}

func TestResolveEstimateRespectsFloors(t *testing.T) {
	catalogue := testCatalogue()
	// Two distinct neighbourhoods a few hundred meters apart.
	catalogue.Neighbourhoods["Upper Hill"] = domain.Neighbourhood{
		Name:   "Upper Hill",
		Center: domain.Coordinates{Lat: -1.2872, Lng: 36.8180},
	}

	resolver := NewTransportResolver(catalogue, DefaultPlannerConfig())

	edge := resolver.Resolve("CBD", "Upper Hill")
	if edge.Fare != 30 {
		t.Fatalf("expected minimum fare 30 for a short hop, got %d", edge.Fare)
	}
	if edge.Minutes != 10 {
		t.Fatalf("expected minimum minutes 10 for a short hop, got %d", edge.Minutes)
	}
}

func TestResolveUnknownCenterUsesDefault(t *testing.T) {
	resolver := NewTransportResolver(testCatalogue(), DefaultPlannerConfig())

	edge := resolver.Resolve("CBD", "Atlantis")
	if edge.Mode != "Matatu" || edge.Fare != 80 || edge.Minutes != 45 {
		t.Fatalf("expected default edge Matatu/80/45, got %+v", edge)
	}
}
