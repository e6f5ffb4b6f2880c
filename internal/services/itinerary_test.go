package services

import (
	"testing"

	"geospend-itinerary-service/internal/domain"
)

func singleStopCatalogue() *domain.Catalogue {
	return &domain.Catalogue{
		Neighbourhoods: map[string]domain.Neighbourhood{
			"CBD": {Name: "CBD", Center: domain.Coordinates{Lat: -1.2864, Lng: 36.8172}},
		},
		Places: []domain.Place{
			{
				ID:            "uhuru-park",
				Name:          "Uhuru Park",
				Category:      "Park",
				Neighbourhood: "CBD",
				Coords:        domain.Coordinates{Lat: -1.2864, Lng: 36.8172},
				EntryFee:      0,
				AvgFood:       0,
				DurationMin:   30,
				Rating:        4.5,
				Popularity:    0.8,
			},
		},
		TransportTable: map[string]domain.TransportEdge{},
	}
}

func TestBuildItinerarySingleWalkableStop(t *testing.T) {
	catalogue := singleStopCatalogue()
	cfg := DefaultPlannerConfig()
	resolver := NewTransportResolver(catalogue, cfg)

	ranked := ScoreAndRank(catalogue.Places, nil, nil, "")
	result := BuildItinerary(ranked, "CBD", 500, 60, resolver)

	if len(result.Stops) != 1 {
		t.Fatalf("expected 1 stop, got %d", len(result.Stops))
	}

	stop := result.Stops[0]
	if stop.Transport.Mode != WalkMode {
		t.Fatalf("expected Walk leg within the start neighbourhood, got %q", stop.Transport.Mode)
	}
	if stop.Cost.Total != 0 {
		t.Fatalf("expected zero total cost, got %d", stop.Cost.Total)
	}
	if stop.Time.Total != 30 {
		t.Fatalf("expected total time 30, got %d", stop.Time.Total)
	}
	if result.RemainingBudget != 500 {
		t.Fatalf("expected full budget remaining, got %d", result.RemainingBudget)
	}
	if result.RemainingMinutes != 30 {
		t.Fatalf("expected 30 minutes remaining, got %d", result.RemainingMinutes)
	}
}

func TestBuildItineraryTimeTooShort(t *testing.T) {
	catalogue := singleStopCatalogue()
	resolver := NewTransportResolver(catalogue, DefaultPlannerConfig())

	ranked := ScoreAndRank(catalogue.Places, nil, nil, "")
	result := BuildItinerary(ranked, "CBD", 500, 20, resolver)

	if len(result.Stops) != 0 {
		t.Fatalf("expected no stops when visit exceeds the time window, got %d", len(result.Stops))
	}
	if result.RemainingBudget != 500 || result.RemainingMinutes != 20 {
		t.Fatalf("expected ledgers untouched, got budget=%d minutes=%d", result.RemainingBudget, result.RemainingMinutes)
	}
}

func TestBuildItinerarySkipsUnaffordableAndContinues(t *testing.T) {
	catalogue := &domain.Catalogue{
		Neighbourhoods: map[string]domain.Neighbourhood{
			"CBD": {Name: "CBD", Center: domain.Coordinates{Lat: -1.2864, Lng: 36.8172}},
		},
		Places: []domain.Place{
			{
				ID: "pricey", Name: "Pricey", Neighbourhood: "CBD",
				EntryFee: 900, AvgFood: 0, DurationMin: 30, Rating: 5, Popularity: 1,
			},
			{
				ID: "modest", Name: "Modest", Neighbourhood: "CBD",
				EntryFee: 100, AvgFood: 0, DurationMin: 30, Rating: 3, Popularity: 0.2,
			},
		},
		TransportTable: map[string]domain.TransportEdge{},
	}
	resolver := NewTransportResolver(catalogue, DefaultPlannerConfig())

	ranked := ScoreAndRank(catalogue.Places, nil, nil, "")
	if ranked[0].Place.ID != "pricey" {
		t.Fatalf("expected pricey ranked first, got %q", ranked[0].Place.ID)
	}

	result := BuildItinerary(ranked, "CBD", 500, 120, resolver)

	if len(result.Stops) != 1 || result.Stops[0].Place.ID != "modest" {
		t.Fatalf("expected the affordable candidate to be kept, got %+v", result.Stops)
	}
	if result.RemainingBudget != 400 {
		t.Fatalf("expected remaining budget 400, got %d", result.RemainingBudget)
	}
}

func TestBuildItineraryChargesTransportBetweenNeighbourhoods(t *testing.T) {
	catalogue := &domain.Catalogue{
		Neighbourhoods: map[string]domain.Neighbourhood{
			"CBD":       {Name: "CBD", Center: domain.Coordinates{Lat: -1.2864, Lng: 36.8172}},
			"Westlands": {Name: "Westlands", Center: domain.Coordinates{Lat: -1.2686, Lng: 36.8046}},
		},
		Places: []domain.Place{
			{
				ID: "java-westlands", Name: "Java House", Neighbourhood: "Westlands",
				EntryFee: 0, AvgFood: 450, DurationMin: 45, Rating: 4.2, Popularity: 0.85,
			},
		},
		TransportTable: map[string]domain.TransportEdge{
			domain.EdgeKey("CBD", "Westlands"): {Mode: "Matatu", Fare: 50, Minutes: 20},
		},
	}
	resolver := NewTransportResolver(catalogue, DefaultPlannerConfig())

	ranked := ScoreAndRank(catalogue.Places, nil, nil, "")
	result := BuildItinerary(ranked, "CBD", 1000, 120, resolver)

	if len(result.Stops) != 1 {
		t.Fatalf("expected 1 stop, got %d", len(result.Stops))
	}

	stop := result.Stops[0]
	if stop.Cost.Transport != 50 || stop.Cost.Total != 500 {
		t.Fatalf("expected transport 50 and total 500, got %+v", stop.Cost)
	}
	if stop.Time.Travel != 20 || stop.Time.Total != 65 {
		t.Fatalf("expected travel 20 and total 65, got %+v", stop.Time)
	}
	if result.RemainingBudget != 500 || result.RemainingMinutes != 55 {
		t.Fatalf("expected remaining 500/55, got %d/%d", result.RemainingBudget, result.RemainingMinutes)
	}
}

func TestBuildItineraryLedgerInvariant(t *testing.T) {
	catalogue := &domain.Catalogue{
		Neighbourhoods: map[string]domain.Neighbourhood{
			"CBD":       {Name: "CBD", Center: domain.Coordinates{Lat: -1.2864, Lng: 36.8172}},
			"Westlands": {Name: "Westlands", Center: domain.Coordinates{Lat: -1.2686, Lng: 36.8046}},
			"Kilimani":  {Name: "Kilimani", Center: domain.Coordinates{Lat: -1.2956, Lng: 36.8024}},
		},
		Places: []domain.Place{
			{ID: "a", Neighbourhood: "Westlands", EntryFee: 0, AvgFood: 300, DurationMin: 45, Rating: 4.5, Popularity: 0.9},
			{ID: "b", Neighbourhood: "Kilimani", EntryFee: 50, AvgFood: 200, DurationMin: 60, Rating: 4.2, Popularity: 0.7},
			{ID: "c", Neighbourhood: "CBD", EntryFee: 0, AvgFood: 150, DurationMin: 60, Rating: 4.0, Popularity: 0.6},
		},
		TransportTable: map[string]domain.TransportEdge{
			domain.EdgeKey("CBD", "Westlands"):      {Mode: "Matatu", Fare: 50, Minutes: 20},
			domain.EdgeKey("Westlands", "Kilimani"): {Mode: "Matatu", Fare: 30, Minutes: 12},
			domain.EdgeKey("Kilimani", "CBD"):       {Mode: "Matatu", Fare: 40, Minutes: 15},
		},
	}
	resolver := NewTransportResolver(catalogue, DefaultPlannerConfig())

	budget := 2000
	minutes := 300
	ranked := ScoreAndRank(catalogue.Places, nil, nil, "")
	result := BuildItinerary(ranked, "CBD", budget, minutes, resolver)

	spent := 0
	used := 0
	for _, s := range result.Stops {
		spent += s.Cost.Total
		used += s.Time.Total
	}

	if result.RemainingBudget+spent != budget {
		t.Fatalf("budget ledger out of balance: remaining %d + spent %d != %d", result.RemainingBudget, spent, budget)
	}
	if result.RemainingMinutes+used != minutes {
		t.Fatalf("time ledger out of balance: remaining %d + used %d != %d", result.RemainingMinutes, used, minutes)
	}
	if result.RemainingBudget < 0 || result.RemainingMinutes < 0 {
		t.Fatalf("ledgers must never go negative, got %d/%d", result.RemainingBudget, result.RemainingMinutes)
	}
}
