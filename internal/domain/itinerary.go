package domain

// Traveller constraints for a single planning request.
// Constructed once per request and never mutated.
type Constraint struct {
	Start               string
	TotalBudget         int
	TotalMinutes        int
	PreferredCategories []string
	PreferredVibes      []string
	FreeText            string
}

// A place paired with its preference-match score.
type ScoredCandidate struct {
	Place Place
	Score float64
}

type CostBreakdown struct {
	Transport int
	Entry     int
	Food      int
	Total     int
}

type TimeBreakdown struct {
	Travel int
	Visit  int
	Total  int
}

// Stop is one accepted place in the final itinerary, with the transport leg
// used to reach it and its cost and time accounting.
type Stop struct {
	Place     Place
	Score     float64
	Transport TransportEdge
	Cost      CostBreakdown
	Time      TimeBreakdown
}

// ItineraryResult is the ordered outcome of a planning run.
// Every accepted stop has already been charged against the ledgers, so
// RemainingBudget and RemainingMinutes are never negative.
// A new request produces a new result; results are never mutated.
type ItineraryResult struct {
	Stops            []Stop
	RemainingBudget  int
	RemainingMinutes int
}
