package services

// PlannerConfig carries the tunable constants of the recommendation pipeline.
// Every value that was an inline literal in earlier iterations is named here
// so call sites share a single documented default set.
type PlannerConfig struct {
	// RadiusKm bounds the spatial search around the start neighbourhood.
	RadiusKm float64
	// BudgetFraction caps a place's intrinsic cost relative to the total budget.
	BudgetFraction float64
	// DefaultPopularity substitutes for places loaded without a popularity value.
	DefaultPopularity float64

	// Transport estimation used when no explicit edge exists.
	FallbackMode    string
	FarePerKm       float64
	MinutesPerKm    float64
	MinFare         int
	MinMinutes      int
	FallbackFare    int
	FallbackMinutes int
}

// DefaultPlannerConfig returns the standard planner tuning.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		RadiusKm:          20,
		BudgetFraction:    0.6,
		DefaultPopularity: 0.5,
		FallbackMode:      "Matatu",
		FarePerKm:         8,
		MinutesPerKm:      3,
		MinFare:           30,
		MinMinutes:        10,
		FallbackFare:      80,
		FallbackMinutes:   45,
	}
}
