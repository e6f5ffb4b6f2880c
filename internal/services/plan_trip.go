package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"geospend-itinerary-service/internal/domain"
	"geospend-itinerary-service/internal/platform/obs"
	"geospend-itinerary-service/internal/ports"
)

// PlanTrip runs the full recommendation pipeline for one constraint:
// spatial filter, budget filter, scoring, and the greedy itinerary solver.
//
// The catalogue snapshot is loaded once through the repository port and the
// four stages operate on it without side effects, so concurrent calls need no
// coordination. Malformed-but-well-typed input degrades to an empty result;
// only contract violations (empty start, non-positive budget or minutes)
// return an error, and those are expected to be caught at the API boundary.
func PlanTrip(
	ctx context.Context,
	constraint domain.Constraint,
	repo ports.CatalogueRepository,
	cfg PlannerConfig,
) (_ domain.ItineraryResult, err error) {
	defer obs.Time(ctx, "services.PlanTrip")(&err)

	if constraint.Start == "" {
		return domain.ItineraryResult{}, errors.New("plan trip: start neighbourhood must be non-empty")
	}
	if constraint.TotalBudget <= 0 {
		return domain.ItineraryResult{}, fmt.Errorf("plan trip: total budget must be positive, got %d", constraint.TotalBudget)
	}
	if constraint.TotalMinutes <= 0 {
		return domain.ItineraryResult{}, fmt.Errorf("plan trip: total minutes must be positive, got %d", constraint.TotalMinutes)
	}

	catalogue, err := repo.LoadCatalogue(ctx)
	if err != nil {
		return domain.ItineraryResult{}, fmt.Errorf("plan trip: load catalogue: %w", err)
	}

	nearby := FilterByRadius(catalogue, constraint.Start, cfg.RadiusKm)
	affordable := FilterByBudget(nearby, constraint.TotalBudget, cfg.BudgetFraction)
	ranked := ScoreAndRank(affordable, constraint.PreferredCategories, constraint.PreferredVibes, constraint.FreeText)

	resolver := NewTransportResolver(catalogue, cfg)
	result := BuildItinerary(ranked, constraint.Start, constraint.TotalBudget, constraint.TotalMinutes, resolver)

	zap.L().Info("itinerary planned",
		zap.String("start", constraint.Start),
		zap.Int("catalogue_places", len(catalogue.Places)),
		zap.Int("nearby", len(nearby)),
		zap.Int("affordable", len(affordable)),
		zap.Int("stops", len(result.Stops)),
		zap.Int("remaining_budget", result.RemainingBudget),
		zap.Int("remaining_minutes", result.RemainingMinutes),
	)
	obs.PlansTotal.Inc()
	obs.PlanStops.Observe(float64(len(result.Stops)))

	return result, nil
}
