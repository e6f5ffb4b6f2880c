package services

import "geospend-itinerary-service/internal/domain"

// BuildItinerary assembles an ordered, budget- and time-feasible itinerary by
// walking the ranked candidates once, in score order.
//
// Each candidate is accepted iff its full cost (transport fare + entry fee +
// food) and full time (travel + visit) fit the remaining ledgers; acceptance
// charges the ledgers and moves the current location to the candidate's
// neighbourhood. A rejected candidate is skipped permanently — there is no
// backtracking, lookahead, or smaller-budget retry. The result is a fast,
// explainable single-pass heuristic, not a provably optimal itinerary.
func BuildItinerary(
	ranked []domain.ScoredCandidate,
	start string,
	totalBudget int,
	totalMinutes int,
	transport *TransportResolver,
) domain.ItineraryResult {
	remainingBudget := totalBudget
	remainingMinutes := totalMinutes
	currentLocation := start

	stops := []domain.Stop{}

	for _, candidate := range ranked {
		place := candidate.Place
		leg := transport.Resolve(currentLocation, place.Neighbourhood)

		totalCost := leg.Fare + place.EntryFee + place.AvgFood
		totalTime := leg.Minutes + place.DurationMin

		if totalCost > remainingBudget || totalTime > remainingMinutes {
			continue
		}

		stops = append(stops, domain.Stop{
			Place:     place,
			Score:     candidate.Score,
			Transport: leg,
			Cost: domain.CostBreakdown{
				Transport: leg.Fare,
				Entry:     place.EntryFee,
				Food:      place.AvgFood,
				Total:     totalCost,
			},
			Time: domain.TimeBreakdown{
				Travel: leg.Minutes,
				Visit:  place.DurationMin,
				Total:  totalTime,
			},
		})

		remainingBudget -= totalCost
		remainingMinutes -= totalTime
		currentLocation = place.Neighbourhood
	}

	return domain.ItineraryResult{
		Stops:            stops,
		RemainingBudget:  remainingBudget,
		RemainingMinutes: remainingMinutes,
	}
}
