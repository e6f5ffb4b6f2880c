package services

import "geospend-itinerary-service/internal/domain"

// FilterByBudget retains candidates whose intrinsic cost (entry fee plus
// average food spend) does not exceed fraction*totalBudget. The boundary is
// inclusive. Transport cost is unknown at this stage and intentionally
// ignored; category preferences never exclude a candidate here and influence
// ranking only.
func FilterByBudget(candidates []domain.Place, totalBudget int, fraction float64) []domain.Place {
	threshold := float64(totalBudget) * fraction

	kept := make([]domain.Place, 0, len(candidates))
	for _, p := range candidates {
		if float64(p.IntrinsicCost()) <= threshold {
			kept = append(kept, p)
		}
	}

	return kept
}
