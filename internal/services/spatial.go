package services

import "geospend-itinerary-service/internal/domain"

// FilterByRadius narrows the catalogue to places within radiusKm of the start
// neighbourhood's center. An unrecognized start yields an empty candidate set,
// not an error; the caller-facing contract for an unknown location is "no
// stops". Retained candidates keep catalogue order.
func FilterByRadius(catalogue *domain.Catalogue, start string, radiusKm float64) []domain.Place {
	center, ok := catalogue.Center(start)
	if !ok {
		return []domain.Place{}
	}

	candidates := make([]domain.Place, 0, len(catalogue.Places))
	for _, p := range catalogue.Places {
		if domain.HaversineKm(center, p.Coords) <= radiusKm {
			candidates = append(candidates, p)
		}
	}

	return candidates
}
