package ports

import (
	"context"
	"geospend-itinerary-service/internal/domain"
)

// Port: a boundary for loading the place and transport catalogue from a
// data source. Implementations return a fully built immutable snapshot.
type CatalogueRepository interface {
	// Load the complete catalogue (neighbourhood centers, places, transport table).
	LoadCatalogue(ctx context.Context) (*domain.Catalogue, error)
}
