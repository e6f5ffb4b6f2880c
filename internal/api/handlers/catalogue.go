package handlers

import (
	"net/http"
	"slices"
	"strings"

	"go.uber.org/zap"

	"geospend-itinerary-service/internal/api/dto"
	"geospend-itinerary-service/internal/ports"
)

// CatalogueHandler exposes read-only catalogue endpoints so front ends can
// render place and neighbourhood choices.
type CatalogueHandler struct {
	Repo ports.CatalogueRepository
}

func (h *CatalogueHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	catalogue, err := h.Repo.LoadCatalogue(r.Context())
	if err != nil {
		zap.L().Error("list places failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPlacesResponse{
		Places: make([]dto.PlaceResponse, 0, len(catalogue.Places)),
	}
	for _, p := range catalogue.Places {
		res.Places = append(res.Places, dto.PlaceResponse{
			ID:            p.ID,
			Name:          p.Name,
			Category:      p.Category,
			Neighbourhood: p.Neighbourhood,
			Coords:        dto.CoordsResponse{Lat: p.Coords.Lat, Lng: p.Coords.Lng},
			EntryFee:      p.EntryFee,
			AvgFood:       p.AvgFood,
			DurationMin:   p.DurationMin,
			Rating:        p.Rating,
			PriceTier:     p.PriceTier,
			Tags:          p.Tags,
			Vibes:         p.Vibes,
			Popularity:    p.Popularity,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *CatalogueHandler) ListNeighbourhoods(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	catalogue, err := h.Repo.LoadCatalogue(r.Context())
	if err != nil {
		zap.L().Error("list neighbourhoods failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListNeighbourhoodsResponse{
		Neighbourhoods: make([]dto.NeighbourhoodResponse, 0, len(catalogue.Neighbourhoods)),
	}
	for _, n := range catalogue.Neighbourhoods {
		res.Neighbourhoods = append(res.Neighbourhoods, dto.NeighbourhoodResponse{
			Name:   n.Name,
			Center: dto.CoordsResponse{Lat: n.Center.Lat, Lng: n.Center.Lng},
		})
	}

	// Map iteration order is random; keep the payload stable.
	slices.SortFunc(res.Neighbourhoods, func(a, b dto.NeighbourhoodResponse) int {
		return strings.Compare(a.Name, b.Name)
	})

	writeJSON(w, r, http.StatusOK, res)
}
