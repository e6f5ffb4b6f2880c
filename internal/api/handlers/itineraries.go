package handlers

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"geospend-itinerary-service/internal/adapters/routing"
	"geospend-itinerary-service/internal/api/dto"
	"geospend-itinerary-service/internal/domain"
	"geospend-itinerary-service/internal/ports"
	"geospend-itinerary-service/internal/services"
)

// ItineraryHandler orchestrates itinerary planning requests.
// It owns boundary validation (missing start/budget/hours are rejected here,
// before the pipeline runs) and optional road-path resolution for map
// rendering.
type ItineraryHandler struct {
	Repo   ports.CatalogueRepository
	Routes ports.RouteGeometryProvider
	Config services.PlannerConfig
}

func (h *ItineraryHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	start := strings.TrimSpace(req.Start)
	if start == "" {
		writeError(w, r, http.StatusBadRequest, "start is required")
		return
	}
	if req.Budget <= 0 {
		writeError(w, r, http.StatusBadRequest, "budget must be positive")
		return
	}
	if req.Hours <= 0 || req.Hours > 24 {
		writeError(w, r, http.StatusBadRequest, "hours must be between 0 and 24")
		return
	}

	constraint := domain.Constraint{
		Start:               start,
		TotalBudget:         req.Budget,
		TotalMinutes:        int(math.Round(req.Hours * 60)),
		PreferredCategories: req.Categories,
		PreferredVibes:      req.Vibes,
		FreeText:            req.Query,
	}

	result, err := services.PlanTrip(r.Context(), constraint, h.Repo, h.Config)
	if err != nil {
		zap.L().Error("plan trip failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.PlanResponse{
		Stops:            make([]dto.StopResponse, 0, len(result.Stops)),
		RemainingBudget:  result.RemainingBudget,
		RemainingMinutes: result.RemainingMinutes,
	}
	for _, s := range result.Stops {
		res.Stops = append(res.Stops, dto.StopResponse{
			PlaceID:       s.Place.ID,
			Name:          s.Place.Name,
			Category:      s.Place.Category,
			Neighbourhood: s.Place.Neighbourhood,
			Coords:        dto.CoordsResponse{Lat: s.Place.Coords.Lat, Lng: s.Place.Coords.Lng},
			Score:         s.Score,
			Transport: dto.TransportResponse{
				Mode:    s.Transport.Mode,
				Fare:    s.Transport.Fare,
				Minutes: s.Transport.Minutes,
			},
			Cost: dto.CostBreakdownResponse{
				Transport: s.Cost.Transport,
				Entry:     s.Cost.Entry,
				Food:      s.Cost.Food,
				Total:     s.Cost.Total,
			},
			Time: dto.TimeBreakdownResponse{
				Travel: s.Time.Travel,
				Visit:  s.Time.Visit,
				Total:  s.Time.Total,
			},
		})
	}

	if req.IncludePath && len(result.Stops) > 0 {
		res.Path = h.roadPath(r, start, result.Stops)
	}

	writeJSON(w, r, http.StatusOK, res)
}

// roadPath resolves a road-following polyline from the start neighbourhood
// through the accepted stops. Failures degrade to straight segments and
// never fail the plan response.
func (h *ItineraryHandler) roadPath(r *http.Request, start string, stops []domain.Stop) []dto.CoordsResponse {
	waypoints := make([]domain.Coordinates, 0, 1+len(stops))

	catalogue, err := h.Repo.LoadCatalogue(r.Context())
	if err != nil {
		zap.L().Warn("road path: load catalogue failed", zap.Error(err))
	} else if center, ok := catalogue.Center(start); ok {
		waypoints = append(waypoints, center)
	}
	for _, s := range stops {
		waypoints = append(waypoints, s.Place.Coords)
	}

	path := routing.BuildRoadPath(r.Context(), h.Routes, waypoints)

	out := make([]dto.CoordsResponse, 0, len(path))
	for _, c := range path {
		out = append(out, dto.CoordsResponse{Lat: c.Lat, Lng: c.Lng})
	}
	return out
}
