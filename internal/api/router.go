package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"geospend-itinerary-service/internal/api/handlers"
	"geospend-itinerary-service/internal/ports"
	"geospend-itinerary-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// The route geometry provider may be nil; itinerary paths then degrade to
// straight segments.
func NewRouter(
	repo ports.CatalogueRepository,
	routes ports.RouteGeometryProvider,
	cfg services.PlannerConfig,
) http.Handler {
	mux := http.NewServeMux()

	catalogueHandler := &handlers.CatalogueHandler{Repo: repo}
	itineraryHandler := &handlers.ItineraryHandler{
		Repo:   repo,
		Routes: routes,
		Config: cfg,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/places", catalogueHandler.ListPlaces)
	mux.HandleFunc("/neighbourhoods", catalogueHandler.ListNeighbourhoods)
	mux.HandleFunc("/itineraries", itineraryHandler.Plan)

	return loggingMiddleware(mux)
}
