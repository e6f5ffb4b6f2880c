package services

import (
	"math"

	"geospend-itinerary-service/internal/domain"
)

// WalkMode labels the zero-cost leg used when origin and destination coincide.
const WalkMode = "Walk"

// TransportResolver resolves the cost and time of moving between two named
// neighbourhoods. Explicit table data always wins; otherwise the resolver
// estimates from straight-line distance, and as a last resort returns a fixed
// default. The fallback chain always yields a usable leg, so a plan never
// fails solely because transit data is incomplete.
//
// The resolver is safe for concurrent use.
type TransportResolver struct {
	catalogue *domain.Catalogue
	cfg       PlannerConfig
}

func NewTransportResolver(catalogue *domain.Catalogue, cfg PlannerConfig) *TransportResolver {
	return &TransportResolver{catalogue: catalogue, cfg: cfg}
}

// Resolve returns the transport leg from origin to destination.
func (r *TransportResolver) Resolve(origin, destination string) domain.TransportEdge {
	if origin == destination {
		return domain.TransportEdge{Mode: WalkMode, Fare: 0, Minutes: 0}
	}

	if edge, ok := r.catalogue.Edge(origin, destination); ok {
		return edge
	}

	originCenter, okOrigin := r.catalogue.Center(origin)
	destCenter, okDest := r.catalogue.Center(destination)
	if !okOrigin || !okDest {
		return domain.TransportEdge{
			Mode:    r.cfg.FallbackMode,
			Fare:    r.cfg.FallbackFare,
			Minutes: r.cfg.FallbackMinutes,
		}
	}

	km := domain.HaversineKm(originCenter, destCenter)

	// Floors keep even very short hops at a realistic minimum fare and time.
	fare := int(math.Round(math.Max(float64(r.cfg.MinFare), km*r.cfg.FarePerKm)))
	minutes := int(math.Round(math.Max(float64(r.cfg.MinMinutes), km*r.cfg.MinutesPerKm)))

	return domain.TransportEdge{Mode: r.cfg.FallbackMode, Fare: fare, Minutes: minutes}
}
