package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PlansTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "geospend_plans_total",
			Help: "Total number of itinerary plans computed",
		},
	)

	PlanStops = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "geospend_plan_stops",
			Help:    "Number of accepted stops per planned itinerary",
			Buckets: prometheus.LinearBuckets(0, 1, 11),
		},
	)

	OpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "geospend_op_duration_seconds",
			Help: "Duration of internal operations in seconds",
		},
		[]string{"op"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geospend_http_requests_total",
			Help: "Total HTTP requests by path and status",
		},
		[]string{"path", "status"},
	)

	RouteSegmentFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "geospend_route_segment_fallbacks_total",
			Help: "Road-route segments that degraded to a straight line",
		},
	)
)
