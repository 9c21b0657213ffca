// Package metrics define los colectores Prometheus del servicio de rutas.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resultados posibles de una consulta de ruta.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

type Metrics struct {
	RouteQueries   *prometheus.CounterVec
	SearchDuration prometheus.Histogram
	ExpandedNodes  prometheus.Histogram
	GraphRebuilds  *prometheus.CounterVec
	GraphNodes     prometheus.Gauge
	BlockedPaths   prometheus.Gauge
}

// New registra los colectores en reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RouteQueries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "campus_route_queries_total",
			Help: "Route queries by outcome",
		}, []string{"outcome"}),
		SearchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "campus_route_search_duration_seconds",
			Help:    "Time spent in the A* search",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		ExpandedNodes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "campus_route_expanded_nodes",
			Help:    "Nodes expanded per route search",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		GraphRebuilds: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "campus_graph_rebuilds_total",
			Help: "Graph snapshots published, by cause",
		}, []string{"reason"}),
		GraphNodes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "campus_graph_nodes",
			Help: "Nodes in the current graph snapshot",
		}),
		BlockedPaths: factory.NewGauge(prometheus.GaugeOpts{
			Name: "campus_blocked_paths",
			Help: "Blocked paths in the current graph snapshot",
		}),
	}
}

// ObserveSearch registra una consulta. Es seguro llamarlo sobre un *Metrics nil.
func (m *Metrics) ObserveSearch(outcome string, elapsed time.Duration, expanded int) {
	if m == nil {
		return
	}
	m.RouteQueries.WithLabelValues(outcome).Inc()
	m.SearchDuration.Observe(elapsed.Seconds())
	if outcome == OutcomeFound || outcome == OutcomeNotFound {
		m.ExpandedNodes.Observe(float64(expanded))
	}
}

// ObserveRebuild registra la publicación de una instantánea nueva.
func (m *Metrics) ObserveRebuild(reason string, nodes, blocked int) {
	if m == nil {
		return
	}
	m.GraphRebuilds.WithLabelValues(reason).Inc()
	m.GraphNodes.Set(float64(nodes))
	m.BlockedPaths.Set(float64(blocked))
}
