package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "costar"

// Metrics holds the Prometheus instruments exposed by the API. Initialize
// once at startup via NewMetrics; a nil *Metrics disables collection.
type Metrics struct {
	registry *prometheus.Registry

	// PathRequests counts path searches by outcome.
	// Labels: outcome (found, not_connected, not_found, error)
	PathRequests *prometheus.CounterVec

	// PathDuration measures end-to-end path search latency.
	PathDuration prometheus.Histogram

	// PathHops tracks the length of found paths.
	PathHops prometheus.Histogram
}

// NewMetrics registers the API instruments on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		PathRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "path_requests_total",
			Help:      "Path searches by outcome.",
		}, []string{"outcome"}),
		PathDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "path_duration_seconds",
			Help:      "End-to-end path search latency.",
			Buckets:   prometheus.DefBuckets,
		}),
		PathHops: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "path_hops",
			Help:      "Number of hops in found paths.",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 6, 8, 10, 15},
		}),
	}
}

// Registry exposes the underlying registry for the /metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) observePath(outcome string, seconds float64, hops int) {
	if m == nil {
		return
	}
	m.PathRequests.WithLabelValues(outcome).Inc()
	m.PathDuration.Observe(seconds)
	if outcome == "found" {
		m.PathHops.Observe(float64(hops))
	}
}
