package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the Prometheus instruments for the HTTP surface.
// Each Handler owns its own registry so multiple instances (tests
// included) never collide on metric registration.
type metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	analyzesTotal   *prometheus.CounterVec
	analyzeDuration prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buildlens_http_requests_total",
				Help: "HTTP requests handled, by route and status code",
			},
			[]string{"route", "status"},
		),
		analyzesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buildlens_analyzes_total",
				Help: "Log analyses performed, by format key",
			},
			[]string{"format"},
		),
		analyzeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "buildlens_analyze_duration_seconds",
				Help:    "Wall time spent parsing one log",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
			},
		),
	}

	m.registry.MustRegister(m.requestsTotal)
	m.registry.MustRegister(m.analyzesTotal)
	m.registry.MustRegister(m.analyzeDuration)

	return m
}
