// Package observability holds the service's Prometheus metrics.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ExtractionAttempts counts pipeline runs by outcome:
	// detected, no_candidates, no_match, unconfigured, timeout.
	ExtractionAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roamlog",
		Subsystem: "extraction",
		Name:      "attempts_total",
		Help:      "Place extraction attempts by outcome.",
	}, []string{"outcome"})

	ExtractionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "roamlog",
		Subsystem: "extraction",
		Name:      "duration_seconds",
		Help:      "End-to-end place extraction latency.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})

	gatewayCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roamlog",
		Subsystem: "places",
		Name:      "gateway_calls_total",
		Help:      "Outbound geocoding gateway calls by operation and status.",
	}, []string{"operation", "status"})

	gatewayDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "roamlog",
		Subsystem: "places",
		Name:      "gateway_duration_seconds",
		Help:      "Outbound geocoding gateway call latency.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"operation"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roamlog",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "roamlog",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
)

// ObserveGatewayCall records one outbound gateway call.
func ObserveGatewayCall(operation string, err error, elapsed time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	gatewayCalls.WithLabelValues(operation, status).Inc()
	gatewayDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
