// Package prometheus defines the resolution-layer metrics and exposes the
// scrape handler. All metric families share the "courtdata" namespace.
package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "courtdata"

// Metrics aggregates the instrument handles used across the service. A
// single instance is created at startup and injected into the
// orchestrator and HTTP layer.
type Metrics struct {
	registry *prometheus.Registry

	// ResolutionAttempts counts every upstream attempt, successful or
	// not, labelled by provider, operation and outcome. Outcome is one of
	// "ok", "action_required" or "failed".
	ResolutionAttempts *prometheus.CounterVec

	// ResolutionDuration observes per-attempt upstream latency.
	ResolutionDuration *prometheus.HistogramVec

	// CascadeDepth observes how many providers were tried before a
	// lookup terminated.
	CascadeDepth prometheus.Histogram

	// CaptchaSuspensions counts lookups suspended for operator captcha
	// input, labelled by provider.
	CaptchaSuspensions *prometheus.CounterVec

	// HTTPRequests counts inbound API requests by method, route and
	// status class.
	HTTPRequests *prometheus.CounterVec

	// HTTPDuration observes inbound request latency by route.
	HTTPDuration *prometheus.HistogramVec
}

// NewMetrics builds and registers all metric families on a private
// registry. Using a private registry keeps tests independent and avoids
// double-registration panics when multiple instances exist in one
// process.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector())

	m := &Metrics{
		registry: reg,
		ResolutionAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolution_attempts_total",
			Help:      "Upstream provider attempts by provider, operation and outcome.",
		}, []string{"provider", "operation", "outcome"}),
		ResolutionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "resolution_attempt_duration_seconds",
			Help:      "Latency of individual upstream provider attempts.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"provider", "operation"}),
		CascadeDepth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "resolution_cascade_depth",
			Help:      "Number of providers attempted before a lookup terminated.",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 8, 10},
		}),
		CaptchaSuspensions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "captcha_suspensions_total",
			Help:      "Lookups suspended pending operator captcha input.",
		}, []string{"provider"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Inbound HTTP requests by method, route and status class.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Inbound HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	reg.MustRegister(
		m.ResolutionAttempts,
		m.ResolutionDuration,
		m.CascadeDepth,
		m.CaptchaSuspensions,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

// ObserveAttempt records a single upstream attempt.
func (m *Metrics) ObserveAttempt(provider, operation, outcome string, elapsed time.Duration) {
	m.ResolutionAttempts.WithLabelValues(provider, operation, outcome).Inc()
	m.ResolutionDuration.WithLabelValues(provider, operation).Observe(elapsed.Seconds())
}

// Handler returns the scrape endpoint for this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
