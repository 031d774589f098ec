package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipes_http_requests_total",
			Help: "Total number of HTTP requests by catalogue operation",
		},
		[]string{"operation", "method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipes_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipes_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	catalogueOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipes_catalogue_outcomes_total",
			Help: "Catalogue operations by outcome (ok, invalid, not_found, limited, error)",
		},
		[]string{"operation", "outcome"},
	)

	rateLimitRejects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipes_rate_limit_rejects_total",
			Help: "Total number of requests rejected due to rate limiting",
		},
		[]string{"operation"},
	)

	panicRecoveries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipes_panic_recoveries_total",
			Help: "Total number of panics recovered in HTTP handlers",
		},
	)
)

// metricsMiddleware records RED metrics for one catalogue operation.
func (s *Server) metricsMiddleware(op string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := newResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		status := wrapped.Status()
		httpRequestsTotal.WithLabelValues(op, r.Method, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		catalogueOutcomes.WithLabelValues(op, outcome(status)).Inc()
	}
}

// outcome classifies a response status for the outcomes counter.
func outcome(status int) string {
	switch {
	case status < 400:
		return "ok"
	case status == http.StatusBadRequest:
		return "invalid"
	case status == http.StatusNotFound:
		return "not_found"
	case status == http.StatusTooManyRequests:
		return "limited"
	default:
		return "error"
	}
}
