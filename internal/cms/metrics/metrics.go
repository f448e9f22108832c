// Package metrics registers the Prometheus instruments for the API layer.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "siteforge",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, path and status code.",
	},
	[]string{"method", "path", "code"},
)

var requestDuration = promauto.With(prometheus.DefaultRegisterer).NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "siteforge",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

var generationSessions = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "siteforge",
		Subsystem: "generation",
		Name:      "sessions_total",
		Help:      "Generation pipeline sessions by terminal state.",
	},
	[]string{"state"},
)

// ObserveRequest records one completed HTTP request.
func ObserveRequest(method, path string, code int, took time.Duration) {
	requestsTotal.WithLabelValues(method, path, strconv.Itoa(code)).Inc()
	requestDuration.WithLabelValues(method, path).Observe(took.Seconds())
}

// CountSession records a generation session reaching a terminal state.
func CountSession(state string) {
	generationSessions.WithLabelValues(state).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware instruments every request with count and latency.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		ObserveRequest(r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
