package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds all Prometheus metrics for the inspection server
type Metrics struct {
	// HTTP request metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Archive operation metrics
	archiveReadsTotal *prometheus.CounterVec
	statesServedTotal prometheus.Counter

	// Health check metrics
	healthChecksTotal *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	m := &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statebank_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "statebank_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		archiveReadsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statebank_archive_reads_total",
				Help: "Total number of archive header and body reads",
			},
			[]string{"operation", "status"},
		),

		statesServedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "statebank_states_served_total",
				Help: "Total number of states printed to clients",
			},
		),

		healthChecksTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statebank_health_checks_total",
				Help: "Total number of health checks",
			},
			[]string{"status"},
		),
	}

	return m
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	statusCodeStr := strconv.Itoa(statusCode)

	m.httpRequestsTotal.WithLabelValues(method, endpoint, statusCodeStr).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordArchiveRead records an archive read operation
func (m *Metrics) RecordArchiveRead(operation string, success bool) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.archiveReadsTotal.WithLabelValues(operation, status).Inc()
}

// RecordStatesServed records states printed to a client
func (m *Metrics) RecordStatesServed(count int) {
	m.statesServedTotal.Add(float64(count))
}

// RecordHealthCheck records a health check
func (m *Metrics) RecordHealthCheck(success bool) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.healthChecksTotal.WithLabelValues(status).Inc()
}

// InstrumentHandler instruments an HTTP handler with metrics
func (m *Metrics) InstrumentHandler(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create response writer wrapper to capture status code
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		// Call the original handler
		handler(rw, r)

		// Record metrics
		duration := time.Since(start)
		m.RecordHTTPRequest(method, endpoint, rw.statusCode, duration)
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
