/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream fetch outcomes.
const (
	FetchSuccess        = "success"
	FetchHTTPError      = "http_error"
	FetchTransportError = "transport_error"
	FetchDecodeError    = "decode_error"
)

// Selection results.
const (
	SelectionSelected = "selected"
	SelectionNotFound = "not_found"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	// Upstream patient API metrics
	upstreamFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitalboard_upstream_fetch_total",
			Help: "Total number of patient list fetches by outcome",
		},
		[]string{"outcome"},
	)

	upstreamFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vitalboard_upstream_fetch_duration_seconds",
			Help:    "Patient list fetch duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	// Directory metrics
	patientsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vitalboard_patients_loaded",
			Help: "Number of patients held by the directory",
		},
	)

	patientSelections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitalboard_patient_selections_total",
			Help: "Total number of patient selection requests by result",
		},
		[]string{"result"},
	)
)

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware creates HTTP metrics middleware
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		path := normalizePath(r.URL.Path)

		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
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

// normalizePath replaces identifier segments to keep label cardinality bounded.
func normalizePath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if _, err := uuid.Parse(segment); err == nil {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}

// RecordUpstreamFetch records a patient list fetch
func RecordUpstreamFetch(outcome string, duration time.Duration) {
	upstreamFetchTotal.WithLabelValues(outcome).Inc()
	upstreamFetchDuration.Observe(duration.Seconds())
}

// SetPatientsLoaded records the size of the loaded collection
func SetPatientsLoaded(count int) {
	patientsLoaded.Set(float64(count))
}

// RecordSelection records a patient selection request
func RecordSelection(result string) {
	patientSelections.WithLabelValues(result).Inc()
}
