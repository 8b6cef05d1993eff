// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Geocode outcomes
const (
	OutcomeSuccess     = "success"
	OutcomeNoResult    = "no_result"
	OutcomeUnavailable = "unavailable"
)

var (
	// HTTP Metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Geocoding Metrics
	GeocodeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocode_requests_total",
			Help: "Total number of geocoding provider calls",
		},
		[]string{"operation", "outcome"}, // operation: "forward", "reverse"
	)

	GeocodeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "geocode_request_duration_seconds",
			Help:    "Duration of geocoding provider calls in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	GeocodeCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocode_cache_hits_total",
			Help: "Total number of geocode cache hits",
		},
		[]string{"operation"},
	)

	GeocodeCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocode_cache_misses_total",
			Help: "Total number of geocode cache misses",
		},
		[]string{"operation"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Catalog Store Metrics
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_store_query_duration_seconds",
			Help:    "Duration of catalog store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"driver", "operation"},
	)

	StoreQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_store_query_errors_total",
			Help: "Total number of failed catalog store queries",
		},
		[]string{"driver", "operation"},
	)

	// Location Workflow Metrics
	LocationUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "location_updates_total",
			Help: "Total number of persisted location updates",
		},
		[]string{"subject", "source", "enrichment"}, // source: "coordinates", "address", "text"
	)

	EventPublishFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "location_event_publish_failures_total",
			Help: "Total number of location events that could not be published",
		},
	)
)

// RecordHTTPRequest records a completed HTTP request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// RecordGeocode records one provider call.
func RecordGeocode(operation, outcome string, duration time.Duration) {
	GeocodeRequests.WithLabelValues(operation, outcome).Inc()
	GeocodeDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordStoreQuery records one catalog store call.
func RecordStoreQuery(driver, operation string, duration time.Duration, err error) {
	StoreQueryDuration.WithLabelValues(driver, operation).Observe(duration.Seconds())
	if err != nil {
		StoreQueryErrors.WithLabelValues(driver, operation).Inc()
	}
}

// RecordLocationUpdate records a persisted location update.
func RecordLocationUpdate(subject, source, enrichment string) {
	LocationUpdates.WithLabelValues(subject, source, enrichment).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
