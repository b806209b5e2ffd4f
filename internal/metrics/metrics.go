// Package metrics provides Prometheus metrics collection for the quote service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// QuoteMutationsTotal counts quote state mutations by operation.
	QuoteMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_mutations_total",
			Help: "Total number of quote state mutations",
		},
		[]string{"operation"},
	)

	// StatePersistenceTotal counts state loads and saves by result.
	StatePersistenceTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_state_persistence_total",
			Help: "Total number of quote state load/save attempts",
		},
		[]string{"operation", "result"},
	)

	// QuoteExportsTotal counts text and CSV exports.
	QuoteExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_exports_total",
			Help: "Total number of quote exports",
		},
		[]string{"format", "status"},
	)

	// TotalsComputationDuration tracks the time spent aggregating totals.
	TotalsComputationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quote_totals_duration_seconds",
			Help:    "Quote totals computation duration in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	// CacheOperationsTotal tracks totals cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)

	// CircuitBreakerState exposes breaker state: 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordMutation counts one quote mutation.
func RecordMutation(operation string) {
	QuoteMutationsTotal.WithLabelValues(operation).Inc()
}

// RecordPersistence counts one state load or save.
func RecordPersistence(operation, result string) {
	StatePersistenceTotal.WithLabelValues(operation, result).Inc()
}

// RecordExport counts one export in the given format ("text", "csv", "clipboard").
func RecordExport(format, status string) {
	QuoteExportsTotal.WithLabelValues(format, status).Inc()
}

// RecordTotalsComputation observes the duration of one totals aggregation.
func RecordTotalsComputation(duration time.Duration) {
	TotalsComputationDuration.Observe(duration.Seconds())
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// SetCircuitBreakerState publishes the numeric state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
