// Package metrics provides Prometheus metrics for the inventory optimizer.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, route and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, route and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// SolvesTotal counts optimizer runs by algorithm and outcome.
	SolvesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "optimizer_solves_total",
			Help: "Total number of optimizer solves",
		},
		[]string{"algorithm", "status"},
	)

	// SolveDuration tracks wall time per solve, cache hits excluded.
	SolveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "optimizer_solve_duration_seconds",
			Help:    "Optimizer solve duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"algorithm"},
	)

	// StatesExplored tracks how many (day, stock) states a solve evaluated.
	StatesExplored = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "optimizer_states_explored",
			Help:    "Number of DP states evaluated per solve",
			Buckets: prometheus.ExponentialBuckets(10, 4, 10),
		},
		[]string{"algorithm"},
	)

	// HorizonDays tracks requested planning horizons.
	HorizonDays = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "optimizer_horizon_days",
			Help:    "Planning horizon length in days",
			Buckets: []float64{1, 7, 14, 30, 60, 90, 180, 365},
		},
	)

	// CacheOperationsTotal tracks plan cache operations.
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

	// CircuitBreakerState exposes breaker state: 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
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
			// unmatched routes share one label to bound cardinality
			path = "unmatched"
		}

		c.Next()

		statusCode := strconv.Itoa(c.Writer.Status())
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path, statusCode).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.WithLabelValues(c.Request.Method, path, statusCode).Inc()
	}
}

// RecordSolve records one optimizer run. states is ignored for failed runs.
func RecordSolve(algorithm, status string, duration time.Duration, states int) {
	SolvesTotal.WithLabelValues(algorithm, status).Inc()
	SolveDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	if status == "success" {
		StatesExplored.WithLabelValues(algorithm).Observe(float64(states))
	}
}

// RecordHorizon records the length of a requested horizon.
func RecordHorizon(days int) {
	HorizonDays.Observe(float64(days))
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

// SetCircuitBreakerState publishes a breaker's state.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
