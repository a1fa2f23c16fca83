package monitoring

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Metrics holds in-process request counters, exposed on /metrics.
type Metrics struct {
	RequestCount   int64            `json:"request_count"`
	ActiveRequests int64            `json:"active_requests"`
	ErrorCount     int64            `json:"error_count"`
	StatusCodes    map[string]int64 `json:"status_codes"`
	Endpoints      map[string]int64 `json:"endpoints"`
	TotalLatencyMs int64            `json:"total_latency_ms"`
	AvgLatencyMs   float64          `json:"avg_latency_ms"`
	StartedAt      time.Time        `json:"started_at"`
}

type metricsRegistry struct {
	mu      sync.Mutex
	metrics Metrics
}

var registry = newRegistry()

func newRegistry() *metricsRegistry {
	return &metricsRegistry{
		metrics: Metrics{
			StatusCodes: make(map[string]int64),
			Endpoints:   make(map[string]int64),
			StartedAt:   time.Now(),
		},
	}
}

func (r *metricsRegistry) record(method, path string, status int, latency time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := &r.metrics
	m.RequestCount++
	m.StatusCodes[strconv.Itoa(status)]++
	m.Endpoints[method+" "+path]++
	m.TotalLatencyMs += latency.Milliseconds()
	m.AvgLatencyMs = float64(m.TotalLatencyMs) / float64(m.RequestCount)
	if status >= http.StatusInternalServerError {
		m.ErrorCount++
	}
}

func (r *metricsRegistry) snapshot() Metrics {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := r.metrics
	snap.StatusCodes = make(map[string]int64, len(r.metrics.StatusCodes))
	for k, v := range r.metrics.StatusCodes {
		snap.StatusCodes[k] = v
	}
	snap.Endpoints = make(map[string]int64, len(r.metrics.Endpoints))
	for k, v := range r.metrics.Endpoints {
		snap.Endpoints[k] = v
	}
	return snap
}

// MetricsMiddleware counts requests, errors, per-status and per-endpoint
// totals, and latency.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		registry.mu.Lock()
		registry.metrics.ActiveRequests++
		registry.mu.Unlock()

		start := time.Now()
		c.Next()

		registry.mu.Lock()
		registry.metrics.ActiveRequests--
		registry.mu.Unlock()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		registry.record(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

func MetricsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, GetMetrics())
	}
}

func GetMetrics() Metrics {
	return registry.snapshot()
}

func resetGlobalMetrics() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.metrics = Metrics{
		StatusCodes: make(map[string]int64),
		Endpoints:   make(map[string]int64),
		StartedAt:   time.Now(),
	}
}
