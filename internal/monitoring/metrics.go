package monitoring

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "numeric"

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Tool metrics
	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
	ToolErrors   *prometheus.CounterVec

	startTime time.Time

	snapshot Snapshot
	mu       sync.RWMutex
}

// Snapshot holds running totals for the JSON health endpoint
type Snapshot struct {
	TotalRequests int64   `json:"total_requests"`
	TotalErrors   int64   `json:"total_errors"`
	ToolCalls     int64   `json:"tool_calls"`
	ToolFailures  int64   `json:"tool_failures"`
	AvgLatencyMs  float64 `json:"avg_latency_ms"`
	UptimeSeconds float64 `json:"uptime_seconds"`

	totalDuration float64
}

// NewMetrics creates a metrics collector on its own registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry:  reg,
		startTime: time.Now(),

		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "path"},
		),
		ResponseSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_response_size_bytes",
				Help:      "HTTP response size in bytes",
				Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
			},
			[]string{"method", "path"},
		),

		ToolCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tool_calls_total",
				Help:      "Total number of tool executions",
			},
			[]string{"service", "tool", "status"},
		),
		ToolDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "tool_duration_seconds",
				Help:      "Tool execution duration in seconds",
				Buckets:   []float64{.00001, .0001, .001, .01, .1, 1},
			},
			[]string{"service", "tool"},
		),
		ToolErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tool_errors_total",
				Help:      "Total number of failed tool executions",
			},
			[]string{"service", "tool", "error_type"},
		),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.ResponseSize,
		m.ToolCalls,
		m.ToolDuration,
		m.ToolErrors,
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "uptime_seconds",
				Help:      "Service uptime in seconds",
			},
			func() float64 { return time.Since(m.startTime).Seconds() },
		),
		collectors.NewGoCollector(),
	)

	return m
}

// Registry exposes the underlying registry for tests and custom collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the Prometheus exposition format for this registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))

	m.mu.Lock()
	m.snapshot.TotalRequests++
	m.snapshot.totalDuration += duration.Seconds()
	if status != "" && (status[0] == '4' || status[0] == '5') {
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// RecordToolCall records a tool execution
func (m *Metrics) RecordToolCall(service, tool, status string, duration time.Duration) {
	m.ToolCalls.WithLabelValues(service, tool, status).Inc()
	m.ToolDuration.WithLabelValues(service, tool).Observe(duration.Seconds())

	m.mu.Lock()
	m.snapshot.ToolCalls++
	m.mu.Unlock()
}

// RecordToolError records a failed tool execution
func (m *Metrics) RecordToolError(service, tool, errorType string) {
	m.ToolErrors.WithLabelValues(service, tool, errorType).Inc()

	m.mu.Lock()
	m.snapshot.ToolFailures++
	m.mu.Unlock()
}

// Snapshot returns current running totals
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	snap := m.snapshot
	m.mu.RUnlock()

	if snap.TotalRequests > 0 {
		snap.AvgLatencyMs = snap.totalDuration / float64(snap.TotalRequests) * 1000
	}
	snap.UptimeSeconds = time.Since(m.startTime).Seconds()
	return snap
}
