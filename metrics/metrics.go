// Package metrics exposes Prometheus collectors for the HTTP surface
// and the outbound calls to external services.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type httpCollector struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

type upstreamCollector struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// Collectors register against the default registry once per process;
// the nil checks keep repeated construction in tests from panicking
// on duplicate registration.
var (
	globalHTTPCollector     *httpCollector
	globalUpstreamCollector *upstreamCollector
)

func getHTTPCollector() *httpCollector {
	if globalHTTPCollector == nil {
		globalHTTPCollector = &httpCollector{
			Requests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weather_http_requests_total",
					Help: "The total number of handled HTTP requests",
				},
				[]string{"method", "path", "status"},
			),
			Duration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "weather_http_request_duration_seconds",
					Help:    "HTTP request duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"method", "path"},
			),
		}
	}
	return globalHTTPCollector
}

func getUpstreamCollector() *upstreamCollector {
	if globalUpstreamCollector == nil {
		globalUpstreamCollector = &upstreamCollector{
			Requests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weather_upstream_requests_total",
					Help: "The total number of outbound requests to external services",
				},
				[]string{"target", "outcome"},
			),
			Duration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "weather_upstream_request_duration_seconds",
					Help:    "Outbound request duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"target"},
			),
		}
	}
	return globalUpstreamCollector
}

// HTTPMetrics records served requests.
type HTTPMetrics struct {
	collector *httpCollector
}

// NewHTTPMetrics creates the HTTP metrics recorder.
func NewHTTPMetrics() *HTTPMetrics {
	return &HTTPMetrics{collector: getHTTPCollector()}
}

// Record registers one handled request.
func (m *HTTPMetrics) Record(method, path string, status int, duration time.Duration) {
	m.collector.Requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.collector.Duration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// Outcome labels for upstream calls.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// UpstreamMetrics records outbound calls to one external service.
type UpstreamMetrics struct {
	target    string
	collector *upstreamCollector
}

// NewUpstreamMetrics creates a recorder for the named target.
func NewUpstreamMetrics(target string) *UpstreamMetrics {
	return &UpstreamMetrics{
		target:    target,
		collector: getUpstreamCollector(),
	}
}

// Record registers one outbound call and its outcome.
func (m *UpstreamMetrics) Record(outcome string, duration time.Duration) {
	m.collector.Requests.WithLabelValues(m.target, outcome).Inc()
	m.collector.Duration.WithLabelValues(m.target).Observe(duration.Seconds())
}
