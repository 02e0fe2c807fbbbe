package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// UpstreamMetrics records outbound calls against the flora API.
type UpstreamMetrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewUpstreamMetrics registers the upstream call metrics on the provided
// registerer.
func NewUpstreamMetrics(reg prometheus.Registerer) *UpstreamMetrics {
	if reg == nil {
		return &UpstreamMetrics{}
	}
	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_requests_total",
		Help: "Calls made to the flora API, by action and response status.",
	}, []string{"action", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "upstream_request_duration_seconds",
		Help:    "Upstream call latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"action"})
	reg.MustRegister(calls, duration)
	return &UpstreamMetrics{
		calls:    calls,
		duration: duration,
	}
}

// ObserveCall records one upstream call. A zero status means the request
// never produced a response.
func (u *UpstreamMetrics) ObserveCall(action string, status int, elapsed time.Duration) {
	if u == nil || u.calls == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	u.calls.WithLabelValues(action, label).Inc()
	u.duration.WithLabelValues(action).Observe(elapsed.Seconds())
}
