package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dialog outcomes used as the outcome label.
const (
	OutcomeElicit    = "elicit"
	OutcomeDelegate  = "delegate"
	OutcomeFulfilled = "fulfilled"
	OutcomeFailed    = "failed"
	OutcomeError     = "error"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Dialog metrics
	DialogRequestsTotal   *prometheus.CounterVec
	DialogDurationSeconds *prometheus.HistogramVec

	// Lookup metrics
	LookupMissesTotal *prometheus.CounterVec

	// HTTP metrics
	HTTPRequestsTotal *prometheus.CounterVec

	// Rate limiter metrics
	RateLimiterDropped prometheus.Counter

	// Scrape endpoint metrics
	MetricsAuthRejected *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		DialogRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "showrank_dialog_requests_total",
				Help: "Total number of code hook invocations by intent and outcome",
			},
			[]string{"intent", "outcome"}, // outcome: elicit, delegate, fulfilled, failed, error
		),

		DialogDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "showrank_dialog_duration_seconds",
				Help:    "Code hook processing duration in seconds by intent",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1}, // in-memory lookups
			},
			[]string{"intent"},
		),

		LookupMissesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "showrank_lookup_misses_total",
				Help: "Total number of lookups with no matching entry by table",
			},
			[]string{"table"}, // table: best_show, top_five, imdb_score
		),

		HTTPRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "showrank_http_requests_total",
				Help: "Total number of fulfillment HTTP requests by status code class",
			},
			[]string{"status"},
		),

		RateLimiterDropped: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "showrank_rate_limiter_dropped_total",
				Help: "Total number of fulfillment requests rejected by the rate limiter",
			},
		),

		MetricsAuthRejected: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "showrank_metrics_auth_rejected_total",
				Help: "Total number of /metrics scrapes rejected by Basic Auth",
			},
			[]string{"reason"}, // reason: missing, invalid
		),
	}

	return m
}

// RecordDialog records one code hook invocation
func (m *Metrics) RecordDialog(intent, outcome string, duration float64) {
	m.DialogRequestsTotal.WithLabelValues(intent, outcome).Inc()
	m.DialogDurationSeconds.WithLabelValues(intent).Observe(duration)
}

// RecordLookupMiss records a lookup that found nothing
func (m *Metrics) RecordLookupMiss(table string) {
	m.LookupMissesTotal.WithLabelValues(table).Inc()
}

// RecordHTTPRequest records a fulfillment HTTP response status (e.g. "2xx", "4xx")
func (m *Metrics) RecordHTTPRequest(status string) {
	m.HTTPRequestsTotal.WithLabelValues(status).Inc()
}

// RecordRateLimiterDrop records a request dropped by the rate limiter
func (m *Metrics) RecordRateLimiterDrop() {
	m.RateLimiterDropped.Inc()
}

// RecordMetricsAuthRejected records a scrape rejected for reason ("missing" or "invalid")
func (m *Metrics) RecordMetricsAuthRejected(reason string) {
	m.MetricsAuthRejected.WithLabelValues(reason).Inc()
}

// RegisterLogDrops exposes the number of log records the remote sink
// dropped. dropped is read at scrape time.
func RegisterLogDrops(registry *prometheus.Registry, dropped func() uint64) {
	promauto.With(registry).NewCounterFunc(
		prometheus.CounterOpts{
			Name: "showrank_log_dropped_total",
			Help: "Total number of log records dropped before reaching the remote sink",
		},
		func() float64 { return float64(dropped()) },
	)
}
