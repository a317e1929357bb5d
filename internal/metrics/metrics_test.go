package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	if m == nil {
		t.Fatal("New() returned nil")
	}

	// Verify all metric fields are initialized
	if m.DialogRequestsTotal == nil {
		t.Error("DialogRequestsTotal is nil")
	}
	if m.DialogDurationSeconds == nil {
		t.Error("DialogDurationSeconds is nil")
	}
	if m.LookupMissesTotal == nil {
		t.Error("LookupMissesTotal is nil")
	}
	if m.HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal is nil")
	}
	if m.RateLimiterDropped == nil {
		t.Error("RateLimiterDropped is nil")
	}
}

func TestRecordDialog(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.RecordDialog("GetBestShow", OutcomeDelegate, 0.0002)
	m.RecordDialog("GetBestShow", OutcomeDelegate, 0.0003)
	m.RecordDialog("GetBestShow", OutcomeFulfilled, 0.0001)

	if got := testutil.ToFloat64(m.DialogRequestsTotal.WithLabelValues("GetBestShow", OutcomeDelegate)); got != 2 {
		t.Errorf("delegate count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.DialogRequestsTotal.WithLabelValues("GetBestShow", OutcomeFulfilled)); got != 1 {
		t.Errorf("fulfilled count = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.DialogDurationSeconds); got != 1 {
		t.Errorf("duration series = %d, want 1", got)
	}
}

func TestRecordLookupMiss(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.RecordLookupMiss("imdb_score")
	m.RecordLookupMiss("imdb_score")
	m.RecordLookupMiss("best_show")

	if got := testutil.ToFloat64(m.LookupMissesTotal.WithLabelValues("imdb_score")); got != 2 {
		t.Errorf("imdb_score misses = %v, want 2", got)
	}
}

func TestRecordHTTPRequestAndDrop(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.RecordHTTPRequest("2xx")
	m.RecordHTTPRequest("4xx")
	m.RecordRateLimiterDrop()

	if got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("4xx")); got != 1 {
		t.Errorf("4xx count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.RateLimiterDropped); got != 1 {
		t.Errorf("dropped = %v, want 1", got)
	}
}

func TestMetrics_WithDefaultRegistry(t *testing.T) {
	// Metrics on a private registry must not conflict with the default one
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.RecordDialog("GetTopFive", OutcomeFulfilled, 0.001)
	m.RecordLookupMiss("top_five")
	m.RecordHTTPRequest("2xx")
	m.RecordRateLimiterDrop()
	m.RecordMetricsAuthRejected("missing")

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}

	expectedMetrics := map[string]bool{
		"showrank_dialog_requests_total":       false,
		"showrank_dialog_duration_seconds":     false,
		"showrank_lookup_misses_total":         false,
		"showrank_http_requests_total":         false,
		"showrank_rate_limiter_dropped_total":  false,
		"showrank_metrics_auth_rejected_total": false,
	}

	for _, mf := range metricFamilies {
		if _, ok := expectedMetrics[mf.GetName()]; ok {
			expectedMetrics[mf.GetName()] = true
		}
	}

	for name, found := range expectedMetrics {
		if !found {
			t.Errorf("Expected metric %s not found", name)
		}
	}
}

func TestRecordMetricsAuthRejected(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordMetricsAuthRejected("missing")
	m.RecordMetricsAuthRejected("invalid")
	m.RecordMetricsAuthRejected("invalid")

	if got := testutil.ToFloat64(m.MetricsAuthRejected.WithLabelValues("invalid")); got != 2 {
		t.Errorf("invalid rejections = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.MetricsAuthRejected.WithLabelValues("missing")); got != 1 {
		t.Errorf("missing rejections = %v, want 1", got)
	}
}

func TestRegisterLogDrops(t *testing.T) {
	registry := prometheus.NewRegistry()
	var dropped uint64 = 3
	RegisterLogDrops(registry, func() uint64 { return dropped })

	const want = `
# HELP showrank_log_dropped_total Total number of log records dropped before reaching the remote sink
# TYPE showrank_log_dropped_total counter
showrank_log_dropped_total 3
`
	if err := testutil.GatherAndCompare(registry, strings.NewReader(want), "showrank_log_dropped_total"); err != nil {
		t.Error(err)
	}

	dropped = 7
	if err := testutil.GatherAndCompare(registry,
		strings.NewReader(strings.Replace(want, "total 3", "total 7", 1)),
		"showrank_log_dropped_total"); err != nil {
		t.Error(err)
	}
}
