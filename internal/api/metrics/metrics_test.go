package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func value(t *testing.T, c prometheus.Metric) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	switch {
	case m.Counter != nil:
		return m.Counter.GetValue()
	case m.Gauge != nil:
		return m.Gauge.GetValue()
	}
	t.Fatalf("unsupported metric type")
	return 0
}

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveAuth("login", true)
	m.ObserveAuth("login", false)
	m.ObserveAuth("login", false)
	m.ObserveMutation("film", "create")
	m.ObserveAudit("written")
	m.ObserveThrottled()
	m.SetQueueDepth("0", 3)
	m.ObserveAuditWrite(10 * time.Millisecond)

	if got := value(t, m.AuthAttempts.WithLabelValues("login", "failure")); got != 2 {
		t.Fatalf("expected 2 failed logins, got %v", got)
	}
	if got := value(t, m.CatalogMutations.WithLabelValues("film", "create")); got != 1 {
		t.Fatalf("expected 1 film create, got %v", got)
	}
	if got := value(t, m.AuditQueueDepth.WithLabelValues("0")); got != 3 {
		t.Fatalf("expected queue depth 3, got %v", got)
	}
	if got := value(t, m.LoginThrottled); got != 1 {
		t.Fatalf("expected 1 throttled request, got %v", got)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveAuth("login", true)
	m.ObserveMutation("film", "delete")
	m.ObserveAudit("dropped")
	m.ObserveThrottled()
	m.SetQueueDepth("1", 1)
	m.ObserveAuditWrite(time.Second)
}
