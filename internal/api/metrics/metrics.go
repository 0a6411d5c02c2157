// Package metrics defines the custom Prometheus metrics of the film API.
// HTTP request metrics come from echoprometheus; this package covers the
// domain-level counters.
//
// Construct one Metrics per registry with New. A nil *Metrics is valid and
// records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const Namespace = "film"

type Metrics struct {
	// AuthAttempts counts login and registration attempts.
	// Labels:
	//   - action: "login" or "register"
	//   - result: "success" or "failure"
	AuthAttempts *prometheus.CounterVec

	// LoginThrottled counts requests rejected by the login throttle.
	LoginThrottled prometheus.Counter

	// CatalogMutations counts committed writes.
	// Labels:
	//   - resource: film, person, location, award, user
	//   - action: create, update, delete
	CatalogMutations *prometheus.CounterVec

	// AuditEvents counts audit events by outcome.
	// Label:
	//   - result: "written", "failed" or "dropped"
	AuditEvents *prometheus.CounterVec

	// AuditQueueDepth tracks the events waiting in each dispatcher worker channel.
	AuditQueueDepth *prometheus.GaugeVec

	// AuditWriteDuration measures how long a single sink write takes.
	AuditWriteDuration prometheus.Histogram
}

// New registers all metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		AuthAttempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "auth_attempts_total",
			Help:      "Total number of login and registration attempts.",
		}, []string{"action", "result"}),
		LoginThrottled: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "login_throttled_total",
			Help:      "Total number of login or registration requests rejected by the throttle.",
		}),
		CatalogMutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "catalog_mutations_total",
			Help:      "Total number of committed catalog writes.",
		}, []string{"resource", "action"}),
		AuditEvents: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "audit_events_total",
			Help:      "Total number of audit events, labelled by outcome.",
		}, []string{"result"}),
		AuditQueueDepth: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "audit_queue_depth",
			Help:      "Current number of audit events pending in each dispatcher worker channel.",
		}, []string{"worker_id"}),
		AuditWriteDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "audit_write_duration_seconds",
			Help:      "Duration of a single audit sink write.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) ObserveAuth(action string, ok bool) {
	if m == nil {
		return
	}
	result := "success"
	if !ok {
		result = "failure"
	}
	m.AuthAttempts.WithLabelValues(action, result).Inc()
}

func (m *Metrics) ObserveThrottled() {
	if m == nil {
		return
	}
	m.LoginThrottled.Inc()
}

func (m *Metrics) ObserveMutation(resource, action string) {
	if m == nil {
		return
	}
	m.CatalogMutations.WithLabelValues(resource, action).Inc()
}

func (m *Metrics) ObserveAudit(result string) {
	if m == nil {
		return
	}
	m.AuditEvents.WithLabelValues(result).Inc()
}

func (m *Metrics) SetQueueDepth(workerID string, depth int) {
	if m == nil {
		return
	}
	m.AuditQueueDepth.WithLabelValues(workerID).Set(float64(depth))
}

func (m *Metrics) ObserveAuditWrite(d time.Duration) {
	if m == nil {
		return
	}
	m.AuditWriteDuration.Observe(d.Seconds())
}
