package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the monitoring pipeline.
type Metrics struct {
	// Position fixes accepted, by source
	FixesIngested *prometheus.CounterVec

	// Fixes rejected before sampling, by reason
	FixesRejected *prometheus.CounterVec

	// Boundary events produced by the detector, by type and severity
	EventsDetected *prometheus.CounterVec

	// Alerts actually dispatched, by kind
	AlertsDispatched *prometheus.CounterVec

	// Alerts swallowed by the debounce window
	AlertsSuppressed prometheus.Counter

	// Regulatory report outcomes
	ReportsSent   prometheus.Counter
	ReportsFailed prometheus.Counter

	// Ledger writes replayed from the retry queue
	LedgerRetries prometheus.Counter

	// Ledger writes waiting for replay
	LedgerPending prometheus.Gauge

	// Currently running monitoring sessions
	ActiveSessions prometheus.Gauge

	// Duration of one full sample evaluation across all zones
	EvaluateLatency prometheus.Histogram
}

// New creates a Metrics instance with all pipeline metrics registered.
func New() *Metrics {
	return &Metrics{
		FixesIngested: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vesselmon_fixes_ingested_total",
			Help: "Total position fixes accepted by source",
		}, []string{"source"}), // source: "api", "stream"

		FixesRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vesselmon_fixes_rejected_total",
			Help: "Total position fixes rejected before sampling by reason",
		}, []string{"reason"}), // reason: "coordinates", "stale", "session"

		EventsDetected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vesselmon_events_detected_total",
			Help: "Total boundary events produced by type and severity",
		}, []string{"type", "severity"}),

		AlertsDispatched: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vesselmon_alerts_dispatched_total",
			Help: "Total alerts dispatched by kind",
		}, []string{"kind"}), // kind: "notification", "alarm"

		AlertsSuppressed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vesselmon_alerts_suppressed_total",
			Help: "Total alerts suppressed by the debounce window",
		}),

		ReportsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vesselmon_reports_sent_total",
			Help: "Total regulatory reports delivered",
		}),

		ReportsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vesselmon_reports_failed_total",
			Help: "Total regulatory report deliveries that failed",
		}),

		LedgerRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vesselmon_ledger_retries_total",
			Help: "Total ledger writes replayed from the retry queue",
		}),

		LedgerPending: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "vesselmon_ledger_pending",
			Help: "Ledger writes currently queued for replay",
		}),

		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "vesselmon_active_sessions",
			Help: "Monitoring sessions currently running",
		}),

		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "vesselmon_evaluate_duration_seconds",
			Help:    "Duration of evaluating one sample against all zones",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
}

// IncFixIngested records an accepted position fix.
func (m *Metrics) IncFixIngested(source string) {
	if m != nil {
		m.FixesIngested.WithLabelValues(source).Inc()
	}
}

// IncFixRejected records a fix dropped before sampling.
func (m *Metrics) IncFixRejected(reason string) {
	if m != nil {
		m.FixesRejected.WithLabelValues(reason).Inc()
	}
}

// IncEventDetected records a boundary event.
func (m *Metrics) IncEventDetected(eventType, severity string) {
	if m != nil {
		m.EventsDetected.WithLabelValues(eventType, severity).Inc()
	}
}

// IncAlertDispatched records a delivered alert.
func (m *Metrics) IncAlertDispatched(kind string) {
	if m != nil {
		m.AlertsDispatched.WithLabelValues(kind).Inc()
	}
}

// IncAlertSuppressed records a debounced alert.
func (m *Metrics) IncAlertSuppressed() {
	if m != nil {
		m.AlertsSuppressed.Inc()
	}
}

// IncReportSent records a delivered regulatory report.
func (m *Metrics) IncReportSent() {
	if m != nil {
		m.ReportsSent.Inc()
	}
}

// IncReportFailed records a failed regulatory report.
func (m *Metrics) IncReportFailed() {
	if m != nil {
		m.ReportsFailed.Inc()
	}
}

// IncLedgerRetry records one replayed ledger write.
func (m *Metrics) IncLedgerRetry() {
	if m != nil {
		m.LedgerRetries.Inc()
	}
}

// SetLedgerPending records the retry queue depth.
func (m *Metrics) SetLedgerPending(n int) {
	if m != nil {
		m.LedgerPending.Set(float64(n))
	}
}

// SessionStarted increments the active session gauge.
func (m *Metrics) SessionStarted() {
	if m != nil {
		m.ActiveSessions.Inc()
	}
}

// SessionStopped decrements the active session gauge.
func (m *Metrics) SessionStopped() {
	if m != nil {
		m.ActiveSessions.Dec()
	}
}

// ObserveEvaluateLatency records the duration of one sample evaluation.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
