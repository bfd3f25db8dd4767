package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	statementEntriesTotal     *prometheus.CounterVec
	statementAdjustmentsTotal prometheus.Counter
	statementDetailDuration   prometheus.Histogram
	ledgerEntriesTotal        *prometheus.CounterVec
	balanceCascadeDuration    prometheus.Histogram
	balanceCascadeMonths      prometheus.Histogram
	checklistUpdatesTotal     prometheus.Counter
	mailPublishedTotal        *prometheus.CounterVec
	authenticationEventsTotal *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors on reg. Registering twice on
// the same registry panics.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	return newPrometheusMetrics(promauto.With(reg))
}

func newPrometheusMetrics(factory promauto.Factory) *PrometheusMetrics {
	return &PrometheusMetrics{
		statementEntriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_entries_total",
				Help: "Total number of card statement entry mutations",
			},
			[]string{"operation", "kind"},
		),
		statementAdjustmentsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "statement_adjustments_total",
				Help: "Total number of statement limit or value adjustments",
			},
		),
		statementDetailDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_detail_duration_milliseconds",
				Help:    "Statement detail computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		ledgerEntriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_entries_total",
				Help: "Total number of ledger entry mutations",
			},
			[]string{"operation"},
		),
		balanceCascadeDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "monthly_balance_cascade_duration_milliseconds",
				Help:    "Monthly balance recompute cascade duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		balanceCascadeMonths: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "monthly_balance_cascade_months",
				Help:    "Number of months recomputed per ledger mutation",
				Buckets: prometheus.ExponentialBuckets(1, 2, 8),
			},
		),
		checklistUpdatesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "checklist_updates_total",
				Help: "Total number of checklist bulk updates",
			},
		),
		mailPublishedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mail_published_total",
				Help: "Total number of mail messages handed to the broker",
			},
			[]string{"status"},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "statement_entry":
		m.statementEntriesTotal.WithLabelValues(tags["operation"], tags["kind"]).Inc()
	case "statement_adjusted":
		m.statementAdjustmentsTotal.Inc()
	case "ledger_entry":
		if operation := tags["operation"]; operation != "" {
			m.ledgerEntriesTotal.WithLabelValues(operation).Inc()
		}
	case "checklist_updated":
		m.checklistUpdatesTotal.Inc()
	case "mail_published":
		if status := tags["status"]; status != "" {
			m.mailPublishedTotal.WithLabelValues(status).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "statement_detail":
		m.statementDetailDuration.Observe(float64(duration.Milliseconds()))
	case "balance_cascade":
		m.balanceCascadeDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "balance_cascade_months":
		m.balanceCascadeMonths.Observe(value)
	}
}

// NoopMetrics discards everything. Used by tests and tools.
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string)      {}
func (NoopMetrics) RecordProcessingTime(string, time.Duration)      {}
func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}
