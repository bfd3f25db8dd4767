package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestMetrics(t *testing.T) (*PrometheusMetrics, *prometheus.Registry) {
	t.Helper()
	registry := prometheus.NewRegistry()
	return newPrometheusMetrics(promauto.With(registry)), registry
}

func TestPrometheusMetrics_Counters(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.IncrementCounter("statement_entry", map[string]string{"operation": "create", "kind": "PURCHASE"})
	m.IncrementCounter("statement_entry", map[string]string{"operation": "create", "kind": "PURCHASE"})
	m.IncrementCounter("ledger_entry", map[string]string{"operation": "delete"})
	m.IncrementCounter("ledger_entry", nil)
	m.IncrementCounter("mail_published", map[string]string{"status": "ok"})
	m.IncrementCounter("authentication_event", map[string]string{"event_type": "login"})
	m.IncrementCounter("statement_adjusted", nil)
	m.IncrementCounter("unknown", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.statementEntriesTotal.WithLabelValues("create", "PURCHASE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ledgerEntriesTotal.WithLabelValues("delete")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ledgerEntriesTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mailPublishedTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.authenticationEventsTotal.WithLabelValues("login")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statementAdjustmentsTotal))
}

func TestPrometheusMetrics_Histograms(t *testing.T) {
	m, registry := newTestMetrics(t)

	m.RecordProcessingTime("balance_cascade", 12*time.Millisecond)
	m.RecordProcessingTime("statement_detail", 3*time.Millisecond)
	m.RecordGauge("balance_cascade_months", 4, nil)

	count, err := testutil.GatherAndCount(registry,
		"monthly_balance_cascade_duration_milliseconds",
		"statement_detail_duration_milliseconds",
		"monthly_balance_cascade_months",
	)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}
