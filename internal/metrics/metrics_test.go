package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.RecordResult("INTJ", "IR", true)
	m.RecordResult("INTJ", "IR", true)
	m.RecordResult("ESTP", "RE", false)
	m.RecordLoadFailure("profiles")
	m.RecordNotification("sent")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.results.WithLabelValues("INTJ", "IR", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.results.WithLabelValues("ESTP", "RE", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loadFailures.WithLabelValues("profiles")))

	expected := `
# HELP minatbakat_notifications_total Result notifications by delivery status.
# TYPE minatbakat_notifications_total counter
minatbakat_notifications_total{status="sent"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "minatbakat_notifications_total"))
}

func TestMetrics_ReuseRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := New(reg)
	require.NoError(t, err)
	second, err := New(reg)
	require.NoError(t, err)

	first.RecordLoadFailure("questions")
	second.RecordLoadFailure("questions")
	assert.Equal(t, 2.0, testutil.ToFloat64(first.loadFailures.WithLabelValues("questions")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.RecordResult("INTJ", "IR", true)
	m.RecordLoadFailure("questions")
	m.RecordNotification("failed")
}
