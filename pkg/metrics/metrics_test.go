package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counter(t *testing.T) {
	m, ok := NewMetrics("test").(*Metrics)
	require.True(t, ok)

	m.RegisterCounter("requests_total", "Total requests")
	m.IncCounter("requests_total")
	m.IncCounter("requests_total")
	m.AddCounter("requests_total", 3)

	assert.Equal(t, float64(5), testutil.ToFloat64(m.counters["requests_total"]))
}

func TestMetrics_UnregisteredNamesAreIgnored(t *testing.T) {
	m, ok := NewMetrics("test").(*Metrics)
	require.True(t, ok)

	// Operations on names that were never registered must not panic.
	m.IncCounter("missing")
	m.AddCounter("missing", 1)
	m.ObserveHistogram("missing", 0.5)
	m.IncCounterVec("missing", "label")
	m.ObserveHistogramVec("missing", 0.5, "label")
}

func TestMetrics_Histogram(t *testing.T) {
	m, ok := NewMetrics("test").(*Metrics)
	require.True(t, ok)

	m.RegisterHistogram("duration_seconds", "Request duration", []float64{0.1, 1, 10})
	m.ObserveHistogram("duration_seconds", 0.5)

	count := testutil.CollectAndCount(m.histograms["duration_seconds"])
	assert.Equal(t, 1, count)
}

func TestMetrics_CounterVec(t *testing.T) {
	m, ok := NewMetrics("test").(*Metrics)
	require.True(t, ok)

	m.RegisterCounterVec("responses_total", "Responses by code", []string{"code"})
	m.IncCounterVec("responses_total", "200")
	m.IncCounterVec("responses_total", "200")
	m.IncCounterVec("responses_total", "500")

	vec := m.counterVecs["responses_total"]
	assert.Equal(t, float64(2), testutil.ToFloat64(vec.WithLabelValues("200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(vec.WithLabelValues("500")))
}

func TestMetrics_RegistryGathers(t *testing.T) {
	m, ok := NewMetrics("test").(*Metrics)
	require.True(t, ok)

	m.RegisterCounter("requests_total", "Total requests")
	m.IncCounter("requests_total")

	families, err := m.GetRegistry().Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "requests_total", families[0].GetName())
}
