package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"updl-converter/internal/converter/trace"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func histogramCount(t *testing.T, h prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := h.(prometheus.Metric)
	require.True(t, ok)
	var m dto.Metric
	require.NoError(t, metric.Write(&m))
	return m.GetHistogram().GetSampleCount()
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)
	assert.NotNil(t, r.ConversionsTotal)
	assert.NotNil(t, r.ConversionDuration)
	assert.NotNil(t, r.HTTPRequestsTotal)
	assert.NotNil(t, r.GetPrometheusRegistry())

	assert.Same(t, DefaultRegistry(), DefaultRegistry())
}

func TestRecordConversion(t *testing.T) {
	r := NewRegistry()
	r.RecordConversion("multi_scene", 2*time.Millisecond, 3)
	r.RecordConversion("multi_scene", time.Millisecond, 4)
	r.RecordConversion("space", time.Millisecond, 1)
	r.RecordConversion("empty", time.Millisecond, 0)
	r.RecordFailure("decode", time.Millisecond)

	assert.Equal(t, 2.0, counterValue(t, r.ConversionsTotal.WithLabelValues("multi_scene")))
	assert.Equal(t, 1.0, counterValue(t, r.ConversionsTotal.WithLabelValues("space")))
	assert.Equal(t, 1.0, counterValue(t, r.ConversionsTotal.WithLabelValues("error")))
	assert.Equal(t, 1.0, counterValue(t, r.ConversionFailures.WithLabelValues("decode")))
	assert.Equal(t, uint64(3), histogramCount(t, r.ScenesPerFlow))
}

func TestTraceSubscription(t *testing.T) {
	r := NewRegistry()
	trace.Emit(r, trace.GraphDecoded, trace.Int("nodes", 12), trace.Int("edges", 4))
	trace.Emit(r, trace.ChainCycle, trace.String("from", "a"), trace.String("to", "b"))
	trace.Emit(r, trace.SceneBuilt)

	assert.Equal(t, uint64(1), histogramCount(t, r.FlowNodes))
	assert.Equal(t, 1.0, counterValue(t, r.ChainCycles))
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.RecordConversion("space", time.Millisecond, 1)
	r.RecordHTTPRequest("POST", "/convert", "200", time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `updl_conversions_total{result="space"} 1`)
	assert.Contains(t, string(body), "updl_http_requests_total")
}
