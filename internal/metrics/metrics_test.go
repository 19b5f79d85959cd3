package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordUpstreamCall(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("test", reg)

	m.RecordUpstreamCall("dealers", "fetch_dealers", OutcomeSuccess, 10*time.Millisecond)
	m.RecordUpstreamCall("dealers", "fetch_dealers", OutcomeTransport, 10*time.Millisecond)
	m.RecordUpstreamCall("dealers", "fetch_dealers", OutcomeTransport, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("dealers", "fetch_dealers", OutcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("dealers", "fetch_dealers", OutcomeTransport)))
}

func TestMetrics_RecordHTTPRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("test", reg)

	m.RecordHTTPRequest("GET", "/djangoapp/get_cars", "200", time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/djangoapp/get_cars", "200")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordHTTPRequest("GET", "/", "200", time.Millisecond)
		m.RecordUpstreamCall("dealers", "fetch_dealers", OutcomeSuccess, time.Millisecond)
	})
}
