package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveGeneration(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveGeneration("recommendation", "fallback")
	m.ObserveGeneration("recommendation", "fallback")
	m.ObserveGeneration("prediction", "generated")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Generations().WithLabelValues("recommendation", "fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Generations().WithLabelValues("prediction", "generated")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveGeneration("behavior", "generated")
		m.ObserveLLMCall("behavior", time.Now(), errors.New("boom"))
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveLLMCall("recommendation", time.Now(), nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "ecotrack_llm_request_duration_seconds")
}
