package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ecotrack"

// Metrics holds the generation pipeline collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	generations *prometheus.CounterVec
	llmLatency  *prometheus.HistogramVec
	gatherer    prometheus.Gatherer
}

func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_total",
			Help:      "Generation requests by task kind and result source.",
		}, []string{"task", "source"}),
		llmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "llm_request_duration_seconds",
			Help:      "Latency of calls to the generative backend.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		}, []string{"task", "outcome"}),
		gatherer: reg,
	}
	reg.MustRegister(m.generations, m.llmLatency)
	return m
}

func (m *Metrics) ObserveGeneration(task, source string) {
	if m == nil {
		return
	}
	m.generations.WithLabelValues(task, source).Inc()
}

func (m *Metrics) ObserveLLMCall(task string, started time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.llmLatency.WithLabelValues(task, outcome).Observe(time.Since(started).Seconds())
}

// Generations exposes the counter for tests.
func (m *Metrics) Generations() *prometheus.CounterVec {
	return m.generations
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
