package metrics

import (
	"errors"
	"net/http"
	"strconv"

	"blended-advisor/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for advisor_recommendations_total.
const (
	OutcomeOK      = "ok"
	OutcomeEmpty   = "empty"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Metrics records recommendation outcomes. It satisfies app.Observer.
type Metrics struct {
	registry        *prometheus.Registry
	recommendations *prometheus.CounterVec
	models          *prometheus.CounterVec
}

// New registers the advisor collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "advisor_recommendations_total",
			Help: "Recommendation requests by outcome.",
		}, []string{"outcome"}),
		models: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "advisor_recommended_models_total",
			Help: "Times a model appeared in a recommendation, by rank.",
		}, []string{"model", "rank"}),
	}
	reg.MustRegister(
		m.recommendations,
		m.models,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	// Zero series for every model so dashboards see models never recommended.
	for _, model := range domain.Models() {
		for rank := 1; rank <= 3; rank++ {
			m.models.WithLabelValues(string(model), strconv.Itoa(rank))
		}
	}
	return m
}

func (m *Metrics) ObserveRecommendation(rec domain.Recommendation, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidResponseCount):
		m.recommendations.WithLabelValues(OutcomeInvalid).Inc()
		return
	case err != nil:
		m.recommendations.WithLabelValues(OutcomeError).Inc()
		return
	case len(rec.Entries) == 0:
		m.recommendations.WithLabelValues(OutcomeEmpty).Inc()
		return
	}
	m.recommendations.WithLabelValues(OutcomeOK).Inc()
	for i, e := range rec.Entries {
		m.models.WithLabelValues(string(e.Model), strconv.Itoa(i+1)).Inc()
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
