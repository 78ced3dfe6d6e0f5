package scenario

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values of colony_scenario_results_total.
const (
	ResultBipartite    = "bipartite"
	ResultNotBipartite = "not_bipartite"
	ResultRejected     = "rejected"
)

// Metrics counts what a Runner evaluated. A nil *Metrics records nothing.
type Metrics struct {
	results   *prometheus.CounterVec
	relations prometheus.Counter
	size      prometheus.Histogram
}

// NewMetrics creates the scenario collectors and registers them on reg.
// Registering twice on the same registry panics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		results: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "colony",
			Subsystem: "scenario",
			Name:      "results_total",
			Help:      "Number of scenarios evaluated, by result.",
		}, []string{"result"}),
		relations: f.NewCounter(prometheus.CounterOpts{
			Namespace: "colony",
			Subsystem: "scenario",
			Name:      "relations_total",
			Help:      "Number of relations registered across evaluated scenarios.",
		}),
		size: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "colony",
			Subsystem: "scenario",
			Name:      "population_size",
			Help:      "Population size of evaluated scenarios.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
}

func (m *Metrics) observe(s *Scenario, bipartite bool) {
	if m == nil {
		return
	}
	result := ResultNotBipartite
	if bipartite {
		result = ResultBipartite
	}
	m.results.WithLabelValues(result).Inc()
	m.relations.Add(float64(len(s.Pairs)))
	m.size.Observe(float64(s.Size))
}

func (m *Metrics) reject() {
	if m == nil {
		return
	}
	m.results.WithLabelValues(ResultRejected).Inc()
}
