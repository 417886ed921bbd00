package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ResolverPassesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_resolver_passes_total",
			Help: "Count of resolver passes executed, by pass name.",
		},
		[]string{"pass"},
	)

	RelaxationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_relaxations_total",
			Help: "Count of constraint relaxations that filled at least one category, by relaxation type.",
		},
		[]string{"type"},
	)

	ItemsDisqualifiedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_items_disqualified_total",
			Help: "Count of candidate items hard-disqualified by the allergy gate.",
		},
	)

	ConsultationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_consultations_total",
			Help: "Count of consultations processed successfully.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		ResolverPassesTotal,
		RelaxationsTotal,
		ItemsDisqualifiedTotal,
		ConsultationsTotal,
	)
}
