package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the consultation HTTP handler
	ConsultLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "consult_recommend_latency_seconds",
		Help:    "Latency of consultation recommendations handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of consultations served
	ConsultRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "consult_recommend_requests_total",
		Help: "Total number of consultation requests",
	})
)

func Init() {
	prometheus.MustRegister(
		ConsultLatency,
		ConsultRequests,
	)
}
