package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initConversionMetrics() {
	r.ConversionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "updl_conversions_total",
			Help: "Total number of flow conversions",
		},
		[]string{"result"}, // space, multi_scene, empty, error
	)

	r.ConversionFailures = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "updl_conversion_failures_total",
			Help: "Total number of rejected flow documents",
		},
		[]string{"op"},
	)

	r.ConversionDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "updl_conversion_duration_seconds",
			Help:    "Duration of flow conversions in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"result"},
	)

	r.ScenesPerFlow = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "updl_scenes_per_flow",
			Help:    "Number of scenes in multi-scene results, synthetic results scene included",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		},
	)

	r.FlowNodes = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "updl_flow_nodes",
			Help:    "Number of nodes in decoded flow documents",
			Buckets: []float64{1, 10, 50, 100, 500, 1000},
		},
	)

	r.ChainCycles = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "updl_chain_cycles_total",
			Help: "Total number of space chains cut short by a cycle",
		},
	)
}
