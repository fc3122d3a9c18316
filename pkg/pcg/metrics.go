package pcg

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation metrics, labeled by generator kind: "dungeon" and "town"
// record them. Observational only; no generator behavior depends on
// them.
var (
	generationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mapgen",
		Name:      "generations_total",
		Help:      "Completed generator invocations by kind.",
	}, []string{"kind"})

	generationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mapgen",
		Name:      "generation_errors_total",
		Help:      "Generator invocations that surfaced an error, by kind.",
	}, []string{"kind"})

	generationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mapgen",
		Name:      "generation_duration_seconds",
		Help:      "Wall time per generator invocation, by kind.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
	}, []string{"kind"})
)

// ObserveGeneration records one finished generator invocation.
func ObserveGeneration(kind string, start time.Time, err error) {
	generationDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err != nil {
		generationErrorsTotal.WithLabelValues(kind).Inc()
		return
	}
	generationsTotal.WithLabelValues(kind).Inc()
}
