// Package metrics exposes prometheus collectors for the translation
// pipeline. Only stage names, directions, and error kinds are recorded;
// request and response text never reach the registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	stageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lingod",
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Duration of translation pipeline stages in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"direction", "stage"},
	)

	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lingod",
			Subsystem: "pipeline",
			Name:      "requests_total",
			Help:      "Total translation requests by outcome",
		},
		[]string{"direction", "outcome"},
	)

	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lingod",
			Subsystem: "pipeline",
			Name:      "errors_total",
			Help:      "Total translation failures by error kind",
		},
		[]string{"direction", "kind"},
	)

	modelLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lingod",
			Subsystem: "manager",
			Name:      "loads_total",
			Help:      "Model bundle load attempts by result",
		},
		[]string{"direction", "result"},
	)

	modelLoadDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lingod",
			Subsystem: "manager",
			Name:      "load_duration_seconds",
			Help:      "Model bundle load duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"direction"},
	)
)

func init() {
	prometheus.MustRegister(stageDuration, requestsTotal, errorsTotal, modelLoads, modelLoadDuration)
}

// ObserveStage records one stage duration for a direction.
func ObserveStage(direction, stage string, d time.Duration) {
	stageDuration.WithLabelValues(direction, stage).Observe(d.Seconds())
}

// RequestCompleted records a finished request.
func RequestCompleted(direction string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	requestsTotal.WithLabelValues(direction, outcome).Inc()
}

// RequestFailed records the error kind of a failed request.
func RequestFailed(direction, kind string) {
	errorsTotal.WithLabelValues(direction, kind).Inc()
}

// ModelLoad records a bundle load attempt and its duration.
func ModelLoad(direction string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	modelLoads.WithLabelValues(direction, result).Inc()
	if err == nil {
		modelLoadDuration.WithLabelValues(direction).Observe(d.Seconds())
	}
}
