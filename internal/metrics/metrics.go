// Package metrics exposes prometheus collectors for the processing worker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Deliveries counts queue deliveries handled by the worker, labeled by
// outcome: completed, failed, dropped or requeued.
var Deliveries = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "documenthub",
	Subsystem: "worker",
	Name:      "deliveries_total",
	Help:      "Queue deliveries handled by the processing worker, by outcome.",
}, []string{"outcome"})

// ExtractionDuration observes how long the extraction step takes.
var ExtractionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "documenthub",
	Subsystem: "worker",
	Name:      "extraction_duration_seconds",
	Help:      "Duration of the metadata extraction step.",
	Buckets:   prometheus.DefBuckets,
})
