package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	LaunchesIngested  prometheus.Counter
	LaunchesScheduled prometheus.Counter
	LaunchesAborted   prometheus.Counter
	IngestionTime     prometheus.Histogram
	ErrorsCount       *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics on the default registry
func NewMetrics(namespace string) *Metrics {
	return NewMetricsWithRegistry(namespace, prometheus.DefaultRegisterer)
}

// NewMetricsWithRegistry creates new prometheus metrics on the given registerer
func NewMetricsWithRegistry(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		LaunchesIngested: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "launches_ingested_total",
			Help:      "The total number of launches upserted from the launch provider",
		}),
		LaunchesScheduled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "launches_scheduled_total",
			Help:      "The total number of scheduled launches",
		}),
		LaunchesAborted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "launches_aborted_total",
			Help:      "The total number of aborted launches",
		}),
		IngestionTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ingestion_duration_seconds",
			Help:      "Time taken to ingest launch history",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
