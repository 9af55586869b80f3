package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	RecordsGenerated     prometheus.Counter
	IdentifierCollisions prometheus.Counter
	DuplicateCandidates  prometheus.Counter
	RecordsSubmitted     prometheus.Counter
	SubmitErrors         *prometheus.CounterVec
	GenerationTime       prometheus.Histogram
	SubmissionTime       prometheus.Histogram
}

// NewMetrics creates seeding metrics on their own registry
func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		RecordsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_generated_total",
			Help:      "The total number of flight records accepted into a batch",
		}),
		IdentifierCollisions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "identifier_collisions_total",
			Help:      "The total number of flight number draws that were already issued",
		}),
		DuplicateCandidates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_candidates_total",
			Help:      "The total number of candidate records discarded as duplicates",
		}),
		RecordsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_submitted_total",
			Help:      "The total number of flight records written to the sink",
		}),
		SubmitErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submit_errors_total",
			Help:      "The total number of failed sink writes",
		}, []string{"sink"}),
		GenerationTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Time taken to generate a batch",
			Buckets:   prometheus.DefBuckets,
		}),
		SubmissionTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "submission_duration_seconds",
			Help:      "Time taken to submit a batch",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
	}
}

// Push sends the current values to a Pushgateway under the given job name
func (m *Metrics) Push(ctx context.Context, gatewayURL, job string, groupings map[string]string) error {
	pusher := push.New(gatewayURL, job).Gatherer(m.registry)
	for name, value := range groupings {
		pusher = pusher.Grouping(name, value)
	}
	return pusher.PushContext(ctx)
}
