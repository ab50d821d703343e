package observability

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/markov/pkg/domain"
)

// Recorder holds the walk metrics of one process.
type Recorder struct {
	walks  *prometheus.CounterVec
	steps  prometheus.Counter
	length prometheus.Histogram
}

// NewRecorder creates the markov_* collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		walks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "markov_walks_total",
				Help: "Total number of finished walks by stop reason",
			},
			[]string{"reason"},
		),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "markov_steps_total",
			Help: "Total number of states emitted by walks",
		}),
		length: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "markov_walk_length",
			Help:    "Number of states per walk",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}

	for _, c := range []prometheus.Collector{r.walks, r.steps, r.length} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return r, nil
}

// Hooks returns lifecycle hooks feeding the recorder.
func (r *Recorder) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			r.steps.Inc()
		},
		OnWalkEnd: func(ctx context.Context, e *domain.WalkEvent) {
			r.walks.WithLabelValues(string(e.Reason)).Inc()
			r.length.Observe(float64(e.Length))
		},
	}
}

// Walks exposes the walk counter, labelled by stop reason.
func (r *Recorder) Walks() *prometheus.CounterVec {
	return r.walks
}

// Steps exposes the step counter.
func (r *Recorder) Steps() prometheus.Counter {
	return r.steps
}
