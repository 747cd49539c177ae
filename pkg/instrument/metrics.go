package instrument

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ly2011/reactivity/pkg/reactivity"
)

// MetricsConfig configures the Prometheus scheduler decorator.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "reactivity").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus scheduler decorator.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "reactivity",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// MetricsScheduler wraps another Scheduler and counts track and
// trigger traffic by operation kind.
type MetricsScheduler struct {
	next reactivity.Scheduler

	tracks   *prometheus.CounterVec
	triggers *prometheus.CounterVec
}

// NewMetricsScheduler creates the decorator. next may be nil, in which
// case reports are counted and dropped.
func NewMetricsScheduler(next reactivity.Scheduler, opts ...MetricsOption) *MetricsScheduler {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)

	return &MetricsScheduler{
		next: next,
		tracks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "tracks_total",
			Help:        "Read operations reported to the scheduler.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"op"}),
		triggers: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "triggers_total",
			Help:        "Write operations reported to the scheduler.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"op"}),
	}
}

// Track implements reactivity.Scheduler.
func (m *MetricsScheduler) Track(target any, op reactivity.Operation, key any) {
	m.tracks.WithLabelValues(op.String()).Inc()
	if m.next != nil {
		m.next.Track(target, op, key)
	}
}

// Trigger implements reactivity.Scheduler.
func (m *MetricsScheduler) Trigger(target any, op reactivity.Operation, key any, change *reactivity.Change) {
	m.triggers.WithLabelValues(op.String()).Inc()
	if m.next != nil {
		m.next.Trigger(target, op, key, change)
	}
}

var _ reactivity.Scheduler = (*MetricsScheduler)(nil)
