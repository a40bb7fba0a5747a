// Package metrics provides Prometheus instrumentation for gopatterns components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for gopatterns components.
type Registry struct {
	// Object Pool Metrics
	PoolAcquires        *prometheus.CounterVec
	PoolReleases        *prometheus.CounterVec
	PoolExhausted       *prometheus.CounterVec
	PoolInUse           *prometheus.GaugeVec
	PoolWaiters         *prometheus.GaugeVec
	PoolAcquireWaitTime *prometheus.HistogramVec

	// Observer Metrics
	ObserverEvents      *prometheus.CounterVec
	ObserverDeliveries  *prometheus.CounterVec
	ObserverErrors      *prometheus.CounterVec
	ObserverSubscribers *prometheus.GaugeVec
	NotifyDuration      *prometheus.HistogramVec

	// Strategy Metrics
	StrategyExecutions *prometheus.CounterVec
	StrategyFailures   *prometheus.CounterVec
	StrategyDuration   *prometheus.HistogramVec

	// Factory Metrics
	FactoryCreates *prometheus.CounterVec
	FactoryMisses  *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by gopatterns components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		// Object Pool Metrics
		PoolAcquires: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopatterns",
				Subsystem: "pool",
				Name:      "acquires_total",
				Help:      "Total number of successful resource acquisitions",
			},
			[]string{"pool_name"},
		),

		PoolReleases: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopatterns",
				Subsystem: "pool",
				Name:      "releases_total",
				Help:      "Total number of resources returned to the pool",
			},
			[]string{"pool_name"},
		),

		PoolExhausted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopatterns",
				Subsystem: "pool",
				Name:      "exhausted_total",
				Help:      "Total number of acquisitions rejected because the pool was empty",
			},
			[]string{"pool_name"},
		),

		PoolInUse: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gopatterns",
				Subsystem: "pool",
				Name:      "in_use",
				Help:      "Number of resources currently checked out",
			},
			[]string{"pool_name"},
		),

		PoolWaiters: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gopatterns",
				Subsystem: "pool",
				Name:      "waiters",
				Help:      "Number of callers blocked waiting for a resource",
			},
			[]string{"pool_name"},
		),

		PoolAcquireWaitTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gopatterns",
				Subsystem: "pool",
				Name:      "acquire_wait_duration_seconds",
				Help:      "Time spent waiting for a resource to become available",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"pool_name"},
		),

		// Observer Metrics
		ObserverEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopatterns",
				Subsystem: "observer",
				Name:      "events_total",
				Help:      "Total number of events published to a subject",
			},
			[]string{"subject_name"},
		),

		ObserverDeliveries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopatterns",
				Subsystem: "observer",
				Name:      "deliveries_total",
				Help:      "Total number of per-subscriber event deliveries",
			},
			[]string{"subject_name"},
		),

		ObserverErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopatterns",
				Subsystem: "observer",
				Name:      "errors_total",
				Help:      "Total number of subscriber callbacks that returned an error or panicked",
			},
			[]string{"subject_name"},
		),

		ObserverSubscribers: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gopatterns",
				Subsystem: "observer",
				Name:      "subscribers",
				Help:      "Number of currently registered subscribers",
			},
			[]string{"subject_name"},
		),

		NotifyDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gopatterns",
				Subsystem: "observer",
				Name:      "notify_duration_seconds",
				Help:      "Time spent delivering one event to all subscribers",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"subject_name"},
		),

		// Strategy Metrics
		StrategyExecutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopatterns",
				Subsystem: "strategy",
				Name:      "executions_total",
				Help:      "Total number of strategy executions",
			},
			[]string{"context_name", "strategy_name"},
		),

		StrategyFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopatterns",
				Subsystem: "strategy",
				Name:      "failures_total",
				Help:      "Total number of strategy executions that returned an error",
			},
			[]string{"context_name", "strategy_name"},
		),

		StrategyDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gopatterns",
				Subsystem: "strategy",
				Name:      "execution_duration_seconds",
				Help:      "Time spent executing a strategy",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"context_name", "strategy_name"},
		),

		// Factory Metrics
		FactoryCreates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopatterns",
				Subsystem: "factory",
				Name:      "creates_total",
				Help:      "Total number of products constructed through a registry",
			},
			[]string{"registry_name", "product"},
		),

		FactoryMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopatterns",
				Subsystem: "factory",
				Name:      "misses_total",
				Help:      "Total number of lookups for unregistered product names",
			},
			[]string{"registry_name", "product"},
		),
	}
}
