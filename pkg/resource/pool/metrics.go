package pool

import (
	"context"
	"time"

	"github.com/vnykmshr/gopatterns/pkg/metrics"
)

// MetricsPool wraps a Pool with Prometheus instrumentation.
type MetricsPool[T comparable] struct {
	pool     Pool[T]
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics wraps the given pool with metrics recorded under the given
// instance name, using the default metrics registry.
func NewWithMetrics[T comparable](p Pool[T], name string) *MetricsPool[T] {
	mp := &MetricsPool[T]{
		pool:     p,
		name:     name,
		registry: metrics.DefaultRegistry,
		enabled:  true,
	}
	mp.updateGauges()
	return mp
}

// Acquire checks a resource out without blocking.
func (mp *MetricsPool[T]) Acquire() (T, error) {
	r, err := mp.pool.Acquire()
	if mp.enabled {
		if err != nil {
			mp.registry.PoolExhausted.WithLabelValues(mp.name).Inc()
		} else {
			mp.registry.PoolAcquires.WithLabelValues(mp.name).Inc()
		}
		mp.updateGauges()
	}
	return r, err
}

// AcquireWait checks a resource out, blocking until one is available.
func (mp *MetricsPool[T]) AcquireWait(ctx context.Context) (T, error) {
	start := time.Now()
	if mp.enabled {
		mp.registry.PoolWaiters.WithLabelValues(mp.name).Inc()
	}

	r, err := mp.pool.AcquireWait(ctx)

	if mp.enabled {
		mp.registry.PoolWaiters.WithLabelValues(mp.name).Dec()
		mp.registry.PoolAcquireWaitTime.WithLabelValues(mp.name).Observe(time.Since(start).Seconds())
		if err == nil {
			mp.registry.PoolAcquires.WithLabelValues(mp.name).Inc()
		}
		mp.updateGauges()
	}
	return r, err
}

// Release returns a checked-out resource to the pool.
func (mp *MetricsPool[T]) Release(r T) error {
	err := mp.pool.Release(r)
	if mp.enabled && err == nil {
		mp.registry.PoolReleases.WithLabelValues(mp.name).Inc()
		mp.updateGauges()
	}
	return err
}

// With acquires a resource, runs fn, and always releases.
func (mp *MetricsPool[T]) With(ctx context.Context, fn func(T) error) error {
	r, err := mp.AcquireWait(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = mp.Release(r)
	}()
	return fn(r)
}

// Capacity returns the fixed pool size.
func (mp *MetricsPool[T]) Capacity() int {
	return mp.pool.Capacity()
}

// InUse returns the number of resources currently checked out.
func (mp *MetricsPool[T]) InUse() int {
	return mp.pool.InUse()
}

// Stats returns a snapshot of pool counters.
func (mp *MetricsPool[T]) Stats() Stats {
	return mp.pool.Stats()
}

// Close rejects further acquisitions and fails pending waiters.
func (mp *MetricsPool[T]) Close() error {
	return mp.pool.Close()
}

func (mp *MetricsPool[T]) updateGauges() {
	stats := mp.pool.Stats()
	mp.registry.PoolInUse.WithLabelValues(mp.name).Set(float64(stats.InUse))
}

// EnableMetrics enables metrics collection.
func (mp *MetricsPool[T]) EnableMetrics(config metrics.Config) error {
	mp.enabled = config.Enabled
	if config.Registry != nil {
		mp.registry = metrics.NewRegistry(config.Registry)
	}
	if mp.enabled {
		mp.updateGauges()
	}
	return nil
}

// DisableMetrics disables metrics collection.
func (mp *MetricsPool[T]) DisableMetrics() {
	mp.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (mp *MetricsPool[T]) MetricsEnabled() bool {
	return mp.enabled
}
