package observer

import (
	"context"
	"time"

	"github.com/vnykmshr/gopatterns/pkg/metrics"
)

// MetricsSubject wraps a Subject with Prometheus instrumentation.
type MetricsSubject[E any] struct {
	subject  *Subject[E]
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics wraps the given subject with metrics recorded under the
// given instance name, using the default metrics registry.
func NewWithMetrics[E any](s *Subject[E], name string) *MetricsSubject[E] {
	return &MetricsSubject[E]{
		subject:  s,
		name:     name,
		registry: metrics.DefaultRegistry,
		enabled:  true,
	}
}

// Subscribe registers an observer.
func (ms *MetricsSubject[E]) Subscribe(o Observer[E]) (*Subscription, error) {
	sub, err := ms.subject.Subscribe(o)
	if ms.enabled && err == nil {
		ms.registry.ObserverSubscribers.WithLabelValues(ms.name).Set(float64(ms.subject.Len()))
	}
	return sub, err
}

// Notify delivers the event to every subscriber, recording event, delivery,
// and error counts plus delivery duration.
func (ms *MetricsSubject[E]) Notify(ctx context.Context, event E) error {
	if !ms.enabled {
		return ms.subject.Notify(ctx, event)
	}

	subscribers := ms.subject.Len()
	start := time.Now()
	err := ms.subject.Notify(ctx, event)
	duration := time.Since(start)

	ms.registry.ObserverEvents.WithLabelValues(ms.name).Inc()
	ms.registry.ObserverDeliveries.WithLabelValues(ms.name).Add(float64(subscribers))
	ms.registry.NotifyDuration.WithLabelValues(ms.name).Observe(duration.Seconds())
	ms.registry.ObserverSubscribers.WithLabelValues(ms.name).Set(float64(ms.subject.Len()))
	if err != nil {
		ms.registry.ObserverErrors.WithLabelValues(ms.name).Inc()
	}
	return err
}

// Len returns the number of registered subscribers.
func (ms *MetricsSubject[E]) Len() int {
	return ms.subject.Len()
}

// Close shuts the subject down.
func (ms *MetricsSubject[E]) Close() error {
	err := ms.subject.Close()
	if ms.enabled && err == nil {
		ms.registry.ObserverSubscribers.WithLabelValues(ms.name).Set(0)
	}
	return err
}

// EnableMetrics enables metrics collection.
func (ms *MetricsSubject[E]) EnableMetrics(config metrics.Config) error {
	ms.enabled = config.Enabled
	if config.Registry != nil {
		ms.registry = metrics.NewRegistry(config.Registry)
	}
	return nil
}

// DisableMetrics disables metrics collection.
func (ms *MetricsSubject[E]) DisableMetrics() {
	ms.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (ms *MetricsSubject[E]) MetricsEnabled() bool {
	return ms.enabled
}
