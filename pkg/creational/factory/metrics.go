package factory

import (
	"errors"

	gperrors "github.com/vnykmshr/gopatterns/pkg/common/errors"
	"github.com/vnykmshr/gopatterns/pkg/metrics"
)

// MetricsRegistry wraps a Registry with Prometheus instrumentation.
type MetricsRegistry[T any] struct {
	registry *Registry[T]
	name     string
	reg      *metrics.Registry
	enabled  bool
}

// NewWithMetrics wraps the given registry with metrics recorded under the
// given instance name, using the default metrics registry.
func NewWithMetrics[T any](r *Registry[T], name string) *MetricsRegistry[T] {
	return &MetricsRegistry[T]{
		registry: r,
		name:     name,
		reg:      metrics.DefaultRegistry,
		enabled:  true,
	}
}

// Register binds a factory to a name.
func (m *MetricsRegistry[T]) Register(name string, f Factory[T]) error {
	return m.registry.Register(name, f)
}

// New constructs a product by name, recording creates and misses.
func (m *MetricsRegistry[T]) New(name string) (T, error) {
	v, err := m.registry.New(name)

	if m.enabled {
		switch {
		case errors.Is(err, gperrors.ErrNotFound):
			m.reg.FactoryMisses.WithLabelValues(m.name, name).Inc()
		case err == nil:
			m.reg.FactoryCreates.WithLabelValues(m.name, name).Inc()
		}
	}
	return v, err
}

// Names returns the registered names in sorted order.
func (m *MetricsRegistry[T]) Names() []string {
	return m.registry.Names()
}

// EnableMetrics enables metrics collection.
func (m *MetricsRegistry[T]) EnableMetrics(config metrics.Config) error {
	m.enabled = config.Enabled
	if config.Registry != nil {
		m.reg = metrics.NewRegistry(config.Registry)
	}
	return nil
}

// DisableMetrics disables metrics collection.
func (m *MetricsRegistry[T]) DisableMetrics() {
	m.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (m *MetricsRegistry[T]) MetricsEnabled() bool {
	return m.enabled
}
