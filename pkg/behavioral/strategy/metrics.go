package strategy

import (
	"context"
	"time"

	"github.com/vnykmshr/gopatterns/pkg/metrics"
)

// MetricsContext wraps a Context with Prometheus instrumentation.
type MetricsContext[I, O any] struct {
	ctx      *Context[I, O]
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics wraps the given context with metrics recorded under the
// given instance name, using the default metrics registry.
func NewWithMetrics[I, O any](c *Context[I, O], name string) *MetricsContext[I, O] {
	return &MetricsContext[I, O]{
		ctx:      c,
		name:     name,
		registry: metrics.DefaultRegistry,
		enabled:  true,
	}
}

// Use assigns the strategy to delegate to.
func (mc *MetricsContext[I, O]) Use(s Strategy[I, O]) {
	mc.ctx.Use(s)
}

// Provide registers a strategy under a name.
func (mc *MetricsContext[I, O]) Provide(name string, s Strategy[I, O]) error {
	return mc.ctx.Provide(name, s)
}

// UseNamed assigns a previously provided strategy.
func (mc *MetricsContext[I, O]) UseNamed(name string) error {
	return mc.ctx.UseNamed(name)
}

// Execute delegates to the current strategy, recording execution counts,
// failures, and duration. Directly assigned strategies are labeled
// "anonymous".
func (mc *MetricsContext[I, O]) Execute(ctx context.Context, input I) (O, error) {
	if !mc.enabled {
		return mc.ctx.Execute(ctx, input)
	}

	strategyName := mc.ctx.CurrentName()
	if strategyName == "" {
		strategyName = "anonymous"
	}

	start := time.Now()
	out, err := mc.ctx.Execute(ctx, input)
	duration := time.Since(start)

	mc.registry.StrategyExecutions.WithLabelValues(mc.name, strategyName).Inc()
	mc.registry.StrategyDuration.WithLabelValues(mc.name, strategyName).Observe(duration.Seconds())
	if err != nil {
		mc.registry.StrategyFailures.WithLabelValues(mc.name, strategyName).Inc()
	}
	return out, err
}

// EnableMetrics enables metrics collection.
func (mc *MetricsContext[I, O]) EnableMetrics(config metrics.Config) error {
	mc.enabled = config.Enabled
	if config.Registry != nil {
		mc.registry = metrics.NewRegistry(config.Registry)
	}
	return nil
}

// DisableMetrics disables metrics collection.
func (mc *MetricsContext[I, O]) DisableMetrics() {
	mc.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (mc *MetricsContext[I, O]) MetricsEnabled() bool {
	return mc.enabled
}
