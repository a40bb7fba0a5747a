// Package metrics provides Prometheus instrumentation for gopatterns components.
//
// The metrics package provides automatic instrumentation for:
//   - Object pools (acquires, releases, exhaustion, in-use resources, waiters)
//   - Observer subjects (events, per-subscriber deliveries, errors, subscriber count)
//   - Strategy contexts (executions, failures, execution duration)
//   - Factory registries (creates, misses)
//
// # Quick Start
//
// Enable metrics by wrapping a component with its metrics constructor:
//
//	// Object pool with metrics
//	p := pool.NewWithMetrics(base, "db_connections")
//
//	// Observer subject with metrics
//	s := observer.NewWithMetrics(subject, "order_events")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//	p.EnableMetrics(config)
//
// # Available Metrics
//
// ## Object Pool Metrics
//
//   - gopatterns_pool_acquires_total: Successful resource acquisitions
//   - gopatterns_pool_releases_total: Resources returned to the pool
//   - gopatterns_pool_exhausted_total: Acquisitions rejected on an empty pool
//   - gopatterns_pool_in_use: Resources currently checked out
//   - gopatterns_pool_waiters: Callers blocked waiting for a resource
//   - gopatterns_pool_acquire_wait_duration_seconds: Time spent waiting for a resource
//
// ## Observer Metrics
//
//   - gopatterns_observer_events_total: Events published to a subject
//   - gopatterns_observer_deliveries_total: Per-subscriber deliveries
//   - gopatterns_observer_errors_total: Subscriber callbacks that failed
//   - gopatterns_observer_subscribers: Currently registered subscribers
//   - gopatterns_observer_notify_duration_seconds: Delivery time per event
//
// ## Strategy Metrics
//
//   - gopatterns_strategy_executions_total: Strategy executions
//   - gopatterns_strategy_failures_total: Executions that returned an error
//   - gopatterns_strategy_execution_duration_seconds: Execution time
//
// ## Factory Metrics
//
//   - gopatterns_factory_creates_total: Products constructed through a registry
//   - gopatterns_factory_misses_total: Lookups for unregistered names
//
// # Labels
//
// Metrics include relevant labels for filtering and aggregation:
//
//   - pool_name, subject_name, context_name, registry_name: user-provided
//     instance names
//   - strategy_name: name under which a strategy was provided to a context
//   - product: product name requested from a factory registry
//
// # Runtime Control
//
// Components implementing the Instrumentable interface support runtime control:
//
//	p := pool.NewWithMetrics(base, "db_connections")
//	p.DisableMetrics()            // Stop collecting metrics
//	p.EnableMetrics(config)       // Re-enable with new config
//	enabled := p.MetricsEnabled() // Check current state
//
// # Performance
//
// Metrics collection is designed for minimal overhead:
//   - Metrics are updated only when operations occur
//   - No background goroutines or timers
//   - Conditional metrics updates based on enabled state
package metrics
