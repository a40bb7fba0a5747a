/*
Package factory provides a registry-based factory: construction is separated
from use, so callers depend only on a product interface and a name, never on
concrete types.

Factories are registered under a name and looked up at runtime:

	reg := factory.NewRegistry[Exporter]()
	reg.Register("fast", func() (Exporter, error) { return &h264Exporter{}, nil })
	reg.Register("master", func() (Exporter, error) { return &losslessExporter{}, nil })

	exp, err := reg.New(quality) // quality comes from config or user input

The registry is safe for concurrent use. Duplicate registrations are rejected
rather than silently replaced; use Deregister first if a name must be rebound.

Looking up an unknown name returns an error matching errors.ErrNotFound, so
callers can distinguish "not registered" from a factory that failed:

	exp, err := reg.New(name)
	if errors.Is(err, gperrors.ErrNotFound) {
		// fall back to a default
	}

A Prometheus-instrumented wrapper is available via NewWithMetrics.
*/
package factory
