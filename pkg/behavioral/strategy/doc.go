/*
Package strategy lets a context object delegate to interchangeable algorithms
sharing one call signature, selected at runtime.

A Strategy transforms an input into an output; a Context holds whichever
strategy is currently assigned and delegates Execute calls to it:

	c := strategy.NewContext[[]byte, []byte]()
	c.Use(strategy.Func[[]byte, []byte](gzipCompress))

	out, err := c.Execute(ctx, payload) // gzip

	c.Use(strategy.Func[[]byte, []byte](zstdCompress))
	out, err = c.Execute(ctx, payload) // zstd, same call site

Strategies can also be registered by name and selected later, which suits
configuration-driven switching:

	c.Provide("gzip", gzipStrategy)
	c.Provide("zstd", zstdStrategy)
	if err := c.UseNamed(cfg.Compression); err != nil {
		// unknown name
	}

Executing a context with no strategy assigned fails with ErrNoStrategy.
A Prometheus-instrumented wrapper is available via NewWithMetrics.
*/
package strategy
