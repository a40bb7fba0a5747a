/*
Package pool provides a fixed-capacity pool of reusable, expensive-to-construct
objects.

All resources are constructed up front; Acquire checks one out and Release
returns it. The number of checked-out resources can never exceed the pool's
capacity.

Basic usage:

	p, err := pool.New(4, func() (*Conn, error) {
		return dial(addr)
	})
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	conn, err := p.Acquire()
	if err != nil {
		// pool.ErrExhausted: all 4 connections are checked out
		return err
	}
	defer p.Release(conn)

Acquire never blocks; when the pool is empty it fails with ErrExhausted.
AcquireWait blocks until a resource is released or the context is done,
handing resources to waiters in FIFO order.

Scoped checkout:

	err := p.With(ctx, func(conn *Conn) error {
		return conn.Ping(ctx)
	})

With acquires, runs the function, and always releases, so a resource cannot
leak on an error path.

Resource hygiene:

A released resource must be reset to a fresh state before the next holder sees
it, or state leaks between holders (a cached auth token is the classic
accident). Configure a Reset hook and the pool runs it on every release:

	p, err := pool.NewWithConfig(pool.Config[*Session]{
		Capacity:    8,
		Constructor: newSession,
		Reset:       func(s *Session) { s.Token = "" },
	})

A Prometheus-instrumented wrapper is available via NewWithMetrics.
*/
package pool
