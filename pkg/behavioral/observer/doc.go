/*
Package observer provides subject/subscriber notification: subscribers
register interest in a subject's events, and every state change is delivered
to each of them.

Basic usage:

	subject := observer.NewSubject[OrderEvent]()

	sub, err := subject.Subscribe(observer.Func[OrderEvent](func(ctx context.Context, e OrderEvent) error {
		return index.Update(ctx, e)
	}))
	if err != nil {
		return err
	}
	defer sub.Cancel()

	// Delivers to every registered subscriber, exactly once each,
	// before returning.
	if err := subject.Notify(ctx, OrderEvent{ID: 42}); err != nil {
		// err joins the failures of individual subscribers
	}

Delivery contract:

Notify is synchronous. Every subscriber registered when Notify is called
receives the event exactly once before Notify returns, in subscription
order. A failing (or panicking) subscriber does not prevent delivery to the
rest; failures are joined into the returned error.

Subscriptions are canceled via their handle, and a canceled subscriber stops
receiving events immediately. Close shuts the subject down; subsequent
Subscribe and Notify calls fail with ErrClosed.

A Prometheus-instrumented wrapper is available via NewWithMetrics, and a
Redis-backed cross-process variant lives in the distributed sub-package.
*/
package observer
