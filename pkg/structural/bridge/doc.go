/*
Package bridge decouples an abstraction from its implementation so each can
vary independently.

The implementation side is Sink: something that can emit a Message. The
abstraction side is Notifier: the leveled API callers program against. A
Notifier works with any Sink, and a Sink serves any notifier-shaped
abstraction, so the two hierarchies grow without multiplying each other.

	// Same abstraction, different implementations.
	dev := bridge.NewNotifier(bridge.NewWriterSink(os.Stdout))
	prod := bridge.NewNotifier(bridge.NewLoggerSink(logger))

	dev.Info(ctx, "cache warmed")  // plain text to stdout
	prod.Info(ctx, "cache warmed") // structured JSON via zerolog

Refining the abstraction does not touch any Sink:

	orders := bridge.NewTaggedNotifier(sink, map[string]string{"component": "orders"})
	orders.Warn(ctx, "queue depth high") // carries component=orders

Provided sinks: WriterSink (any io.Writer), LoggerSink (zerolog),
ChannelSink (deliver Messages to a channel), MultiSink (fan out to several
sinks).
*/
package bridge
