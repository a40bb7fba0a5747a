package bridge_test

import (
	"context"
	"os"

	"github.com/vnykmshr/gopatterns/pkg/structural/bridge"
)

// Example demonstrates the same abstraction driving two implementations.
func Example() {
	ctx := context.Background()

	stdout := bridge.NewNotifier(bridge.NewWriterSink(os.Stdout))
	stdout.Info(ctx, "deploy finished")

	// Swap the implementation; the calling code does not change.
	ch := make(chan bridge.Message, 1)
	buffered := bridge.NewNotifier(bridge.NewChannelSink(ch))
	buffered.Warn(ctx, "deploy finished")

	msg := <-ch
	stdout.Notify(ctx, msg.Level, "relayed: "+msg.Text)

	// Output:
	// info: deploy finished
	// warn: relayed: deploy finished
}

// Example_tagged shows refining the abstraction without touching sinks.
func Example_tagged() {
	sink := bridge.NewWriterSink(os.Stdout)
	orders := bridge.NewTaggedNotifier(sink, map[string]string{"component": "orders"})

	orders.Error(context.Background(), "payment rejected")
	// Output: error: payment rejected component=orders
}
