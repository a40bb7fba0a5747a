package bridge

import (
	"context"
)

// Notifier is the abstraction side of the bridge. It exposes a leveled
// notification API and delegates delivery to whatever Sink it was built
// with; callers never depend on a concrete implementation.
type Notifier struct {
	sink Sink
}

// NewNotifier creates a Notifier over the given implementation.
func NewNotifier(sink Sink) *Notifier {
	if sink == nil {
		panic("bridge: sink must not be nil")
	}
	return &Notifier{sink: sink}
}

// Notify emits a message at the given level.
func (n *Notifier) Notify(ctx context.Context, level Level, text string) error {
	return n.sink.Emit(ctx, Message{Level: level, Text: text})
}

// Info emits an informational message.
func (n *Notifier) Info(ctx context.Context, text string) error {
	return n.Notify(ctx, LevelInfo, text)
}

// Warn emits a warning.
func (n *Notifier) Warn(ctx context.Context, text string) error {
	return n.Notify(ctx, LevelWarn, text)
}

// Error emits an error message.
func (n *Notifier) Error(ctx context.Context, text string) error {
	return n.Notify(ctx, LevelError, text)
}

// TaggedNotifier is a refined abstraction: every message carries a static
// set of fields. It works with any Sink, unchanged.
type TaggedNotifier struct {
	sink   Sink
	fields map[string]string
}

// NewTaggedNotifier creates a notifier that stamps fields onto every message.
func NewTaggedNotifier(sink Sink, fields map[string]string) *TaggedNotifier {
	if sink == nil {
		panic("bridge: sink must not be nil")
	}
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return &TaggedNotifier{sink: sink, fields: copied}
}

// Notify emits a message at the given level, carrying the static fields.
func (t *TaggedNotifier) Notify(ctx context.Context, level Level, text string) error {
	fields := make(map[string]string, len(t.fields))
	for k, v := range t.fields {
		fields[k] = v
	}
	return t.sink.Emit(ctx, Message{Level: level, Text: text, Fields: fields})
}

// Info emits an informational message.
func (t *TaggedNotifier) Info(ctx context.Context, text string) error {
	return t.Notify(ctx, LevelInfo, text)
}

// Warn emits a warning.
func (t *TaggedNotifier) Warn(ctx context.Context, text string) error {
	return t.Notify(ctx, LevelWarn, text)
}

// Error emits an error message.
func (t *TaggedNotifier) Error(ctx context.Context, text string) error {
	return t.Notify(ctx, LevelError, text)
}
