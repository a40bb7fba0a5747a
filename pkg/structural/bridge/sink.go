package bridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Level classifies a Message.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// String returns the level's lowercase name.
func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Message is the unit of data crossing the bridge from abstraction to
// implementation.
type Message struct {
	Level  Level
	Text   string
	Fields map[string]string
}

// Sink is the implementation side of the bridge: a destination that can
// emit a Message. Implementations must be safe for concurrent use.
type Sink interface {
	Emit(ctx context.Context, msg Message) error
}

// WriterSink emits plain-text lines to an io.Writer.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a Sink writing one line per message to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit writes "level: text key=value ..." with fields in sorted key order.
func (s *WriterSink) Emit(_ context.Context, msg Message) error {
	var b strings.Builder
	b.WriteString(msg.Level.String())
	b.WriteString(": ")
	b.WriteString(msg.Text)

	keys := make([]string, 0, len(msg.Fields))
	for k := range msg.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%s", k, msg.Fields[k])
	}
	b.WriteByte('\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, b.String())
	return err
}

// LoggerSink emits structured events through a zerolog logger.
type LoggerSink struct {
	logger *zerolog.Logger
}

// NewLoggerSink creates a Sink backed by the given logger.
func NewLoggerSink(logger *zerolog.Logger) *LoggerSink {
	return &LoggerSink{logger: logger}
}

// Emit logs the message at the corresponding zerolog level.
func (s *LoggerSink) Emit(_ context.Context, msg Message) error {
	var ev *zerolog.Event
	switch msg.Level {
	case LevelWarn:
		ev = s.logger.Warn()
	case LevelError:
		ev = s.logger.Error()
	default:
		ev = s.logger.Info()
	}
	for k, v := range msg.Fields {
		ev = ev.Str(k, v)
	}
	ev.Msg(msg.Text)
	return nil
}

// ChannelSink delivers messages to a channel, blocking until the message is
// accepted or the context is done.
type ChannelSink struct {
	ch chan<- Message
}

// NewChannelSink creates a Sink delivering to ch.
func NewChannelSink(ch chan<- Message) *ChannelSink {
	return &ChannelSink{ch: ch}
}

// Emit sends the message on the channel.
func (s *ChannelSink) Emit(ctx context.Context, msg Message) error {
	select {
	case s.ch <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// MultiSink fans each message out to several sinks.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a Sink that emits to every given sink.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Emit delivers to every sink; errors are collected, and one failing sink
// does not stop delivery to the rest.
func (s *MultiSink) Emit(ctx context.Context, msg Message) error {
	var errs []error
	for _, sink := range s.sinks {
		if err := sink.Emit(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
