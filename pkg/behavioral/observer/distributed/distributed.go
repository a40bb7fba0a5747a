package distributed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vnykmshr/gopatterns/pkg/behavioral/observer"
	gperrors "github.com/vnykmshr/gopatterns/pkg/common/errors"
	"github.com/vnykmshr/gopatterns/pkg/common/validation"
)

// Config holds configuration for a distributed subject.
type Config[E any] struct {
	// Redis is the client used for publish and subscribe. Required.
	Redis redis.UniversalClient

	// Channel is the Pub/Sub channel events travel on. Required.
	// Subjects sharing a channel form one notification group.
	Channel string

	// InstanceID identifies this process in event envelopes.
	// Defaults to hostname-pid.
	InstanceID string

	// Marshal encodes an event for the wire. Defaults to json.Marshal.
	Marshal func(E) ([]byte, error)

	// Unmarshal decodes an event from the wire. Defaults to json.Unmarshal.
	Unmarshal func([]byte) (E, error)

	// PublishTimeout bounds the Redis publish call. Defaults to 5s.
	PublishTimeout time.Duration

	// OnReceiveError is called for transport, decode, and local delivery
	// errors in the receive loop. If nil, such errors are dropped.
	OnReceiveError func(err error)
}

// envelope is the wire format carried on the Redis channel.
type envelope struct {
	Instance string          `json:"instance"`
	SentAt   time.Time       `json:"sent_at"`
	Payload  json.RawMessage `json:"payload"`
}

// Subject is a cross-process observer subject. Local subscribers receive
// events published by any instance on the channel, this one included.
type Subject[E any] struct {
	config Config[E]
	local  *observer.Subject[E]
	pubsub *redis.PubSub
	done   chan struct{}

	mu     sync.Mutex
	closed bool
}

// New creates a distributed subject and starts its receive loop.
func New[E any](config Config[E]) (*Subject[E], error) {
	if config.Redis == nil {
		return nil, validation.ValidateNotNil("distributed", "redis client", nil)
	}
	if err := validation.ValidateNotEmpty("distributed", "channel", config.Channel); err != nil {
		return nil, err
	}

	if config.InstanceID == "" {
		host, _ := os.Hostname()
		config.InstanceID = fmt.Sprintf("%s-%d", host, os.Getpid())
	}
	if config.Marshal == nil {
		config.Marshal = func(e E) ([]byte, error) { return json.Marshal(e) }
	}
	if config.Unmarshal == nil {
		config.Unmarshal = func(data []byte) (E, error) {
			var e E
			err := json.Unmarshal(data, &e)
			return e, err
		}
	}
	if config.PublishTimeout <= 0 {
		config.PublishTimeout = 5 * time.Second
	}

	s := &Subject[E]{
		config: config,
		local:  observer.NewSubject[E](),
		done:   make(chan struct{}),
	}
	s.pubsub = config.Redis.Subscribe(context.Background(), config.Channel)
	go s.receive()
	return s, nil
}

// Subscribe registers a local observer for events from every instance.
func (s *Subject[E]) Subscribe(o observer.Observer[E]) (*observer.Subscription, error) {
	return s.local.Subscribe(o)
}

// Len returns the number of local subscribers.
func (s *Subject[E]) Len() int {
	return s.local.Len()
}

// InstanceID returns the identifier stamped on this instance's envelopes.
func (s *Subject[E]) InstanceID() string {
	return s.config.InstanceID
}

// Notify publishes the event to the channel. Delivery to subscribers
// (local ones included) happens asynchronously via the receive loop.
func (s *Subject[E]) Notify(ctx context.Context, event E) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return fmt.Errorf("distributed: %w", gperrors.ErrClosed)
	}

	payload, err := s.config.Marshal(event)
	if err != nil {
		return fmt.Errorf("distributed: marshal event: %w", err)
	}
	data, err := json.Marshal(envelope{
		Instance: s.config.InstanceID,
		SentAt:   time.Now().UTC(),
		Payload:  payload,
	})
	if err != nil {
		return fmt.Errorf("distributed: marshal envelope: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.PublishTimeout)
	defer cancel()

	if err := s.config.Redis.Publish(ctx, s.config.Channel, data).Err(); err != nil {
		return fmt.Errorf("distributed: publish: %w", err)
	}
	return nil
}

// receive delivers channel traffic to local subscribers until the
// subscription is closed.
func (s *Subject[E]) receive() {
	defer close(s.done)

	for msg := range s.pubsub.Channel() {
		var env envelope
		if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
			s.reportError(fmt.Errorf("distributed: decode envelope: %w", err))
			continue
		}
		event, err := s.config.Unmarshal(env.Payload)
		if err != nil {
			s.reportError(fmt.Errorf("distributed: decode event from %s: %w", env.Instance, err))
			continue
		}
		if err := s.local.Notify(context.Background(), event); err != nil {
			s.reportError(err)
		}
	}
}

func (s *Subject[E]) reportError(err error) {
	if s.config.OnReceiveError != nil {
		s.config.OnReceiveError(err)
	}
}

// Close tears down the Redis subscription, waits for the receive loop to
// drain, and closes the local subject.
func (s *Subject[E]) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return fmt.Errorf("distributed: %w", gperrors.ErrClosed)
	}
	s.closed = true
	s.mu.Unlock()

	err := s.pubsub.Close()
	<-s.done
	_ = s.local.Close()
	return err
}
