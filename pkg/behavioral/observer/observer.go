package observer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	gperrors "github.com/vnykmshr/gopatterns/pkg/common/errors"
	"github.com/vnykmshr/gopatterns/pkg/common/validation"
)

// ErrClosed is returned for operations on a closed subject.
var ErrClosed = gperrors.ErrClosed

// Observer receives events published by a Subject.
type Observer[E any] interface {
	// OnEvent handles one event. It should respect context cancellation
	// and return any error encountered; the error is reported to the
	// notifier but does not affect other subscribers.
	OnEvent(ctx context.Context, event E) error
}

// Func is a function type that implements the Observer interface.
type Func[E any] func(ctx context.Context, event E) error

// OnEvent implements the Observer interface for Func.
func (f Func[E]) OnEvent(ctx context.Context, event E) error {
	return f(ctx, event)
}

// Subscription is the handle returned by Subscribe. Cancel deregisters the
// subscriber; it is safe to call more than once and after the subject is
// closed.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Cancel deregisters the subscriber.
func (s *Subscription) Cancel() {
	s.once.Do(s.cancel)
}

// Config holds configuration options for creating a subject.
type Config[E any] struct {
	// PanicHandler is called when a subscriber panics during delivery.
	// If nil, the panic is converted into a delivery error.
	PanicHandler func(event E, recovered interface{})
}

// Subject maintains a set of subscribers and notifies them of events.
// All methods are safe for concurrent use.
type Subject[E any] struct {
	config Config[E]

	mu     sync.RWMutex
	nextID uint64
	order  []uint64
	subs   map[uint64]Observer[E]
	closed bool
}

// NewSubject creates a subject with no subscribers.
func NewSubject[E any]() *Subject[E] {
	return NewSubjectWithConfig(Config[E]{})
}

// NewSubjectWithConfig creates a subject with the specified configuration.
func NewSubjectWithConfig[E any](config Config[E]) *Subject[E] {
	return &Subject[E]{
		config: config,
		subs:   make(map[uint64]Observer[E]),
	}
}

// Subscribe registers an observer and returns its subscription handle.
func (s *Subject[E]) Subscribe(o Observer[E]) (*Subscription, error) {
	if o == nil {
		return nil, validation.ValidateNotNil("observer", "observer", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, fmt.Errorf("observer: %w", ErrClosed)
	}

	id := s.nextID
	s.nextID++
	s.subs[id] = o
	s.order = append(s.order, id)

	return &Subscription{cancel: func() { s.unsubscribe(id) }}, nil
}

func (s *Subject[E]) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subs[id]; !ok {
		return
	}
	delete(s.subs, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of registered subscribers.
func (s *Subject[E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

// Notify delivers the event to every subscriber registered at the time of
// the call, exactly once each, in subscription order, before returning.
// Subscriber errors are joined into the returned error; one failing
// subscriber does not stop delivery to the rest.
func (s *Subject[E]) Notify(ctx context.Context, event E) error {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return fmt.Errorf("observer: %w", ErrClosed)
	}
	observers := make([]Observer[E], 0, len(s.order))
	for _, id := range s.order {
		observers = append(observers, s.subs[id])
	}
	s.mu.RUnlock()

	var errs []error
	for _, o := range observers {
		if err := s.deliver(ctx, o, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// deliver invokes one subscriber, isolating panics.
func (s *Subject[E]) deliver(ctx context.Context, o Observer[E], event E) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if s.config.PanicHandler != nil {
				s.config.PanicHandler(event, r)
				return
			}
			err = fmt.Errorf("observer: subscriber panicked: %v", r)
		}
	}()
	return o.OnEvent(ctx, event)
}

// Close shuts the subject down. Subsequent Subscribe and Notify calls fail
// with ErrClosed; existing subscriptions are dropped.
func (s *Subject[E]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("observer: %w", ErrClosed)
	}
	s.closed = true
	s.subs = make(map[uint64]Observer[E])
	s.order = nil
	return nil
}
