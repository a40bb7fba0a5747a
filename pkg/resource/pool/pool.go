package pool

import (
	"context"
	"sync"

	"github.com/eapache/queue"

	gperrors "github.com/vnykmshr/gopatterns/pkg/common/errors"
	"github.com/vnykmshr/gopatterns/pkg/common/validation"
)

// Errors returned by pool operations.
var (
	// ErrExhausted is returned by Acquire when every resource is checked out.
	ErrExhausted = gperrors.ErrExhausted

	// ErrClosed is returned for operations on a closed pool.
	ErrClosed = gperrors.ErrClosed

	// ErrForeignResource is returned by Release for a resource the pool does
	// not currently have checked out (including double releases).
	ErrForeignResource = gperrors.ErrForeignResource
)

// Pool manages a fixed set of pre-constructed, reusable resources.
// T must be comparable because the pool tracks checked-out resources by
// identity; pointer types are the usual choice.
type Pool[T comparable] interface {
	// Acquire checks a resource out without blocking.
	// Returns ErrExhausted if every resource is in use.
	Acquire() (T, error)

	// AcquireWait checks a resource out, blocking until one is released or
	// the context is done. Waiters are served in FIFO order.
	AcquireWait(ctx context.Context) (T, error)

	// Release returns a checked-out resource to the pool, running the
	// configured Reset hook first.
	Release(resource T) error

	// With acquires a resource, invokes fn with it, and releases it when fn
	// returns, regardless of the outcome.
	With(ctx context.Context, fn func(T) error) error

	// Capacity returns the fixed number of resources the pool manages.
	Capacity() int

	// InUse returns the number of resources currently checked out.
	InUse() int

	// Stats returns a snapshot of pool counters.
	Stats() Stats

	// Close rejects further acquisitions, fails pending waiters with
	// ErrClosed, and runs the configured Closer on idle resources.
	// Resources still checked out are closed as they are released.
	Close() error
}

// Config holds configuration options for creating a pool.
type Config[T comparable] struct {
	// Capacity is the fixed number of resources. Must be greater than 0.
	Capacity int

	// Constructor builds one resource. Called Capacity times up front.
	Constructor func() (T, error)

	// Reset restores a resource to a fresh state. Called on every release,
	// before the resource becomes visible to the next holder. Optional, but
	// strongly recommended for stateful resources: skipping it leaks state
	// (and, in the worst case, credentials) between holders.
	Reset func(T)

	// Closer tears a resource down when the pool is closed. Optional.
	Closer func(T)
}

// Stats is a point-in-time snapshot of pool counters.
type Stats struct {
	// Capacity is the fixed pool size.
	Capacity int

	// Idle is the number of resources currently available.
	Idle int

	// InUse is the number of resources currently checked out.
	InUse int

	// Waiters is the number of callers blocked in AcquireWait.
	Waiters int

	// TotalAcquires counts successful acquisitions over the pool's lifetime.
	TotalAcquires int64

	// TotalReleases counts releases over the pool's lifetime.
	TotalReleases int64

	// TotalExhausted counts Acquire calls rejected on an empty pool.
	TotalExhausted int64
}

// resourcePool implements the Pool interface.
type resourcePool[T comparable] struct {
	config Config[T]

	mu      sync.Mutex
	free    []T
	inUse   map[T]struct{}
	waiters *queue.Queue // of *waiter[T], FIFO
	closed  bool
	closeCh chan struct{}

	totalAcquires  int64
	totalReleases  int64
	totalExhausted int64
}

// waiter is one caller blocked in AcquireWait. canceled is guarded by the
// pool mutex; ready is buffered so a hand-off never blocks Release.
type waiter[T comparable] struct {
	ready    chan T
	canceled bool
}

// New creates a pool of the given capacity, building every resource up front
// with the constructor.
func New[T comparable](capacity int, constructor func() (T, error)) (Pool[T], error) {
	return NewWithConfig(Config[T]{
		Capacity:    capacity,
		Constructor: constructor,
	})
}

// NewWithConfig creates a pool with the specified configuration.
func NewWithConfig[T comparable](config Config[T]) (Pool[T], error) {
	if err := validation.ValidatePositive("pool", "capacity", config.Capacity); err != nil {
		return nil, err
	}
	if config.Constructor == nil {
		return nil, validation.ValidateNotNil("pool", "constructor", nil)
	}

	p := &resourcePool[T]{
		config:  config,
		free:    make([]T, 0, config.Capacity),
		inUse:   make(map[T]struct{}, config.Capacity),
		waiters: queue.New(),
		closeCh: make(chan struct{}),
	}

	for i := 0; i < config.Capacity; i++ {
		r, err := config.Constructor()
		if err != nil {
			// Tear down the resources already built.
			if config.Closer != nil {
				for _, built := range p.free {
					config.Closer(built)
				}
			}
			return nil, err
		}
		p.free = append(p.free, r)
	}

	return p, nil
}
