package pool

import (
	"context"
	"fmt"
)

// Acquire checks a resource out without blocking.
func (p *resourcePool[T]) Acquire() (T, error) {
	var zero T

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return zero, fmt.Errorf("pool: %w", ErrClosed)
	}

	n := len(p.free)
	if n == 0 {
		p.totalExhausted++
		return zero, fmt.Errorf("pool: %w", ErrExhausted)
	}

	r := p.free[n-1]
	p.free = p.free[:n-1]
	p.inUse[r] = struct{}{}
	p.totalAcquires++
	return r, nil
}

// AcquireWait checks a resource out, blocking until one is available.
func (p *resourcePool[T]) AcquireWait(ctx context.Context) (T, error) {
	var zero T

	if ctx == nil {
		ctx = context.Background()
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return zero, fmt.Errorf("pool: %w", ErrClosed)
	}
	if n := len(p.free); n > 0 {
		r := p.free[n-1]
		p.free = p.free[:n-1]
		p.inUse[r] = struct{}{}
		p.totalAcquires++
		p.mu.Unlock()
		return r, nil
	}

	w := &waiter[T]{ready: make(chan T, 1)}
	p.waiters.Add(w)
	p.mu.Unlock()

	select {
	case r := <-w.ready:
		return r, nil

	case <-p.closeCh:
		// A release may have handed us a resource concurrently; prefer it.
		p.mu.Lock()
		select {
		case r := <-w.ready:
			p.mu.Unlock()
			return r, nil
		default:
		}
		w.canceled = true
		p.mu.Unlock()
		return zero, fmt.Errorf("pool: %w", ErrClosed)

	case <-ctx.Done():
		p.mu.Lock()
		select {
		case r := <-w.ready:
			p.mu.Unlock()
			return r, nil
		default:
		}
		w.canceled = true
		p.mu.Unlock()
		return zero, ctx.Err()
	}
}

// Release returns a checked-out resource to the pool.
func (p *resourcePool[T]) Release(r T) error {
	p.mu.Lock()
	if _, ok := p.inUse[r]; !ok {
		p.mu.Unlock()
		return fmt.Errorf("pool: %w", ErrForeignResource)
	}
	delete(p.inUse, r)
	p.mu.Unlock()

	// Reset runs outside the lock: hooks must not be able to deadlock the
	// pool, and the resource is invisible to other callers at this point.
	if p.config.Reset != nil {
		p.config.Reset(r)
	}

	p.mu.Lock()
	p.totalReleases++

	if p.closed {
		p.mu.Unlock()
		if p.config.Closer != nil {
			p.config.Closer(r)
		}
		return nil
	}

	// Hand off to the first still-waiting caller, FIFO.
	for p.waiters.Length() > 0 {
		w := p.waiters.Remove().(*waiter[T])
		if w.canceled {
			continue
		}
		p.inUse[r] = struct{}{}
		p.totalAcquires++
		w.ready <- r
		p.mu.Unlock()
		return nil
	}

	p.free = append(p.free, r)
	p.mu.Unlock()
	return nil
}

// With acquires a resource, runs fn, and always releases.
func (p *resourcePool[T]) With(ctx context.Context, fn func(T) error) error {
	r, err := p.AcquireWait(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = p.Release(r)
	}()
	return fn(r)
}

// Capacity returns the fixed pool size.
func (p *resourcePool[T]) Capacity() int {
	return p.config.Capacity
}

// InUse returns the number of resources currently checked out.
func (p *resourcePool[T]) InUse() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.inUse)
}

// Stats returns a snapshot of pool counters.
func (p *resourcePool[T]) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	waiting := 0
	for i := 0; i < p.waiters.Length(); i++ {
		if !p.waiters.Get(i).(*waiter[T]).canceled {
			waiting++
		}
	}

	return Stats{
		Capacity:       p.config.Capacity,
		Idle:           len(p.free),
		InUse:          len(p.inUse),
		Waiters:        waiting,
		TotalAcquires:  p.totalAcquires,
		TotalReleases:  p.totalReleases,
		TotalExhausted: p.totalExhausted,
	}
}

// Close rejects further acquisitions and fails pending waiters.
func (p *resourcePool[T]) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return fmt.Errorf("pool: %w", ErrClosed)
	}
	p.closed = true
	close(p.closeCh)

	idle := p.free
	p.free = nil
	p.mu.Unlock()

	if p.config.Closer != nil {
		for _, r := range idle {
			p.config.Closer(r)
		}
	}
	return nil
}
