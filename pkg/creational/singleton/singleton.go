package singleton

import (
	"sync"
)

// Handle holds a single lazily-constructed instance of T.
// All methods are safe for concurrent use.
type Handle[T any] struct {
	init func() T

	mu   sync.RWMutex
	done bool
	val  T
}

// New creates a Handle that will construct its instance on first access
// using the given init function. The function is invoked at most once per
// initialization cycle (see Reset).
func New[T any](init func() T) *Handle[T] {
	if init == nil {
		panic("singleton: init function must not be nil")
	}
	return &Handle[T]{init: init}
}

// Instance returns the shared instance, constructing it on first call.
// Every call between two Resets returns the identical value.
func (h *Handle[T]) Instance() T {
	h.mu.RLock()
	if h.done {
		v := h.val
		h.mu.RUnlock()
		return v
	}
	h.mu.RUnlock()

	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.done {
		h.val = h.init()
		h.done = true
	}
	return h.val
}

// Initialized reports whether the instance has been constructed.
func (h *Handle[T]) Initialized() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.done
}

// Reset discards the current instance so the next Instance call constructs a
// fresh one. It exists for tests; production code that needs Reset almost
// certainly should not be using a singleton.
func (h *Handle[T]) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	var zero T
	h.val = zero
	h.done = false
}
