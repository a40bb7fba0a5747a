package factory

import (
	"fmt"
	"sort"
	"sync"

	gperrors "github.com/vnykmshr/gopatterns/pkg/common/errors"
	"github.com/vnykmshr/gopatterns/pkg/common/validation"
)

// Factory constructs a new product instance on every call.
// The factory owns nothing it creates; it keeps no reference to the product.
type Factory[T any] func() (T, error)

// Registry maps product names to factories. All methods are safe for
// concurrent use.
type Registry[T any] struct {
	mu        sync.RWMutex
	factories map[string]Factory[T]
}

// NewRegistry creates an empty factory registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{factories: make(map[string]Factory[T])}
}

// Register binds a factory to a name. Registering an already-bound name
// returns an error matching gperrors.ErrDuplicate.
func (r *Registry[T]) Register(name string, f Factory[T]) error {
	if err := validation.ValidateNotEmpty("factory", "name", name); err != nil {
		return err
	}
	if f == nil {
		return validation.ValidateNotNil("factory", "factory", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("factory %q: %w", name, gperrors.ErrDuplicate)
	}
	r.factories[name] = f
	return nil
}

// MustRegister is like Register but panics on error. Intended for
// package-level registration at startup.
func (r *Registry[T]) MustRegister(name string, f Factory[T]) {
	if err := r.Register(name, f); err != nil {
		panic(err)
	}
}

// New constructs a product by name. An unknown name returns an error
// matching gperrors.ErrNotFound.
func (r *Registry[T]) New(name string) (T, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		var zero T
		return zero, fmt.Errorf("factory %q: %w", name, gperrors.ErrNotFound)
	}
	return f()
}

// MustNew is like New but panics on error.
func (r *Registry[T]) MustNew(name string) T {
	v, err := r.New(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Deregister removes a name binding and reports whether it existed.
func (r *Registry[T]) Deregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.factories[name]
	delete(r.factories, name)
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered factories.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// Reset removes all bindings.
func (r *Registry[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories = make(map[string]Factory[T])
}
