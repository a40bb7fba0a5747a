package strategy

import (
	"context"
	"fmt"
	"sort"
	"sync"

	gperrors "github.com/vnykmshr/gopatterns/pkg/common/errors"
	"github.com/vnykmshr/gopatterns/pkg/common/validation"
)

// ErrNoStrategy is returned by Execute when no strategy is assigned.
var ErrNoStrategy = gperrors.ErrNoStrategy

// Strategy is an interchangeable algorithm: it transforms an input into an
// output under a fixed signature.
type Strategy[I, O any] interface {
	// Apply runs the algorithm on the given input.
	Apply(ctx context.Context, input I) (O, error)
}

// Func is a function type that implements the Strategy interface.
type Func[I, O any] func(ctx context.Context, input I) (O, error)

// Apply implements the Strategy interface for Func.
func (f Func[I, O]) Apply(ctx context.Context, input I) (O, error) {
	return f(ctx, input)
}

// Context holds a replaceable strategy and delegates execution to it.
// All methods are safe for concurrent use; Execute may run concurrently
// with Use, and each call sees whichever strategy was assigned when it
// started.
type Context[I, O any] struct {
	mu          sync.RWMutex
	current     Strategy[I, O]
	currentName string
	named       map[string]Strategy[I, O]
}

// NewContext creates a Context with no strategy assigned.
func NewContext[I, O any]() *Context[I, O] {
	return &Context[I, O]{named: make(map[string]Strategy[I, O])}
}

// Use assigns the strategy to delegate to.
func (c *Context[I, O]) Use(s Strategy[I, O]) {
	if s == nil {
		panic("strategy: strategy must not be nil")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = s
	c.currentName = ""
}

// Provide registers a strategy under a name for later selection with
// UseNamed. Re-registering a name returns an error matching
// gperrors.ErrDuplicate.
func (c *Context[I, O]) Provide(name string, s Strategy[I, O]) error {
	if err := validation.ValidateNotEmpty("strategy", "name", name); err != nil {
		return err
	}
	if s == nil {
		return validation.ValidateNotNil("strategy", "strategy", nil)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.named[name]; ok {
		return fmt.Errorf("strategy %q: %w", name, gperrors.ErrDuplicate)
	}
	c.named[name] = s
	return nil
}

// UseNamed assigns a previously provided strategy. An unknown name returns
// an error matching gperrors.ErrNotFound.
func (c *Context[I, O]) UseNamed(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.named[name]
	if !ok {
		return fmt.Errorf("strategy %q: %w", name, gperrors.ErrNotFound)
	}
	c.current = s
	c.currentName = name
	return nil
}

// Execute delegates to the currently assigned strategy.
func (c *Context[I, O]) Execute(ctx context.Context, input I) (O, error) {
	c.mu.RLock()
	s := c.current
	c.mu.RUnlock()

	if s == nil {
		var zero O
		return zero, fmt.Errorf("strategy: %w", ErrNoStrategy)
	}
	return s.Apply(ctx, input)
}

// CurrentName returns the name the active strategy was selected under, or
// "" if none is assigned or it was assigned directly with Use.
func (c *Context[I, O]) CurrentName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentName
}

// Assigned reports whether a strategy is currently assigned.
func (c *Context[I, O]) Assigned() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current != nil
}

// Strategies returns the provided names in sorted order.
func (c *Context[I, O]) Strategies() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.named))
	for name := range c.named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
