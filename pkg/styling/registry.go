package styling

import (
	"sort"
	"sync"
)

// Collection is the type-erased view of a collector that a Registry stores
type Collection interface {
	ElementName() string
	Len() int
	Summaries() []Summary
}

// Registry collects element collectors by name for later inspection.
// Unlike a collector it is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	elements map[string]Collection
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{elements: make(map[string]Collection)}
}

var globalRegistry = NewRegistry()

// Register adds c under its element name, replacing any earlier entry.
// It reports whether an entry was replaced.
func (r *Registry) Register(c Collection) bool {
	if c == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := c.ElementName()
	_, replaced := r.elements[name]
	r.elements[name] = c
	return replaced
}

// Lookup returns the collection registered for name
func (r *Registry) Lookup(name string) (Collection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.elements[name]
	return c, ok
}

// Elements returns the registered element names in sorted order
func (r *Registry) Elements() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.elements))
	for name := range r.elements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Summaries returns every definition of every element, elements sorted by
// name and definitions in registration order.
func (r *Registry) Summaries() []Summary {
	var out []Summary
	for _, name := range r.Elements() {
		if c, ok := r.Lookup(name); ok {
			out = append(out, c.Summaries()...)
		}
	}
	return out
}

// Reset clears the registry (useful for testing)
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.elements = make(map[string]Collection)
}

// Register adds c to the global registry
func Register(c Collection) bool {
	return globalRegistry.Register(c)
}

// Lookup finds a collection in the global registry
func Lookup(name string) (Collection, bool) {
	return globalRegistry.Lookup(name)
}

// Elements lists the element names in the global registry
func Elements() []string {
	return globalRegistry.Elements()
}

// Reset clears the global registry
func Reset() {
	globalRegistry.Reset()
}

// Collect creates a collector and registers it in the global registry
func Collect[P, S, T any](elementName string, opts ...Option) *StyleCollector[P, S, T] {
	c := NewCollector[P, S, T](elementName, opts...)
	Register(c)
	return c
}
