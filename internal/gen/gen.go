// Package gen hosts the boilerplate generators that accompany the splice
// engine: independent, stateless "declaration shape -> boilerplate tokens"
// rewrites behind one functional interface. None of them calls into the
// splice engine or shares state with another generator.
package gen

import (
	"sort"
	"sync"

	"splice/internal/diag"
	"splice/internal/tokentree"
)

// Generator consumes a declaration's token stream and emits a fixed
// boilerplate pattern. Each call is a pure rewrite keyed only on its own
// invocation's input.
type Generator interface {
	Name() string
	Expand(input tokentree.Stream, rep diag.Reporter) (tokentree.Stream, bool)
}

// Registry maps generator names to implementations.
type Registry struct {
	mu     sync.Mutex
	byName map[string]Generator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Generator)}
}

// Register adds a generator, replacing any previous one with the same name.
func (r *Registry) Register(g Generator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[g.Name()] = g
}

// Lookup returns the generator registered under name.
func (r *Registry) Lookup(name string) (Generator, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.byName[name]
	return g, ok
}

// Names returns the registered generator names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns a registry with every built-in generator registered.
func Default() *Registry {
	r := NewRegistry()
	r.Register(Module{})
	r.Register(VTable{})
	r.Register(Export{})
	r.Register(PinData{})
	r.Register(PinnedDrop{})
	r.Register(Zeroable{})
	return r
}
