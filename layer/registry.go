// SPDX-License-Identifier: MIT

package layer

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Registry maps kind names to kinds so that declarative documents can refer
// to layer kinds by name. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Kind
}

// NewRegistry returns a registry holding kinds. It panics on duplicates,
// like Register.
func NewRegistry(kinds ...Kind) *Registry {
	r := &Registry{kinds: make(map[string]Kind, len(kinds))}
	for _, k := range kinds {
		r.Register(k)
	}

	return r
}

// DefaultRegistry returns a fresh registry holding AllWires, Pairwise and Dense.
func DefaultRegistry() *Registry {
	return NewRegistry(AllWires, Pairwise, Dense)
}

// Register adds k. Registering nil or a name twice is a programmer error
// and panics.
func (r *Registry) Register(k Kind) {
	if k == nil {
		panic("layer: Register(nil)")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.kinds[k.Name()]; exists {
		panic(fmt.Sprintf("layer: kind %q already registered", k.Name()))
	}
	r.kinds[k.Name()] = k
}

// Lookup returns the kind registered under name.
func (r *Registry) Lookup(name string) (Kind, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.kinds[name]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownKind)
	}

	return k, nil
}

// Contains reports whether k itself is registered: a different kind that
// only shares k's name does not count.
func (r *Registry) Contains(k Kind) bool {
	if k == nil {
		return false
	}
	r.mu.RLock()
	got, ok := r.kinds[k.Name()]
	r.mu.RUnlock()

	return ok && sameKind(got, k)
}

// sameKind compares by identity without panicking on uncomparable kinds.
func sameKind(a, b Kind) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}

	return a == b
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.kinds))
	for n := range r.kinds {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
