package input

import (
	"sort"
	"sync"
)

// Registry holds the actions known to a scene, keyed by name. Operations on
// unknown names are no-ops.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]*Action
}

func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]*Action)}
}

// Register returns the action with the given name, creating it if needed.
// An existing action keeps its original behavior.
func (r *Registry) Register(name string, behavior Behavior) *Action {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a, ok := r.actions[name]; ok {
		return a
	}
	a := NewAction(name, behavior)
	r.actions[name] = a
	return a
}

func (r *Registry) Get(name string) (*Action, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.actions[name]
	return a, ok
}

// Names returns the registered action names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Press(name string, amount int) {
	if a, ok := r.Get(name); ok {
		a.Press(amount)
	}
}

func (r *Registry) Release(name string) {
	if a, ok := r.Get(name); ok {
		a.Release()
	}
}

func (r *Registry) Tap(name string) {
	if a, ok := r.Get(name); ok {
		a.Tap()
	}
}

// ResetAll releases every action, e.g. when a scene restarts.
func (r *Registry) ResetAll() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.actions {
		a.Reset()
	}
}
