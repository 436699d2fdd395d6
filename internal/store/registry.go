package store

// Registry tracks the stores of all known targets so the view can
// switch between sessions. Targets keep creation order for stable
// listing.
type Registry struct {
	stores map[string]*Store
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

// Open returns the store for target, creating it if needed. A closed
// store is replaced by a fresh one: a dead target re-opened by name
// starts with an empty list.
func (r *Registry) Open(target string) *Store {
	if s, ok := r.stores[target]; ok && s.Live() {
		return s
	}
	s := New(target)
	if _, known := r.stores[target]; !known {
		r.order = append(r.order, target)
	}
	r.stores[target] = s
	return s
}

// Lookup returns the store for target without creating one.
func (r *Registry) Lookup(target string) (*Store, bool) {
	s, ok := r.stores[target]
	return s, ok
}

// Targets lists known target names in creation order.
func (r *Registry) Targets() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Remove closes and forgets the store for target.
func (r *Registry) Remove(target string) {
	s, ok := r.stores[target]
	if !ok {
		return
	}
	s.Close()
	delete(r.stores, target)
	for i, name := range r.order {
		if name == target {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}
