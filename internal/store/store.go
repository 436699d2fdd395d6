// Package store owns the ordered context list attached to a target
// session. The store is the only creator and destroyer of entries;
// the engine reorders and removes but never adds. Views subscribe to
// the store and are notified after every mutation so they can
// re-project, replacing advice-style interception with an explicit
// observer list.
package store

import (
	"github.com/Cyclone1070/ctxboard/internal/contextitem"
	"github.com/Cyclone1070/ctxboard/internal/engine"
)

// Store holds the ordered context list for one target. All access is
// single-threaded on the UI loop; the store does no locking of its
// own.
type Store struct {
	target    string
	items     []contextitem.Item
	observers []*observer
	closed    bool
}

type observer struct {
	fn func()
}

// New creates an empty store for the named target.
func New(target string) *Store {
	return &Store{target: target}
}

// Target returns the session this store belongs to.
func (s *Store) Target() string {
	return s.target
}

// Live reports whether the store is still open. Operations against a
// closed store degrade to ErrTargetGone.
func (s *Store) Live() bool {
	return !s.closed
}

// Items returns a copy of the current sequence. Callers transform the
// copy and hand the result back via Replace; no caller-side cache can
// go stale against the store.
func (s *Store) Items() []contextitem.Item {
	out := make([]contextitem.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items in the list.
func (s *Store) Len() int {
	return len(s.items)
}

// Replace installs a new sequence, typically the output of an engine
// operation, and notifies observers.
func (s *Store) Replace(items []contextitem.Item) error {
	if s.closed {
		return engine.ErrTargetGone
	}
	s.items = items
	s.notify()
	return nil
}

// Add appends an item to the list. Adding an identity that is already
// present replaces the existing entry in place, releasing the old
// entry's resources, so identities stay unique within the list.
func (s *Store) Add(it contextitem.Item) error {
	if s.closed {
		return engine.ErrTargetGone
	}
	id := it.Identity()
	for i, existing := range s.items {
		if existing.Identity() == id {
			existing.Release()
			s.items[i] = it
			s.notify()
			return nil
		}
	}
	s.items = append(s.items, it)
	s.notify()
	return nil
}

// RemoveAll empties the list, releasing every item, and returns the
// number of items removed.
func (s *Store) RemoveAll() int {
	n := len(s.items)
	for _, it := range s.items {
		it.Release()
	}
	s.items = nil
	if n > 0 {
		s.notify()
	}
	return n
}

// Close releases all items and marks the store dead. Observers are
// not notified: there is nothing left to render.
func (s *Store) Close() {
	if s.closed {
		return
	}
	for _, it := range s.items {
		it.Release()
	}
	s.items = nil
	s.closed = true
}

// Subscribe registers fn to run after every mutation. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	ob := &observer{fn: fn}
	s.observers = append(s.observers, ob)
	return func() {
		for i, o := range s.observers {
			if o == ob {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify() {
	for _, ob := range s.observers {
		ob.fn()
	}
}
