package observer

import (
	"chat-observer/contract"
	"reflect"
)

// Registry is the ordered sequence of listeners of one subject.
// It is not synchronized: the owning Subject serializes every access.
type Registry[V any] struct {
	listeners []contract.Listener[V]
}

func NewRegistry[V any]() *Registry[V] {
	return &Registry[V]{}
}

// Add appends the listener. Duplicates are kept, nil is ignored.
func (r *Registry[V]) Add(l contract.Listener[V]) {
	if l == nil {
		return
	}
	r.listeners = append(r.listeners, l)
}

func (r *Registry[V]) AddAll(ls ...contract.Listener[V]) {
	for _, l := range ls {
		r.Add(l)
	}
}

// Remove drops the first occurrence of l, compared by identity.
// Removing an unknown listener is a no-op. Listeners that cannot be compared
// with == (values holding a slice, map or func) are never found.
func (r *Registry[V]) Remove(l contract.Listener[V]) {
	if !isComparable(l) {
		return
	}
	for i, current := range r.listeners {
		if reflect.TypeOf(current) == reflect.TypeOf(l) && current == l {
			r.listeners = append(r.listeners[:i], r.listeners[i+1:]...)
			return
		}
	}
}

// isComparable reports whether l can be compared with == without panicking,
// looking at the dynamic values of interface fields too.
func isComparable[V any](l contract.Listener[V]) bool {
	if l == nil {
		return false
	}
	return reflect.ValueOf(l).Comparable()
}

func (r *Registry[V]) RemoveAll(ls ...contract.Listener[V]) {
	for _, l := range ls {
		r.Remove(l)
	}
}

// Each calls fn on a snapshot of the listeners in registration order
// and stops as soon as fn returns false.
func (r *Registry[V]) Each(fn func(l contract.Listener[V]) bool) {
	for _, l := range r.Snapshot() {
		if !fn(l) {
			return
		}
	}
}

func (r *Registry[V]) Len() int {
	return len(r.listeners)
}

func (r *Registry[V]) Snapshot() []contract.Listener[V] {
	snapshot := make([]contract.Listener[V], len(r.listeners))
	copy(snapshot, r.listeners)
	return snapshot
}
