package observer

import (
	"chat-observer/contract"
	"chat-observer/errors"
	"context"
	"sync"
)

// ReactionFunc adapts a plain function to contract.Reaction.
type ReactionFunc[V any] func(ctx context.Context, value V) error

func (f ReactionFunc[V]) Execute(ctx context.Context, value V) error {
	return f(ctx, value)
}

// Observer caches the last value it received and runs its reaction on every
// notification. It is built unbound and only receives values once bound.
type Observer[V any] struct {
	mu       sync.RWMutex
	lastSeen V
	bound    bool
	received bool // a value arrived since BindTo started
	reaction contract.Reaction[V]
}

func New[V any](reaction contract.Reaction[V]) (*Observer[V], error) {
	if reaction == nil {
		return nil, errors.ErrNilReaction
	}
	return &Observer[V]{reaction: reaction}, nil
}

// Bind builds an observer and registers it on subject.
// The cached value is the one the subject held at registration.
func Bind[V any](subject *Subject[V], reaction contract.Reaction[V]) (*Observer[V], error) {
	if subject == nil {
		return nil, errors.ErrNilSubject
	}
	o, err := New(reaction)
	if err != nil {
		return nil, err
	}
	if err = o.BindTo(subject); err != nil {
		return nil, err
	}
	return o, nil
}

// BindTo registers an already built observer. An observer binds only once.
// The observer lock is never held while waiting for the subject lock: a value
// received during the registration wins over the value read at registration.
func (o *Observer[V]) BindTo(subject *Subject[V]) error {
	if subject == nil {
		return errors.ErrNilSubject
	}
	o.mu.Lock()
	if o.bound {
		o.mu.Unlock()
		return errors.ErrAlreadyBound
	}
	o.bound = true
	o.received = false
	o.mu.Unlock()

	initial, _ := subject.Subscribe(o)

	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.received {
		o.lastSeen = initial
	}
	return nil
}

// Receive caches value then runs the reaction outside the observer lock.
func (o *Observer[V]) Receive(ctx context.Context, value V) error {
	o.mu.Lock()
	o.lastSeen = value
	o.received = true
	o.mu.Unlock()
	return o.reaction.Execute(ctx, value)
}

func (o *Observer[V]) LastSeenValue() V {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.lastSeen
}

func (o *Observer[V]) Bound() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.bound
}
