package observer

import (
	"chat-observer/contract"
	"chat-observer/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// notifyingKey marks a context as being inside a notification round of one subject.
type notifyingKey[V any] struct {
	subject *Subject[V]
}

type options struct {
	policy Policy
}

type Option func(*options)

// WithPolicy selects how a notification round reacts to a failing listener.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// Subject holds one current value and the listeners notified on every change.
//
// Every operation takes the same mutex, and the mutex stays held during the
// whole fan-out: two concurrent SetValue calls are totally ordered, and a
// Remove that returns before a SetValue starts is honoured by that SetValue.
// A slow listener therefore stalls every other caller of the subject.
//
// Listeners run on the caller's goroutine. They must not mutate their own
// subject: such calls are detected through the context and rejected with
// errors.ErrReentrantNotification. Calling Value from inside a listener
// deadlocks; listeners get the new value as argument.
type Subject[V any] struct {
	log      *slog.Logger
	mu       sync.Mutex
	value    V
	hasValue bool
	registry *Registry[V]
	policy   Policy
}

func NewSubject[V any](log *slog.Logger, opts ...Option) *Subject[V] {
	o := options{policy: FailFast}
	for _, opt := range opts {
		opt(&o)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Subject[V]{
		log:      log,
		registry: NewRegistry[V](),
		policy:   o.policy,
	}
}

func NewSubjectWithValue[V any](log *slog.Logger, value V, opts ...Option) *Subject[V] {
	s := NewSubject[V](log, opts...)
	s.value = value
	s.hasValue = true
	return s
}

// Value returns the current value and false if none was ever set.
func (s *Subject[V]) Value() (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.hasValue
}

// SetValue stores value and notifies every registered listener with it.
// Equal values are not filtered out.
func (s *Subject[V]) SetValue(ctx context.Context, value V) error {
	return s.StoreAndNotify(ctx, value, nil)
}

// StoreAndNotify stores value, runs onStore (if any) and notifies the listeners,
// all inside one critical section. onStore runs even if a listener fails later.
func (s *Subject[V]) StoreAndNotify(ctx context.Context, value V, onStore func(V)) error {
	if s.isNotifying(ctx) {
		return errors.ErrReentrantNotification
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = value
	s.hasValue = true
	if onStore != nil {
		onStore(value)
	}
	return s.notify(ctx, value)
}

// NotifyAll broadcasts the current value again.
func (s *Subject[V]) NotifyAll(ctx context.Context) error {
	if s.isNotifying(ctx) {
		return errors.ErrReentrantNotification
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notify(ctx, s.value)
}

func (s *Subject[V]) Add(l contract.Listener[V]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry.Add(l)
}

func (s *Subject[V]) AddAll(ls ...contract.Listener[V]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry.AddAll(ls...)
}

func (s *Subject[V]) Remove(l contract.Listener[V]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry.Remove(l)
}

func (s *Subject[V]) RemoveAll(ls ...contract.Listener[V]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry.RemoveAll(ls...)
}

// Subscribe registers l and returns the value current at registration time.
// No notification can happen between the read and the registration.
func (s *Subject[V]) Subscribe(l contract.Listener[V]) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry.Add(l)
	return s.value, s.hasValue
}

func (s *Subject[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Len()
}

// Listeners returns a copy of the registered listeners in registration order.
func (s *Subject[V]) Listeners() []contract.Listener[V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Snapshot()
}

func (s *Subject[V]) Policy() Policy {
	return s.policy
}

func (s *Subject[V]) isNotifying(ctx context.Context) bool {
	return ctx.Value(notifyingKey[V]{subject: s}) != nil
}

// notify must be called with s.mu held.
func (s *Subject[V]) notify(ctx context.Context, value V) error {
	ctx = context.WithValue(ctx, notifyingKey[V]{subject: s}, struct{}{})
	s.log.Debug("Notifying listeners",
		"listeners", s.registry.Len(),
		"policy", s.policy.String())

	var failed error
	var result *multierror.Error
	s.registry.Each(func(l contract.Listener[V]) bool {
		err := l.Receive(ctx, value)
		if err == nil {
			return true
		}
		s.log.Warn("Listener failed",
			"listener", contract.GetListenerName(l),
			"error", err)
		if s.policy == FailFast {
			failed = err
			return false
		}
		result = multierror.Append(result, err)
		return true
	})

	if failed != nil {
		return fmt.Errorf("%w: %w", errors.ErrListenerFailed, failed)
	}
	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrListenerFailed, err)
	}
	return nil
}
