package chat

import (
	"chat-observer/contract"
	"chat-observer/errors"
	"chat-observer/observer"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

// Room is a subject that also keeps every value ever set, in order.
// Its listeners are the users that joined it.
//
// Reactions run while the room is locked. A reaction must not call Value,
// Size, ChatRoomUsers, Add or Remove on its own room: those calls block
// forever. Send, SetValue and NotifyAll made with the context the reaction
// received are rejected with errors.ErrReentrantNotification.
type Room[M any] struct {
	log     *slog.Logger
	name    string
	subject *observer.Subject[M]

	mu      sync.RWMutex // guards history
	history []M
}

func NewRoom[M any](log *slog.Logger, name string, opts ...observer.Option) (*Room[M], error) {
	return newRoom(log, name, func(log *slog.Logger) *observer.Subject[M] {
		return observer.NewSubject[M](log, opts...)
	})
}

// NewRoomWithValue creates a room whose current value is initial.
// The initial value is not part of the history.
func NewRoomWithValue[M any](log *slog.Logger, initial M, name string, opts ...observer.Option) (*Room[M], error) {
	return newRoom(log, name, func(log *slog.Logger) *observer.Subject[M] {
		return observer.NewSubjectWithValue(log, initial, opts...)
	})
}

func newRoom[M any](log *slog.Logger, name string, subject func(*slog.Logger) *observer.Subject[M]) (*Room[M], error) {
	if err := validate.Var(name, "required"); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrEmptyRoomName, err)
	}
	if log == nil {
		log = slog.Default()
	}
	log = log.With("room", name)
	return &Room[M]{
		log:     log,
		name:    name,
		subject: subject(log),
	}, nil
}

func (r *Room[M]) Name() string {
	return r.name
}

func (r *Room[M]) Value() (M, bool) {
	return r.subject.Value()
}

// SetValue appends message to the history then notifies every user.
// The history grows even when a user fails to handle the message.
func (r *Room[M]) SetValue(ctx context.Context, message M) error {
	err := r.subject.StoreAndNotify(ctx, message, r.record)
	if err != nil {
		r.log.Warn("Message not delivered to every user", "error", err)
	}
	return err
}

// NotifyAll sends the current value again to every user, without touching the history.
func (r *Room[M]) NotifyAll(ctx context.Context) error {
	return r.subject.NotifyAll(ctx)
}

// record runs inside the subject critical section, so history order is send order.
func (r *Room[M]) record(message M) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, message)
}

// MessageHistory returns a copy of every message sent, oldest first.
func (r *Room[M]) MessageHistory() []M {
	r.mu.RLock()
	defer r.mu.RUnlock()
	history := make([]M, len(r.history))
	copy(history, r.history)
	return history
}

// ChatRoomUsers returns the identity of every registered user in join order.
func (r *Room[M]) ChatRoomUsers() []contract.Identity {
	return lo.FilterMap(r.subject.Listeners(), func(l contract.Listener[M], _ int) (contract.Identity, bool) {
		u, ok := l.(*User[M])
		if !ok {
			return nil, false
		}
		return u.Identity(), true
	})
}

func (r *Room[M]) Size() int {
	return r.subject.Len()
}

// IsSecure reports whether the room restricts access. No room does.
func (r *Room[M]) IsSecure() bool {
	return false
}

// Add registers u again. Users bound to another room are ignored.
func (r *Room[M]) Add(u *User[M]) {
	r.AddAll(u)
}

func (r *Room[M]) AddAll(users ...*User[M]) {
	own := lo.Filter(users, func(u *User[M], _ int) bool {
		switch {
		case u == nil:
			r.log.Warn("Ignoring nil user")
			return false
		case u.room != r:
			r.log.Warn("Ignoring user bound to another room",
				"user", u.identity.DisplayName(),
				"other_room", u.room.name)
			return false
		}
		return true
	})
	r.subject.AddAll(toListeners(own)...)
}

func (r *Room[M]) Remove(u *User[M]) {
	r.subject.Remove(u)
}

func (r *Room[M]) RemoveAll(users ...*User[M]) {
	r.subject.RemoveAll(toListeners(users)...)
}

func (r *Room[M]) subscribe(u *User[M]) (M, bool) {
	return r.subject.Subscribe(u)
}

func toListeners[M any](users []*User[M]) []contract.Listener[M] {
	return lo.Map(users, func(u *User[M], _ int) contract.Listener[M] {
		return u
	})
}
