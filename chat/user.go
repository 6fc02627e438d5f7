package chat

import (
	"chat-observer/contract"
	"chat-observer/errors"
	"context"
	"sync"
)

// User is a listener bound to exactly one room on behalf of an identity.
// Leaving the room only stops the notifications; the user keeps its last value.
type User[M any] struct {
	identity contract.Identity
	room     *Room[M]
	reaction contract.Reaction[M]

	mu       sync.RWMutex
	lastSeen M
	received bool
}

// NewUser builds a user and makes it join room.
func NewUser[M any](room *Room[M], identity contract.Identity, reaction contract.Reaction[M]) (*User[M], error) {
	switch {
	case room == nil:
		return nil, errors.ErrNilRoom
	case identity == nil:
		return nil, errors.ErrNilIdentity
	case reaction == nil:
		return nil, errors.ErrNilReaction
	}
	u := &User[M]{identity: identity, room: room, reaction: reaction}

	initial, _ := room.subscribe(u)
	u.mu.Lock()
	// A message delivered right after the join is newer than initial.
	if !u.received {
		u.lastSeen = initial
	}
	u.mu.Unlock()
	room.log.Debug("User joined", "user", identity.DisplayName())
	return u, nil
}

func (u *User[M]) Identity() contract.Identity {
	return u.identity
}

func (u *User[M]) Room() *Room[M] {
	return u.room
}

func (u *User[M]) LastSeenValue() M {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.lastSeen
}

// Receive caches message then runs the reaction on the sender's goroutine.
func (u *User[M]) Receive(ctx context.Context, message M) error {
	u.mu.Lock()
	u.lastSeen = message
	u.received = true
	u.mu.Unlock()
	return u.reaction.Execute(ctx, message)
}

// Send posts message to the user's own room.
func (u *User[M]) Send(ctx context.Context, message M) error {
	return u.room.SetValue(ctx, message)
}

// Leave unregisters the user from its room.
func (u *User[M]) Leave() {
	u.room.Remove(u)
	u.room.log.Debug("User left", "user", u.identity.DisplayName())
}
