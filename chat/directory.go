package chat

import (
	"chat-observer/observer"
	"log/slog"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// Directory creates rooms on first lookup and keeps them for its whole lifetime.
// At most one room exists per name.
type Directory[M any] struct {
	log   *slog.Logger
	opts  []observer.Option
	mu    sync.Mutex
	rooms map[string]*Room[M]
}

// NewDirectory returns an empty directory; opts are applied to every room it creates.
func NewDirectory[M any](log *slog.Logger, opts ...observer.Option) *Directory[M] {
	if log == nil {
		log = slog.Default()
	}
	return &Directory[M]{
		log:   log,
		opts:  opts,
		rooms: make(map[string]*Room[M]),
	}
}

// GetOrCreate returns the room called name, creating it with initial if needed.
// initial is ignored when the room already exists.
func (d *Directory[M]) GetOrCreate(name string, initial M) (*Room[M], error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if room, ok := d.rooms[name]; ok {
		return room, nil
	}
	room, err := NewRoomWithValue(d.log, initial, name, d.opts...)
	if err != nil {
		return nil, err
	}
	d.rooms[name] = room
	d.log.Info("Chat room created", "room", name, "rooms", len(d.rooms))
	return room, nil
}

// Lookup never creates a room.
func (d *Directory[M]) Lookup(name string) (*Room[M], bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	room, ok := d.rooms[name]
	return room, ok
}

// Names returns the room names in lexical order.
func (d *Directory[M]) Names() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	names := lo.Keys(d.rooms)
	slices.Sort(names)
	return names
}

func (d *Directory[M]) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.rooms)
}
