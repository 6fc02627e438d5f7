// Package exception keeps the catalog of user facing error messages and
// broadcasts failures to the parts of the program interested in them.
package exception

import (
	"slices"
	"sync"

	"github.com/samber/lo"
)

// Message is one entry of the catalog: a properties key, its resolved text,
// an optional id and the values substituted in the text.
type Message[T comparable] struct {
	PropertiesKey   string
	PropertiesValue string
	ID              string
	Additions       []T
}

func (m Message[T]) Equal(other Message[T]) bool {
	return m.PropertiesKey == other.PropertiesKey &&
		m.PropertiesValue == other.PropertiesValue &&
		m.ID == other.ID &&
		slices.Equal(m.Additions, other.Additions)
}

// Messages maps a key to a set of messages. Equal messages are stored once.
type Messages[T comparable] struct {
	mu       sync.RWMutex
	messages map[string][]Message[T]
}

func NewMessages[T comparable]() *Messages[T] {
	return &Messages[T]{messages: make(map[string][]Message[T])}
}

// Add stores value under key unless an equal message is already there.
func (c *Messages[T]) Add(key string, value Message[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.add(key, value)
}

// AddAll merges every set of other into the catalog.
func (c *Messages[T]) AddAll(other map[string][]Message[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, values := range other {
		if _, ok := c.messages[key]; !ok {
			c.messages[key] = nil
		}
		for _, value := range values {
			c.add(key, value)
		}
	}
}

func (c *Messages[T]) add(key string, value Message[T]) {
	existing := c.messages[key]
	if lo.ContainsBy(existing, value.Equal) {
		return
	}
	c.messages[key] = append(existing, value)
}

// Get returns a copy of the set stored under key and false when key is unknown.
func (c *Messages[T]) Get(key string) ([]Message[T], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	values, ok := c.messages[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(values), true
}

func (c *Messages[T]) ContainsKey(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.messages[key]
	return ok
}

// Keys returns the catalog keys in lexical order.
func (c *Messages[T]) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := lo.Keys(c.messages)
	slices.Sort(keys)
	return keys
}

func (c *Messages[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages)
}

func (c *Messages[T]) IsEmpty() bool {
	return c.Len() == 0
}

// Remove deletes key and returns what was stored under it.
func (c *Messages[T]) Remove(key string) ([]Message[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	values, ok := c.messages[key]
	delete(c.messages, key)
	return values, ok
}

func (c *Messages[T]) RemoveAll(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.messages, key)
	}
}
