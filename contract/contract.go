//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
)

// Listener is anything a subject can notify.
// Handles are compared by identity, so implementations should be pointers.
type Listener[V any] interface {
	Receive(ctx context.Context, value V) error
}

// Reaction is the strategy an observer runs once it has cached a new value.
type Reaction[V any] interface {
	Execute(ctx context.Context, value V) error
}

// Identity is the opaque user a chat room user stands for.
// The core only stores and returns it.
type Identity interface {
	DisplayName() string
}

// GetListenerName uses reflection to retrieve the type name of a listener.
// It is only used to label log lines.
func GetListenerName[V any](l Listener[V]) string {
	if l == nil {
		return "NilListener"
	}
	t := reflect.TypeOf(l)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
