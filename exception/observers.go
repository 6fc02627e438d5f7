package exception

import (
	"chat-observer/contract"
	"chat-observer/observer"
	"context"
	"log/slog"
	"time"
)

// Event describes a failure reported by some part of the program.
type Event struct {
	Source string
	Err    error
	At     time.Time
}

// Observers broadcasts exception events to its listeners.
// One failing listener never prevents the others from being told.
type Observers struct {
	log     *slog.Logger
	subject *observer.Subject[Event]
}

func NewObservers(log *slog.Logger) *Observers {
	if log == nil {
		log = slog.Default()
	}
	log = log.With("broadcaster", "exception")
	return &Observers{
		log:     log,
		subject: observer.NewSubject[Event](log, observer.WithPolicy(observer.Isolate)),
	}
}

func (o *Observers) AddListener(l contract.Listener[Event]) {
	o.subject.Add(l)
}

func (o *Observers) RemoveListener(l contract.Listener[Event]) {
	o.subject.Remove(l)
}

func (o *Observers) Len() int {
	return o.subject.Len()
}

// Fire tells every listener that err happened in source.
// The returned error gathers the listeners that failed.
func (o *Observers) Fire(ctx context.Context, source string, err error) error {
	o.log.Debug("Firing exception event", "source", source, "error", err)
	return o.subject.SetValue(ctx, Event{Source: source, Err: err, At: time.Now().UTC()})
}

// LastEvent returns the most recent event fired, if any.
func (o *Observers) LastEvent() (Event, bool) {
	return o.subject.Value()
}
