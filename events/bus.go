// Package events provides a typed pub/sub bus so host subsystems can react
// to LED status transitions and output faults without polling the
// controller.
package events

import (
	"github.com/kelindar/event"
)

// Bus wraps a kelindar/event dispatcher for event broadcasting.
type Bus struct {
	dispatcher *event.Dispatcher
}

// New creates a new event bus.
func New() *Bus {
	return &Bus{
		dispatcher: event.NewDispatcher(),
	}
}

// Publish publishes an event to all subscribers.
// Usage: bus.Publish(StatusChangedEvent{...})
func (b *Bus) Publish(ev Event) {
	// kelindar/event's Publish is generic, so dispatch by concrete type.
	switch e := ev.(type) {
	case StatusChangedEvent:
		event.Publish(b.dispatcher, e)
	case UserCommandEvent:
		event.Publish(b.dispatcher, e)
	case OutputErrorEvent:
		event.Publish(b.dispatcher, e)
	}
}

// Subscribe subscribes to events with a handler function. The handler's
// parameter type determines which events it receives. Returns an
// unsubscribe function.
// Usage: unsub := bus.Subscribe(func(e StatusChangedEvent) { ... })
func (b *Bus) Subscribe(handler any) func() {
	switch h := handler.(type) {
	case func(StatusChangedEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(UserCommandEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(OutputErrorEvent):
		return event.Subscribe(b.dispatcher, h)
	default:
		// No-op for unrecognized handler types
		return func() {}
	}
}
