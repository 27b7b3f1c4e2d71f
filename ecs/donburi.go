package ecs

import (
	"github.com/phanxgames/fibre"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventSource adapts a Donburi event type in one world to fibre.EventSource.
// It holds a single Donburi subscription and fans each event out to its own
// handlers.
type EventSource[T any] struct {
	world   donburi.World
	et      *events.EventType[T]
	local   fibre.Event[T]
	handler events.Subscriber[T]
	closed  bool
}

// NewEventSource subscribes to et in world.
func NewEventSource[T any](world donburi.World, et *events.EventType[T]) *EventSource[T] {
	s := &EventSource[T]{world: world, et: et}
	s.handler = func(w donburi.World, e T) {
		s.local.Emit(e)
	}
	et.Subscribe(world, s.handler)
	return s
}

// AddHandler implements fibre.EventSource.
func (s *EventSource[T]) AddHandler(fn func(T)) fibre.HandlerID {
	return s.local.AddHandler(fn)
}

// RemoveHandler implements fibre.EventSource.
func (s *EventSource[T]) RemoveHandler(id fibre.HandlerID) {
	s.local.RemoveHandler(id)
}

// HandlerCount returns the number of fibre-side handlers.
func (s *EventSource[T]) HandlerCount() int {
	return s.local.HandlerCount()
}

// Close drops the Donburi subscription. Handlers stop receiving events.
func (s *EventSource[T]) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.et.Unsubscribe(s.world, s.handler)
}
