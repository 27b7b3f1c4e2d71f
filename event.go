package fibre

// HandlerID identifies a handler registered on an EventSource.
type HandlerID uint32

// EventSource is a push-style notification source that accepts handlers.
type EventSource[T any] interface {
	AddHandler(fn func(T)) HandlerID
	RemoveHandler(id HandlerID)
}

type eventHandler[T any] struct {
	id HandlerID
	fn func(T)
}

// Event is a minimal in-process EventSource. Handlers run synchronously in
// registration order on Emit.
//
// Event is not safe for concurrent use.
type Event[T any] struct {
	handlers []eventHandler[T]
	nextID   HandlerID
}

// AddHandler registers fn and returns an ID for RemoveHandler.
func (e *Event[T]) AddHandler(fn func(T)) HandlerID {
	e.nextID++
	id := e.nextID
	e.handlers = append(e.handlers, eventHandler[T]{id: id, fn: fn})
	return id
}

// RemoveHandler unregisters the handler with the given ID. Unknown IDs are
// ignored.
func (e *Event[T]) RemoveHandler(id HandlerID) {
	for i := range e.handlers {
		if e.handlers[i].id == id {
			copy(e.handlers[i:], e.handlers[i+1:])
			e.handlers[len(e.handlers)-1] = eventHandler[T]{}
			e.handlers = e.handlers[:len(e.handlers)-1]
			return
		}
	}
}

// HandlerCount returns the number of registered handlers.
func (e *Event[T]) HandlerCount() int {
	return len(e.handlers)
}

// Emit calls every registered handler with v.
func (e *Event[T]) Emit(v T) {
	for i := 0; i < len(e.handlers); i++ {
		e.handlers[i].fn(v)
	}
}

// Awaiter is a fibre that waits for a value from an EventSource. It yields
// WaitForNextFrame every tick until a matching value has arrived, then
// removes its handler and ends.
type Awaiter[T any] struct {
	src        EventSource[T]
	id         HandlerID
	registered bool
	value      T
	received   bool
}

// AwaitEvent registers a handler on src right away and returns a fibre that
// ends once a value satisfying pred has been emitted. A nil pred accepts the
// first value.
func AwaitEvent[T any](src EventSource[T], pred func(T) bool) *Awaiter[T] {
	a := &Awaiter[T]{src: src}
	a.id = src.AddHandler(func(v T) {
		if a.received {
			return
		}
		if pred != nil && !pred(v) {
			return
		}
		a.value = v
		a.received = true
	})
	a.registered = true
	return a
}

// Next implements Fibre.
func (a *Awaiter[T]) Next() (WaitCommand, bool) {
	if !a.received {
		return WaitForNextFrame, true
	}
	a.Stop()
	return WaitCommand{}, false
}

// Value returns the recorded value and whether one has arrived.
func (a *Awaiter[T]) Value() (T, bool) {
	return a.value, a.received
}

// Stop removes the handler from the source. It is safe to call more than once.
func (a *Awaiter[T]) Stop() {
	if a.registered {
		a.src.RemoveHandler(a.id)
		a.registered = false
	}
}
