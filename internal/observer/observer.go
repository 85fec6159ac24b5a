// Package observer provides a named-event listener registry with ordered
// synchronous delivery.
package observer

import "slices"

// ListenerID identifies a registration.
type ListenerID uint64

// Handler receives the payload of a fired event.
type Handler[T any] func(T)

type entry[T any] struct {
	id ListenerID
	fn Handler[T]
}

// Emitter keeps listeners per event name. The zero value is ready to use.
type Emitter[T any] struct {
	listeners map[string][]entry[T]
	next      ListenerID
}

// On registers fn for name and returns an id usable with Off.
func (e *Emitter[T]) On(name string, fn Handler[T]) ListenerID {
	if e.listeners == nil {
		e.listeners = make(map[string][]entry[T])
	}
	e.next++
	e.listeners[name] = append(e.listeners[name], entry[T]{id: e.next, fn: fn})
	return e.next
}

// Off removes a registration. Unknown ids are ignored.
func (e *Emitter[T]) Off(name string, id ListenerID) {
	if e.listeners == nil {
		return
	}
	e.listeners[name] = slices.DeleteFunc(e.listeners[name], func(en entry[T]) bool {
		return en.id == id
	})
}

// Fire calls every listener for name in registration order. Listeners added
// or removed during delivery take effect on the next Fire.
func (e *Emitter[T]) Fire(name string, payload T) {
	entries := slices.Clone(e.listeners[name])
	for _, en := range entries {
		en.fn(payload)
	}
}

// Count reports how many listeners are registered for name.
func (e *Emitter[T]) Count(name string) int {
	return len(e.listeners[name])
}
