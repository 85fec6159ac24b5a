package dom

import "slices"

// Event types the menu listens for.
const (
	EventClick      = "click"
	EventMouseEnter = "mouseenter"
	EventMouseLeave = "mouseleave"
	EventFocus      = "focus"
	EventBlur       = "blur"
)

// Event is passed to every listener along the propagation path.
type Event struct {
	Type          string
	Target        *Node
	CurrentTarget *Node

	defaultPrevented bool
	stopped          bool
}

// NewEvent creates an event of the given type.
func NewEvent(eventType string) *Event {
	return &Event{Type: eventType}
}

// PreventDefault suppresses the default action (navigation for anchors).
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether any listener called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation keeps the event from reaching ancestors of the current
// target. Remaining listeners on the current target still run.
func (e *Event) StopPropagation() { e.stopped = true }

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool { return e.stopped }

// Listener handles an event.
type Listener func(*Event)

// ListenerID identifies a registration for Off.
type ListenerID int

type listenerEntry struct {
	id ListenerID
	fn Listener
}

// On registers fn for eventType. Listeners run in registration order.
func (n *Node) On(eventType string, fn Listener) ListenerID {
	if n.listeners == nil {
		n.listeners = make(map[string][]listenerEntry)
	}
	n.nextID++
	n.listeners[eventType] = append(n.listeners[eventType], listenerEntry{id: n.nextID, fn: fn})
	return n.nextID
}

// Off removes a registration.
func (n *Node) Off(eventType string, id ListenerID) {
	if n.listeners == nil {
		return
	}
	n.listeners[eventType] = slices.DeleteFunc(n.listeners[eventType], func(e listenerEntry) bool {
		return e.id == id
	})
}

// ListenerCount reports how many listeners are registered for eventType.
func (n *Node) ListenerCount(eventType string) int {
	return len(n.listeners[eventType])
}

// Dispatch delivers evt to target and then to each ancestor until a listener
// stops propagation. It returns false when the default action was prevented.
func Dispatch(target *Node, evt *Event) bool {
	evt.Target = target
	for cur := target; cur != nil; cur = cur.Parent {
		entries := slices.Clone(cur.listeners[evt.Type])
		evt.CurrentTarget = cur
		for _, entry := range entries {
			entry.fn(evt)
		}
		if evt.stopped {
			break
		}
	}
	evt.CurrentTarget = nil
	return !evt.defaultPrevented
}
