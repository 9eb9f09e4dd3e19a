package physics

import "github.com/jakecoffman/cp"

// EventKind identifies collision lifecycle transitions.
type EventKind string

const (
	EventBegin EventKind = "begin"
	EventEnd   EventKind = "end"
)

// CollisionEvent is emitted when a pairing starts or stops.
type CollisionEvent struct {
	Kind         EventKind
	A, B         BodyID
	Result       Result
	Intersection cp.Vector
}

// Involves reports whether id is one of the pair.
func (e CollisionEvent) Involves(id BodyID) bool {
	return id != 0 && (e.A == id || e.B == id)
}

// Listener receives collision events synchronously from inside World.Update.
type Listener interface {
	OnCollision(evt CollisionEvent)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(evt CollisionEvent)

func (f ListenerFunc) OnCollision(evt CollisionEvent) { f(evt) }

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []CollisionEvent
}

// Push adds an event.
func (q *EventQueue) Push(evt CollisionEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []CollisionEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
