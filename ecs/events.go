package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// Event types produced and consumed by systems during a frame.
const (
	EventShotHitRock = "shot_hit_rock"
	EventShipHitRock = "ship_hit_rock"
)

// ContactEvent is emitted by the physics step for a sensor overlap.
type ContactEvent struct {
	A Entity
	B Entity
}

// EventQueue is a simple FIFO queue. Events pushed during a frame are
// visible to systems that run later in the same frame and are cleared
// when the frame ends.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
