package game

import (
	"fmt"

	"ringgrid/internal/grid"
)

type EventType int

const (
	EventStarted EventType = iota
	EventTargetEaten
	EventGameOver
	EventPaused
	EventResumed
	EventFlushed
	EventCleared
)

var eventNames = [...]string{"started", "target eaten", "game over", "paused", "resumed", "flushed", "cleared"}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// hasCell reports whether events of type t carry a cell.
func (t EventType) hasCell() bool {
	return t == EventStarted || t == EventTargetEaten
}

// Event is one session notification. Cell is the new head for EventStarted and
// EventTargetEaten and zero otherwise; Count is the snake length, or the number
// of datagrams for EventFlushed.
type Event struct {
	Type  EventType
	Cell  grid.Cell
	Count int
}

func (e Event) String() string {
	if e.Type.hasCell() {
		return fmt.Sprintf("%v at %v, length %d", e.Type, e.Cell, e.Count)
	}
	if e.Type == EventFlushed {
		return fmt.Sprintf("%v %d cells", e.Type, e.Count)
	}
	return fmt.Sprintf("%v, length %d", e.Type, e.Count)
}

type EventHandler func(Event)

// EventBus fans session events out to handlers in subscription order. It is
// used from the loop goroutine only.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers fn for each of the given types.
func (eb *EventBus) Subscribe(fn EventHandler, types ...EventType) {
	for _, t := range types {
		eb.handlers[t] = append(eb.handlers[t], fn)
	}
}

// Emit delivers e and reports how many handlers saw it.
func (eb *EventBus) Emit(e Event) int {
	hs := eb.handlers[e.Type]
	for _, fn := range hs {
		fn(e)
	}
	return len(hs)
}
