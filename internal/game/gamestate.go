package game

import (
	"io"
	"log"

	"github.com/google/uuid"

	"ringgrid/internal/grid"
)

// Flusher commits pending cells and pushes them to the device.
type Flusher interface {
	Flush() []grid.Cell
}

// RenderSink presents the full grid; called once per draw tick.
type RenderSink interface {
	Render(g *grid.Grid)
}

// Session is the state of one front-end run: the grid, the device link, the
// render sink and the event bus. Nothing here is global.
type Session struct {
	ID   uuid.UUID
	Grid *grid.Grid
	Link Flusher
	Sink RenderSink
	Bus  *EventBus
	Log  *log.Logger
}

// NewSession wires a session around g. link and sink may be nil: a nil link
// commits without sending, a nil sink skips drawing.
func NewSession(g *grid.Grid, link Flusher, sink RenderSink, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{
		ID:   uuid.New(),
		Grid: g,
		Link: link,
		Sink: sink,
		Bus:  NewEventBus(),
		Log:  logger,
	}
}

// Commit flushes pending cells to the device and redraws. It returns the number
// of cells committed.
func (s *Session) Commit() int {
	var cells []grid.Cell
	if s.Link != nil {
		cells = s.Link.Flush()
	} else {
		cells = s.Grid.Flush()
	}
	if len(cells) > 0 {
		s.Bus.Emit(Event{Type: EventFlushed, Count: len(cells)})
	}
	s.Render()
	return len(cells)
}

// Render hands the grid to the sink without flushing.
func (s *Session) Render() {
	if s.Sink != nil {
		s.Sink.Render(s.Grid)
	}
}
