package game

import "ringgrid/internal/grid"

// StrokeMode is what a pointer drag does to the cells it crosses.
type StrokeMode int

const (
	StrokeNone StrokeMode = iota
	StrokeFill
	StrokeClear
)

// Paint turns pointer strokes into grid fill/clear requests. Nothing is sent
// to the device until Flush.
type Paint struct {
	s    *Session
	geo  grid.Geometry
	mode StrokeMode
}

func NewPaint(s *Session, geo grid.Geometry) *Paint {
	return &Paint{s: s, geo: geo}
}

func (p *Paint) Mode() StrokeMode { return p.mode }

// Press starts a stroke: the left button fills, the right button clears. The
// pressed cell always takes the button's action; the stroke mode is only
// taken when no stroke is active.
func (p *Paint) Press(b Button, x, y float64) {
	var mode StrokeMode
	switch b {
	case ButtonLeft:
		mode = StrokeFill
	case ButtonRight:
		mode = StrokeClear
	default:
		return
	}
	if p.mode == StrokeNone {
		p.mode = mode
	}
	p.s.Grid.Set(p.geo.PointToCell(x, y), mode == StrokeFill)
}

// Drag applies the active stroke to the cell under the pointer.
func (p *Paint) Drag(x, y float64) {
	if p.mode == StrokeNone {
		return
	}
	p.s.Grid.Set(p.geo.PointToCell(x, y), p.mode == StrokeFill)
}

// Release ends the stroke.
func (p *Paint) Release() {
	p.mode = StrokeNone
}

// ClearAll requests every cell to be cleared.
func (p *Paint) ClearAll() {
	p.s.Grid.ClearAll()
	p.s.Bus.Emit(Event{Type: EventCleared})
}

// Flush transmits everything painted since the last flush.
func (p *Paint) Flush() int {
	return p.s.Commit()
}
