package game

import "ringgrid/internal/grid"

// PaintApp binds the paint tool to input events.
//
//	left/right drag   fill / clear
//	c                 clear all
//	u                 flush to the device
//	s                 PNG snapshot (Export)
//	y                 copy lit cells (Copy)
//	q, Esc            quit
type PaintApp struct {
	Paint *Paint

	// Optional exporters, called with the session grid.
	Export func(g *grid.Grid) error
	Copy   func(g *grid.Grid) error
}

func NewPaintApp(s *Session, geo grid.Geometry) *PaintApp {
	return &PaintApp{Paint: NewPaint(s, geo)}
}

func (a *PaintApp) Handle(e InputEvent) bool {
	p := a.Paint
	switch e.Kind {
	case PointerDown:
		p.Press(e.Button, e.X, e.Y)
	case PointerMove:
		p.Drag(e.X, e.Y)
	case PointerUp:
		p.Release()
	case KeyDown:
		switch e.Key {
		case 'c':
			p.ClearAll()
		case 'u':
			p.Flush()
		case 's':
			a.export("snapshot", a.Export)
		case 'y':
			a.export("copy", a.Copy)
		case 'q', KeyEscape:
			return false
		}
	}
	return true
}

func (a *PaintApp) export(what string, fn func(*grid.Grid) error) {
	if fn == nil {
		return
	}
	s := a.Paint.s
	if err := fn(s.Grid); err != nil {
		s.Log.Printf("%s: %v", what, err)
	}
}

// Tick redraws; painting only reaches the device on an explicit flush.
func (a *PaintApp) Tick() {
	a.Paint.s.Render()
}

// SnakeApp binds the snake game to input events.
//
//	a / s       turn left / right
//	p           pause
//	r, Space    restart after game over
//	q, Esc      quit
type SnakeApp struct {
	Snake *Snake
}

func NewSnakeApp(s *Session, seed uint64) *SnakeApp {
	return &SnakeApp{Snake: NewSnake(s, seed)}
}

func (a *SnakeApp) Handle(e InputEvent) bool {
	if e.Kind != KeyDown {
		return true
	}
	sn := a.Snake
	switch e.Key {
	case 'a':
		sn.Steer(true)
	case 's':
		sn.Steer(false)
	case 'p':
		sn.TogglePause()
	case 'r', KeySpace:
		if sn.State == GameOver {
			sn.Restart()
		}
	case 'q', KeyEscape:
		return false
	}
	return true
}

// Tick moves the snake while it runs and otherwise just redraws, so a paused
// or finished game stays on screen.
func (a *SnakeApp) Tick() {
	if a.Snake.State == Running {
		a.Snake.Move()
		return
	}
	a.Snake.s.Render()
}
