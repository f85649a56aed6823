package game

import (
	"fmt"

	"golang.org/x/exp/rand"

	"ringgrid/internal/grid"
)

// SnakeState is the lifecycle of a snake game.
type SnakeState int

const (
	Running SnakeState = iota
	Paused
	GameOver
)

func (s SnakeState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	}
	return fmt.Sprintf("SnakeState(%d)", int(s))
}

// Direction is the snake heading on the polar grid.
type Direction int

const (
	Inner            Direction = iota // ring decreasing
	Clockwise                         // slice increasing
	Outer                             // ring increasing
	CounterClockwise                  // slice decreasing
)

var (
	ringDelta  = [4]int{-1, 0, 1, 0}
	sliceDelta = [4]int{0, 1, 0, -1}
)

var directionNames = [4]string{"inner", "clockwise", "outer", "counter-clockwise"}

func (d Direction) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Turn rotates one step: left follows Inner→Clockwise→Outer→CounterClockwise,
// right goes the other way.
func (d Direction) Turn(left bool) Direction {
	if left {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

// Snake is the circular snake game. The body is head first; every body cell and
// the target are lit on the session grid.
type Snake struct {
	s       *Session
	rng     *rand.Rand
	minRing int

	Body      []grid.Cell
	Target    grid.Cell
	hasTarget bool
	Dir       Direction
	State     SnakeState
}

// NewSnake creates a game on s. Call Initialize to place the snake.
func NewSnake(s *Session, seed uint64) *Snake {
	return &Snake{
		s:       s,
		rng:     NewRand(seed),
		minRing: MinSnakeRing,
		State:   GameOver,
	}
}

// SetMinRing changes the innermost playable ring.
func (sn *Snake) SetMinRing(r int) {
	sn.minRing = clamp(r, 0, grid.Rings-1)
}

func (sn *Snake) MinRing() int { return sn.minRing }

// Head returns the head cell.
func (sn *Snake) Head() grid.Cell { return sn.Body[0] }

// Initialize places a fresh snake and target, then flushes and renders.
func (sn *Snake) Initialize() {
	sn.Body = sn.Body[:0]
	sn.hasTarget = false

	head, ok := sn.randomFreeCell()
	if !ok {
		sn.gameOver()
		return
	}
	for i := 0; i < SnakeStartLength; i++ {
		c := grid.Cell{Ring: head.Ring, Slice: grid.WrapSlice(head.Slice + i)}
		sn.s.Grid.Set(c, true)
		sn.Body = append(sn.Body, c)
	}
	if !sn.spawnTarget() {
		sn.gameOver()
		return
	}
	sn.Dir = CounterClockwise
	sn.State = Running
	sn.s.Bus.Emit(Event{Type: EventStarted, Cell: head, Count: len(sn.Body)})
	sn.s.Commit()
}

// Restart clears the whole grid and starts a new game.
func (sn *Snake) Restart() {
	sn.s.Grid.ClearAll()
	sn.Initialize()
}

// Steer turns the snake for the next move. Ignored unless running.
func (sn *Snake) Steer(left bool) {
	if sn.State != Running {
		return
	}
	sn.Dir = sn.Dir.Turn(left)
}

// TogglePause switches between running and paused. Ignored after game over.
func (sn *Snake) TogglePause() {
	switch sn.State {
	case Running:
		sn.State = Paused
		sn.s.Bus.Emit(Event{Type: EventPaused, Count: len(sn.Body)})
	case Paused:
		sn.State = Running
		sn.s.Bus.Emit(Event{Type: EventResumed, Count: len(sn.Body)})
	}
}

// Next returns the cell the head moves into on the next step.
func (sn *Snake) Next() grid.Cell {
	h := sn.Head()
	r := h.Ring
	if d := ringDelta[sn.Dir]; d != 0 {
		r = wrapRing(r+d, sn.minRing)
	}
	return grid.Cell{Ring: r, Slice: grid.WrapSlice(h.Slice + sliceDelta[sn.Dir])}
}

// Move advances the snake one cell. It returns false once the game is over.
// A paused game does not move and reports true.
func (sn *Snake) Move() bool {
	switch sn.State {
	case GameOver:
		return false
	case Paused:
		return true
	}

	next := sn.Next()
	if sn.occupies(next) {
		sn.gameOver()
		return false
	}

	g := sn.s.Grid
	if sn.hasTarget && next == sn.Target {
		sn.Body = append([]grid.Cell{next}, sn.Body...)
		g.Set(next, true)
		sn.hasTarget = false
		if !sn.spawnTarget() {
			sn.gameOver()
			return false
		}
		sn.s.Bus.Emit(Event{Type: EventTargetEaten, Cell: next, Count: len(sn.Body)})
		sn.s.Commit()
		return true
	}

	tail := sn.Body[len(sn.Body)-1]
	g.Set(tail, false)
	copy(sn.Body[1:], sn.Body[:len(sn.Body)-1])
	sn.Body[0] = next
	g.Set(next, true)
	sn.s.Commit()
	return true
}

func (sn *Snake) gameOver() {
	sn.State = GameOver
	sn.s.Grid.FillAll()
	sn.s.Bus.Emit(Event{Type: EventGameOver, Count: len(sn.Body)})
	sn.s.Commit()
}

func (sn *Snake) occupies(c grid.Cell) bool {
	for _, b := range sn.Body {
		if b == c {
			return true
		}
	}
	return false
}

func (sn *Snake) free(c grid.Cell) bool {
	if sn.hasTarget && c == sn.Target {
		return false
	}
	return !sn.occupies(c)
}

func (sn *Snake) spawnTarget() bool {
	c, ok := sn.randomFreeCell()
	if !ok {
		return false
	}
	sn.Target = c
	sn.hasTarget = true
	sn.s.Grid.Set(c, true)
	return true
}

// randomFreeCell samples the playable band, giving up on sampling after
// SpawnAttempts and scanning from a random start instead. It fails only when
// every playable cell is taken.
func (sn *Snake) randomFreeCell() (grid.Cell, bool) {
	span := grid.Rings - sn.minRing
	for i := 0; i < SpawnAttempts; i++ {
		c := grid.Cell{Ring: sn.minRing + sn.rng.Intn(span), Slice: sn.rng.Intn(grid.Slices)}
		if sn.free(c) {
			return c, true
		}
	}
	total := span * grid.Slices
	start := sn.rng.Intn(total)
	for i := 0; i < total; i++ {
		k := (start + i) % total
		c := grid.Cell{Ring: sn.minRing + k/grid.Slices, Slice: k % grid.Slices}
		if sn.free(c) {
			return c, true
		}
	}
	return grid.Cell{}, false
}
