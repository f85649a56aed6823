package game

import "time"

type InputKind int

const (
	PointerDown InputKind = iota
	PointerUp
	PointerMove
	KeyDown
	Quit
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Key identifies a pressed key by its lower-case rune; non-printing keys use
// the constants below.
type Key rune

const (
	KeyEscape Key = 0x1b
	KeySpace  Key = ' '
)

// InputEvent is a platform-neutral input message.
type InputEvent struct {
	Kind   InputKind
	Button Button
	X, Y   float64
	Key    Key
}

// Queue is a FIFO of input events between the platform layer and the game.
type Queue struct {
	events []InputEvent
}

func (q *Queue) Post(e InputEvent) {
	q.events = append(q.events, e)
}

func (q *Queue) Pop() (InputEvent, bool) {
	if len(q.events) == 0 {
		return InputEvent{}, false
	}
	e := q.events[0]
	q.events[0] = InputEvent{}
	q.events = q.events[1:]
	return e, true
}

func (q *Queue) Len() int { return len(q.events) }

// Frontend is a game or tool driven by the scheduler.
type Frontend interface {
	// Handle applies one input event; false ends the run.
	Handle(e InputEvent) bool
	// Tick runs the fixed-period work (a draw, or a move and a draw).
	Tick()
}

// Scheduler interleaves input dispatch with a fixed-period tick on one
// goroutine. Each Step handles at most one queued event and at most one tick.
type Scheduler struct {
	Queue  *Queue
	Period time.Duration
	Now    func() time.Time

	next time.Time
}

func NewScheduler(period time.Duration) *Scheduler {
	return &Scheduler{
		Queue:  &Queue{},
		Period: period,
		Now:    time.Now,
	}
}

// Step returns false once the front end should stop.
func (s *Scheduler) Step(f Frontend) bool {
	if e, ok := s.Queue.Pop(); ok {
		if e.Kind == Quit || !f.Handle(e) {
			return false
		}
	}
	now := s.Now()
	if s.next.IsZero() {
		s.next = now.Add(s.Period)
		return true
	}
	if !now.Before(s.next) {
		s.next = now.Add(s.Period)
		f.Tick()
	}
	return true
}
