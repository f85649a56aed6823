// Package transmit pushes committed grid changes to the remote display as
// fire-and-forget UDP datagrams, one per changed cell.
package transmit

import (
	"log"

	"ringgrid/internal/grid"
)

// Stats counts datagrams over the transmitter's lifetime.
type Stats struct {
	Flushes int
	Sent    int
	Failed  int
}

// Transmitter drains pending cells from a grid and sends each one once.
type Transmitter struct {
	grid   *grid.Grid
	sender Sender
	log    *log.Logger
	echo   bool
	stats  Stats
}

type Option func(*Transmitter)

// WithLogger reports send failures (and echoed datagrams) to l.
func WithLogger(l *log.Logger) Option {
	return func(t *Transmitter) { t.log = l }
}

// WithEcho logs "<ring> <slice>" for every datagram before it is sent.
func WithEcho(on bool) Option {
	return func(t *Transmitter) { t.echo = on }
}

func New(g *grid.Grid, s Sender, opts ...Option) *Transmitter {
	t := &Transmitter{grid: g, sender: s}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Flush commits every pending cell and sends one datagram per committed cell
// in ring-major order. Delivery is not checked and failures are not retried;
// the committed cells are returned regardless.
func (t *Transmitter) Flush() []grid.Cell {
	cells := t.grid.Flush()
	t.stats.Flushes++
	failed := 0
	var firstErr error
	for _, c := range cells {
		if t.echo && t.log != nil {
			t.log.Printf("%d %d", c.Ring, c.Slice)
		}
		payload := Encode(c)
		if err := t.sender.Send(payload[:]); err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		t.stats.Sent++
	}
	t.stats.Failed += failed
	if failed > 0 && t.log != nil {
		t.log.Printf("flush: %d of %d datagrams not sent: %v", failed, len(cells), firstErr)
	}
	return cells
}

func (t *Transmitter) Stats() Stats {
	return t.stats
}
