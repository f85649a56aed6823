package transmit

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"ringgrid/internal/grid"
)

// Sender delivers one datagram to the device. Implementations must return
// without waiting for delivery.
type Sender interface {
	Send(payload []byte) error
}

// WriteTimeout bounds a single datagram write so a stalled socket never holds
// up the tick loop.
const WriteTimeout = 5 * time.Millisecond

// UDPSender writes datagrams to one fixed remote endpoint.
type UDPSender struct {
	conn *net.UDPConn
}

// Dial resolves addr (host:port) and opens a UDP socket towards it.
func Dial(addr string) (*UDPSender, error) {
	raddr, err := net.ResolveUDPAddr("udp4", addr)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", addr, err)
	}
	conn, err := net.DialUDP("udp4", nil, raddr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return &UDPSender{conn: conn}, nil
}

func (s *UDPSender) Send(payload []byte) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(WriteTimeout)); err != nil {
		return err
	}
	_, err := s.conn.Write(payload)
	return err
}

// RemoteAddr returns the resolved device endpoint.
func (s *UDPSender) RemoteAddr() net.Addr {
	return s.conn.RemoteAddr()
}

func (s *UDPSender) Close() error {
	return s.conn.Close()
}

// Recorder is an in-memory Sender. It keeps every payload it was given.
type Recorder struct {
	mu       sync.Mutex
	payloads [][]byte
	Err      error // returned from every Send when set
}

func (r *Recorder) Send(payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.payloads = append(r.payloads, append([]byte(nil), payload...))
	return nil
}

// Cells decodes everything recorded so far.
func (r *Recorder) Cells() []grid.Cell {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]grid.Cell, 0, len(r.payloads))
	for _, p := range r.payloads {
		if c, err := Decode(p); err == nil {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of recorded datagrams.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.payloads)
}

func (r *Recorder) Close() error { return nil }

// Reset forgets recorded datagrams.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.payloads = nil
	r.mu.Unlock()
}

// Datagram is one received cell update.
type Datagram struct {
	Cell grid.Cell
	From net.Addr
	At   time.Time
	Err  error // set for malformed payloads; Cell is zero then
}

// Receiver listens for cell datagrams, the way the device does.
type Receiver struct {
	conn *net.UDPConn
	c    chan Datagram
}

// Listen binds addr (":12345", "127.0.0.1:0", ...).
func Listen(addr string) (*Receiver, error) {
	laddr, err := net.ResolveUDPAddr("udp4", addr)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", addr, err)
	}
	conn, err := net.ListenUDP("udp4", laddr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	return &Receiver{conn: conn, c: make(chan Datagram, 256)}, nil
}

// LocalAddr returns the bound address, useful after binding port 0.
func (r *Receiver) LocalAddr() net.Addr {
	return r.conn.LocalAddr()
}

// Datagrams delivers received updates until Run returns.
func (r *Receiver) Datagrams() <-chan Datagram {
	return r.c
}

// Run reads datagrams until ctx is cancelled, then closes the socket and the
// Datagrams channel.
func (r *Receiver) Run(ctx context.Context) error {
	defer close(r.c)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		r.conn.Close()
	}()

	buf := make([]byte, 64)
	for {
		n, from, err := r.conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
		d := Datagram{From: from, At: time.Now()}
		d.Cell, d.Err = Decode(buf[:n])
		select {
		case r.c <- d:
		case <-ctx.Done():
			return nil
		}
	}
}
