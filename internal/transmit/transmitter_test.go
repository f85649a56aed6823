package transmit

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"ringgrid/internal/grid"
)

func TestEncodeDecode(t *testing.T) {
	c := grid.Cell{Ring: 59, Slice: 179}
	b := Encode(c)
	if b != [2]byte{59, 179} {
		t.Fatalf("Encode(%v) = %v", c, b)
	}
	got, err := Decode(b[:])
	if err != nil || got != c {
		t.Fatalf("Decode = %v, %v", got, err)
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		in   []byte
		want error
	}{
		{nil, ErrShortDatagram},
		{[]byte{1}, ErrShortDatagram},
		{[]byte{1, 2, 3}, ErrShortDatagram},
		{[]byte{60, 0}, ErrCellRange},
		{[]byte{0, 180}, ErrCellRange},
	}
	for _, tt := range tests {
		if _, err := Decode(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("Decode(%v) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestFlushSendsOncePerCommittedCell(t *testing.T) {
	g := grid.New()
	rec := &Recorder{}
	tx := New(g, rec)

	a := grid.Cell{Ring: 2, Slice: 5}
	b := grid.Cell{Ring: 1, Slice: 170}
	for i := 0; i < 5; i++ {
		g.Set(a, true)
		g.Set(a, false)
		g.Set(a, true)
	}
	g.Set(b, true)

	cells := tx.Flush()
	if len(cells) != 2 || cells[0] != b || cells[1] != a {
		t.Fatalf("Flush() = %v, want [%v %v]", cells, b, a)
	}
	sent := rec.Cells()
	if len(sent) != 2 || sent[0] != b || sent[1] != a {
		t.Fatalf("sent %v", sent)
	}
	if tx.Flush(); rec.Len() != 2 {
		t.Fatalf("idle flush sent %d datagrams total, want 2", rec.Len())
	}
	if st := tx.Stats(); st.Flushes != 2 || st.Sent != 2 || st.Failed != 0 {
		t.Fatalf("Stats = %+v", st)
	}
}

func TestFlushToleratesSendFailure(t *testing.T) {
	g := grid.New()
	rec := &Recorder{Err: errors.New("network unreachable")}
	var buf bytes.Buffer
	tx := New(g, rec, WithLogger(log.New(&buf, "", 0)))

	c := grid.Cell{Ring: 7, Slice: 7}
	g.Set(c, true)
	if cells := tx.Flush(); len(cells) != 1 {
		t.Fatalf("Flush() = %v", cells)
	}
	if g.At(c) != grid.Filled {
		t.Fatalf("cell not committed after failed send: %v", g.At(c))
	}
	if st := tx.Stats(); st.Failed != 1 || st.Sent != 0 {
		t.Fatalf("Stats = %+v", st)
	}
	if !strings.Contains(buf.String(), "network unreachable") {
		t.Fatalf("failure not logged: %q", buf.String())
	}

	rec.Err = nil
	if tx.Flush(); rec.Len() != 0 {
		t.Fatal("failed datagram was retried")
	}
}

func TestEchoLogsEachDatagram(t *testing.T) {
	g := grid.New()
	var buf bytes.Buffer
	tx := New(g, &Recorder{}, WithLogger(log.New(&buf, "", 0)), WithEcho(true))
	g.Set(grid.Cell{Ring: 3, Slice: 4}, true)
	g.Set(grid.Cell{Ring: 10, Slice: 0}, true)
	tx.Flush()
	if got, want := buf.String(), "3 4\n10 0\n"; got != want {
		t.Fatalf("echo = %q, want %q", got, want)
	}
}

func TestEchoPrecedesSend(t *testing.T) {
	g := grid.New()
	var buf bytes.Buffer
	rec := &Recorder{Err: errors.New("no route")}
	tx := New(g, rec, WithLogger(log.New(&buf, "", 0)), WithEcho(true))
	g.Set(grid.Cell{Ring: 3, Slice: 4}, true)
	g.Set(grid.Cell{Ring: 10, Slice: 0}, true)
	tx.Flush()
	want := "3 4\n10 0\nflush: 2 of 2 datagrams not sent: no route\n"
	if got := buf.String(); got != want {
		t.Fatalf("log = %q, want %q", got, want)
	}
}

func TestUDPLoopback(t *testing.T) {
	recv, err := Listen("127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- recv.Run(ctx) }()

	snd, err := Dial(recv.LocalAddr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer snd.Close()

	g := grid.New()
	want := grid.Cell{Ring: 42, Slice: 123}
	g.Set(want, true)
	New(g, snd).Flush()

	select {
	case d := <-recv.Datagrams():
		if d.Err != nil || d.Cell != want {
			t.Fatalf("received %+v, want %v", d, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no datagram received")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
