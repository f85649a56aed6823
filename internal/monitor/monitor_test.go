package monitor

import (
	"net"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ringgrid/internal/grid"
	"ringgrid/internal/transmit"
)

var from = &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 40000}

func datagram(ring, slice int) tea.Msg {
	return DatagramMsg{Cell: grid.Cell{Ring: ring, Slice: slice}, From: from, At: time.Unix(0, 0)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestDatagramsToggleCells(t *testing.T) {
	m := send(t, New(":12345"),
		datagram(5, 10),
		datagram(5, 11),
		datagram(7, 0),
		datagram(5, 10),
	)
	if m.Lit(grid.Cell{Ring: 5, Slice: 10}) {
		t.Error("cell sent twice is still lit")
	}
	if !m.Lit(grid.Cell{Ring: 5, Slice: 11}) || !m.Lit(grid.Cell{Ring: 7, Slice: 0}) {
		t.Error("cells sent once are not lit")
	}
	if m.received != 4 || m.total != 2 || m.perRing[5] != 1 {
		t.Errorf("received %d total %d ring5 %d", m.received, m.total, m.perRing[5])
	}
}

func TestMalformedDatagram(t *testing.T) {
	m := send(t, New(":12345"), DatagramMsg{From: from, Err: transmit.ErrCellRange})
	if m.malformed != 1 || m.total != 0 {
		t.Errorf("malformed %d total %d", m.malformed, m.total)
	}
	if !strings.Contains(m.View(), "1 malformed") {
		t.Errorf("view does not count malformed datagrams:\n%s", m.View())
	}
}

func TestLogKeepsLastLines(t *testing.T) {
	m := New(":12345")
	for i := 0; i < LogLines+5; i++ {
		m = send(t, m, datagram(1, i))
	}
	if len(m.log) != LogLines {
		t.Fatalf("log lines = %d, want %d", len(m.log), LogLines)
	}
	if want := "1 16"; !strings.HasSuffix(m.log[len(m.log)-1], want) {
		t.Errorf("last log line %q, want suffix %q", m.log[len(m.log)-1], want)
	}
}

func TestKeys(t *testing.T) {
	m := send(t, New(":12345"), datagram(3, 3))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if m.total != 0 || m.Lit(grid.Cell{Ring: 3, Slice: 3}) {
		t.Error("reset left cells lit")
	}
	if m.received != 1 {
		t.Error("reset cleared the counters")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	if m.showLog {
		t.Error("l did not hide the log")
	}
	if strings.Contains(m.View(), "no datagrams yet") {
		t.Error("hidden log still rendered")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestViewShowsRings(t *testing.T) {
	m := send(t, New("127.0.0.1:9"), datagram(59, 0), datagram(0, 0))
	v := m.View()
	for _, want := range []string{"listening on 127.0.0.1:9", "59 ", " 0 ", "2 cells lit"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
