// Package monitor is a terminal view of the datagrams a ring device receives.
// It keeps the raw datagram log and, next to it, a grid rebuilt by treating
// every datagram as a toggle of its cell.
package monitor

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ringgrid/internal/game"
	"ringgrid/internal/grid"
	"ringgrid/internal/transmit"
)

// LogLines is how many raw datagrams stay in the log panel.
const LogLines = 12

const barWidth = 45

// DatagramMsg delivers one received datagram to the model.
type DatagramMsg transmit.Datagram

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(game.Palette.Ring.Hex()))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(game.Palette.Filled.Hex()))
	dimStyle   = lipgloss.NewStyle().Faint(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(game.Palette.Clearing.Hex()))
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type Model struct {
	listen string

	lit     [grid.Rings][grid.Slices]bool
	perRing [grid.Rings]int
	total   int

	received  int
	malformed int
	last      time.Time
	log       []string
	showLog   bool

	width, height int
}

func New(listen string) Model {
	return Model{listen: listen, showLog: true}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "l":
			m.showLog = !m.showLog
		case "c":
			m.reset()
		}
		return m, nil

	case DatagramMsg:
		m.apply(transmit.Datagram(msg))
		return m, nil
	}
	return m, nil
}

func (m *Model) apply(d transmit.Datagram) {
	m.received++
	m.last = d.At
	from := "?"
	if d.From != nil {
		from = d.From.String()
	}
	if d.Err == nil && !d.Cell.Valid() {
		d.Err = transmit.ErrCellRange
	}
	if d.Err != nil {
		m.malformed++
		m.push(errStyle.Render(fmt.Sprintf("%s  %v", from, d.Err)))
		return
	}

	c := d.Cell
	on := !m.lit[c.Ring][c.Slice]
	m.lit[c.Ring][c.Slice] = on
	if on {
		m.perRing[c.Ring]++
		m.total++
	} else {
		m.perRing[c.Ring]--
		m.total--
	}
	m.push(fmt.Sprintf("%s  %d %d", from, c.Ring, c.Slice))
}

func (m *Model) push(line string) {
	m.log = append(m.log, line)
	if len(m.log) > LogLines {
		m.log = m.log[len(m.log)-LogLines:]
	}
}

// reset clears the toggle view; counters and the log are kept.
func (m *Model) reset() {
	m.lit = [grid.Rings][grid.Slices]bool{}
	m.perRing = [grid.Rings]int{}
	m.total = 0
}

// Lit reports whether c is on in the toggle view.
func (m Model) Lit(c grid.Cell) bool {
	if !c.Valid() {
		return false
	}
	return m.lit[c.Ring][c.Slice]
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ringmon  listening on " + m.listen))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%d datagrams, %d malformed, %d cells lit (toggle view)\n",
		m.received, m.malformed, m.total)
	if !m.last.IsZero() {
		b.WriteString(dimStyle.Render("last " + m.last.Format("15:04:05.000")))
		b.WriteString("\n")
	}

	panels := []string{panelStyle.Render(m.histogram())}
	if m.showLog {
		panels = append(panels, panelStyle.Render(m.rawLog()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels...))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("l: toggle log  c: reset view  q: quit"))
	return b.String()
}

// histogram draws one bar per ring, outermost first, scaled so a full ring
// spans barWidth columns.
func (m Model) histogram() string {
	lines := make([]string, 0, grid.Rings)
	for r := grid.Rings - 1; r >= 0; r-- {
		n := m.perRing[r]
		w := (n*barWidth + grid.Slices - 1) / grid.Slices
		bar := barStyle.Render(strings.Repeat("█", w)) + strings.Repeat(" ", barWidth-w)
		lines = append(lines, fmt.Sprintf("%2d %s %3d", r, bar, n))
	}
	return strings.Join(lines, "\n")
}

func (m Model) rawLog() string {
	if len(m.log) == 0 {
		return dimStyle.Render("no datagrams yet")
	}
	return strings.Join(m.log, "\n")
}
