package grid

// Grid is the ring × slice state matrix. The zero value is a clear, settled grid.
// It is owned by a single goroutine and performs no locking.
type Grid struct {
	cells [Rings][Slices]State
}

func New() *Grid {
	return &Grid{}
}

// At returns the state of c. Slices wrap; an invalid ring reads as Clear.
func (g *Grid) At(c Cell) State {
	c = c.Wrapped()
	if !c.Valid() {
		return Clear
	}
	return g.cells[c.Ring][c.Slice]
}

// Lit reports whether c is committed on.
func (g *Grid) Lit(c Cell) bool {
	return g.At(c).Committed()
}

// Set requests c to be filled or cleared. Repeated requests between flushes
// coalesce into at most one pending transmission. Rings outside the grid are ignored.
func (g *Grid) Set(c Cell, fill bool) {
	c = c.Wrapped()
	if !c.Valid() {
		return
	}
	st := &g.cells[c.Ring][c.Slice]
	*st = st.Next(fill)
}

// FillAll requests every cell to be lit.
func (g *Grid) FillAll() {
	g.setAll(true)
}

// ClearAll requests every cell to be dark.
func (g *Grid) ClearAll() {
	g.setAll(false)
}

func (g *Grid) setAll(fill bool) {
	for r := range g.cells {
		for s := range g.cells[r] {
			g.cells[r][s] = g.cells[r][s].Next(fill)
		}
	}
}

// Flush commits every pending cell and returns the committed addresses in
// ring-major, slice-minor order.
func (g *Grid) Flush() []Cell {
	var out []Cell
	for r := range g.cells {
		for s := range g.cells[r] {
			st := g.cells[r][s]
			if !st.Pending() {
				continue
			}
			g.cells[r][s] = st.Settled()
			out = append(out, Cell{Ring: r, Slice: s})
		}
	}
	return out
}

// PendingCount returns the number of cells owed a transmission.
func (g *Grid) PendingCount() int {
	n := 0
	g.Each(func(_ Cell, st State) {
		if st.Pending() {
			n++
		}
	})
	return n
}

// LitCells returns every committed-on cell in ring-major order.
func (g *Grid) LitCells() []Cell {
	var out []Cell
	g.Each(func(c Cell, st State) {
		if st.Committed() {
			out = append(out, c)
		}
	})
	return out
}

// Each calls fn for every cell in ring-major order.
func (g *Grid) Each(fn func(Cell, State)) {
	for r := range g.cells {
		for s := range g.cells[r] {
			fn(Cell{Ring: r, Slice: s}, g.cells[r][s])
		}
	}
}
