package grid

import "fmt"

// Fixed display topology.
const (
	Rings  = 60
	Slices = 180
	Cells  = Rings * Slices

	SliceDegrees = 360.0 / Slices
)

// Cell addresses one ring segment. Ring 0 is innermost; Slice is angular and
// wraps modulo Slices.
type Cell struct {
	Ring, Slice int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Ring, c.Slice)
}

// Valid reports whether both coordinates are inside the grid.
func (c Cell) Valid() bool {
	return c.Ring >= 0 && c.Ring < Rings && c.Slice >= 0 && c.Slice < Slices
}

// Wrapped returns c with its slice folded into [0, Slices).
func (c Cell) Wrapped() Cell {
	c.Slice = WrapSlice(c.Slice)
	return c
}

// WrapSlice folds any slice index into [0, Slices).
func WrapSlice(s int) int {
	s %= Slices
	if s < 0 {
		s += Slices
	}
	return s
}

// State is the lazy-commit lifecycle of one cell.
//
//	Clear     off, settled
//	Clearing  off, owed a transmission
//	Filled    on, settled
//	Filling   on, owed a transmission
type State uint8

const (
	Clear State = iota
	Clearing
	Filled
	Filling
)

var stateNames = [...]string{
	Clear:    "clear",
	Clearing: "clearing",
	Filled:   "filled",
	Filling:  "filling",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Committed reports whether the device is (or is about to be) showing the cell lit.
func (s State) Committed() bool { return s == Filled || s == Filling }

// Pending reports whether the cell owes a transmission.
func (s State) Pending() bool { return s == Clearing || s == Filling }

// transition[state] holds the results of {clear, fill} requests.
// A request that cancels an untransmitted change lands on the settled state.
var transition = [4][2]State{
	Clear:    {Clear, Filling},
	Clearing: {Clearing, Filled},
	Filled:   {Clearing, Filled},
	Filling:  {Clear, Filling},
}

// settle maps a pending state to the state it commits to on flush.
var settle = [4]State{
	Clear:    Clear,
	Clearing: Clear,
	Filled:   Filled,
	Filling:  Filled,
}

// Next returns the state after a fill (true) or clear (false) request.
func (s State) Next(fill bool) State {
	return transition[s&3][boolIndex(fill)]
}

// Settled returns the state after a flush.
func (s State) Settled() State {
	return settle[s&3]
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
