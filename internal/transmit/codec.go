package transmit

import (
	"errors"
	"fmt"

	"ringgrid/internal/grid"
)

// DatagramSize is the length of one cell update on the wire: {ring, slice}.
// The payload carries no on/off flag.
const DatagramSize = 2

var (
	ErrShortDatagram = errors.New("datagram must be 2 bytes")
	ErrCellRange     = errors.New("cell out of range")
)

// Encode packs c into a datagram payload.
func Encode(c grid.Cell) [DatagramSize]byte {
	return [DatagramSize]byte{byte(c.Ring), byte(c.Slice)}
}

// Decode unpacks a datagram payload.
func Decode(b []byte) (grid.Cell, error) {
	if len(b) != DatagramSize {
		return grid.Cell{}, fmt.Errorf("%w: got %d", ErrShortDatagram, len(b))
	}
	c := grid.Cell{Ring: int(b[0]), Slice: int(b[1])}
	if !c.Valid() {
		return grid.Cell{}, fmt.Errorf("%w: %v", ErrCellRange, c)
	}
	return c, nil
}
