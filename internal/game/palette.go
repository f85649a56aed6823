package game

import (
	"fmt"

	"ringgrid/internal/grid"
)

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Floats returns the channels scaled to 0..1 for GL.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

// Hex formats the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var Palette = struct {
	Background RGB
	Filled     RGB
	Filling    RGB
	Clearing   RGB
	Ring       RGB // ring boundary circles
	Spoke      RGB // slice dividers, drawn at SpokeAlpha
	SpokeAlpha uint8
	Caption    RGB
}{
	Background: RGB{R: 0, G: 0, B: 0},
	Filled:     RGB{R: 255, G: 0, B: 0},
	Filling:    RGB{R: 0, G: 255, B: 0},
	Clearing:   RGB{R: 0, G: 0, B: 255},
	Ring:       RGB{R: 255, G: 255, B: 0},
	Spoke:      RGB{R: 255, G: 255, B: 0},
	SpokeAlpha: 40,
	Caption:    RGB{R: 200, G: 200, B: 200},
}

// StateColour is the on-screen colour of a cell state. Clear cells are not
// drawn and report false.
func StateColour(st grid.State) (RGB, bool) {
	switch st {
	case grid.Filled:
		return Palette.Filled, true
	case grid.Filling:
		return Palette.Filling, true
	case grid.Clearing:
		return Palette.Clearing, true
	}
	return RGB{}, false
}
