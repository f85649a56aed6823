// Package snapshot exports the ring grid outside the app: a PNG picture of the
// current frame and a plain-text list of lit cells for the clipboard.
package snapshot

import (
	"fmt"
	"image"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"ringgrid/internal/game"
	"ringgrid/internal/grid"
)

const captionSize = 14.0

// Render draws g as it appears on screen into a size×size image. An empty
// caption is skipped.
func Render(g *grid.Grid, size int, caption string) (image.Image, error) {
	dc, err := draw(g, size, caption)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG renders g and saves it to path.
func WritePNG(path string, g *grid.Grid, size int, caption string) error {
	dc, err := draw(g, size, caption)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func draw(g *grid.Grid, size int, caption string) (*gg.Context, error) {
	geo := grid.NewGeometry(size)
	dc := gg.NewContext(size, size)
	setColour(dc, game.Palette.Background, 255)
	dc.Clear()

	g.Each(func(c grid.Cell, st grid.State) {
		col, ok := game.StateColour(st)
		if !ok {
			return
		}
		a := geo.CellToAnnulus(c)
		dc.NewSubPath()
		dc.DrawArc(geo.CX, geo.CY, a.Outer, gg.Radians(a.Start), gg.Radians(a.End))
		dc.DrawArc(geo.CX, geo.CY, a.Inner, gg.Radians(a.End), gg.Radians(a.Start))
		dc.ClosePath()
		setColour(dc, col, 255)
		dc.Fill()
	})

	dc.SetLineWidth(1)
	outer := geo.Radius()
	for s := 0; s < grid.Slices; s++ {
		x, y := geo.PolarToScreen(outer, float64(s)*grid.SliceDegrees)
		dc.DrawLine(geo.CX, geo.CY, x, y)
	}
	setColour(dc, game.Palette.Spoke, game.Palette.SpokeAlpha)
	dc.Stroke()

	for r := 0; r < grid.Rings; r++ {
		dc.NewSubPath()
		dc.DrawCircle(geo.CX, geo.CY, geo.RingRadius(r))
	}
	setColour(dc, game.Palette.Ring, 255)
	dc.Stroke()

	if caption != "" {
		ttfFont, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return nil, fmt.Errorf("parse font: %w", err)
		}
		dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
			Size:    captionSize,
			DPI:     72,
			Hinting: font.HintingFull,
		}))
		setColour(dc, game.Palette.Caption, 255)
		dc.DrawString(caption, 8, float64(size)-8)
	}
	return dc, nil
}

func setColour(dc *gg.Context, c game.RGB, alpha uint8) {
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(alpha))
}

// FormatCells lists cells one per line as "<ring> <slice>", the same form the
// device echo uses.
func FormatCells(cells []grid.Cell) string {
	var b strings.Builder
	for _, c := range cells {
		fmt.Fprintf(&b, "%d %d\n", c.Ring, c.Slice)
	}
	return b.String()
}

// CopyLit puts the lit cells of g on the system clipboard.
func CopyLit(g *grid.Grid) error {
	if err := clipboard.WriteAll(FormatCells(g.LitCells())); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
