package desktop

import (
	"ringgrid/internal/game"
	"ringgrid/internal/grid"
)

// Each vertex is x, y, r, g, b, a.
const vertexFloats = 6

// arcSegments is how many straight pieces approximate one slice's arc.
const arcSegments = 2

type rgba [4]float32

func colour(c game.RGB, alpha uint8) rgba {
	r, g, b := c.Floats()
	return rgba{r, g, b, float32(alpha) / 255}
}

func appendVertex(buf []float32, x, y float64, c rgba) []float32 {
	return append(buf, float32(x), float32(y), c[0], c[1], c[2], c[3])
}

// appendSector tessellates an annular sector into triangles.
func appendSector(buf []float32, geo grid.Geometry, a grid.Annulus, c rgba) []float32 {
	step := (a.End - a.Start) / arcSegments
	for i := 0; i < arcSegments; i++ {
		d0 := a.Start + float64(i)*step
		d1 := d0 + step
		ix0, iy0 := geo.PolarToScreen(a.Inner, d0)
		ox0, oy0 := geo.PolarToScreen(a.Outer, d0)
		ix1, iy1 := geo.PolarToScreen(a.Inner, d1)
		ox1, oy1 := geo.PolarToScreen(a.Outer, d1)

		buf = appendVertex(buf, ix0, iy0, c)
		buf = appendVertex(buf, ox0, oy0, c)
		buf = appendVertex(buf, ox1, oy1, c)

		buf = appendVertex(buf, ix0, iy0, c)
		buf = appendVertex(buf, ox1, oy1, c)
		buf = appendVertex(buf, ix1, iy1, c)
	}
	return buf
}

// appendCells adds a sector for every cell that is not clear.
func appendCells(buf []float32, geo grid.Geometry, g *grid.Grid) []float32 {
	g.Each(func(c grid.Cell, st grid.State) {
		col, ok := game.StateColour(st)
		if !ok {
			return
		}
		buf = appendSector(buf, geo, geo.CellToAnnulus(c), colour(col, 255))
	})
	return buf
}

// guideLines returns line-list vertices for the ring boundary circles and the
// faint slice dividers.
func guideLines(geo grid.Geometry) []float32 {
	ring := colour(game.Palette.Ring, 255)
	spoke := colour(game.Palette.Spoke, game.Palette.SpokeAlpha)

	buf := make([]float32, 0, (grid.Rings*grid.Slices+grid.Slices)*2*vertexFloats)
	for r := 0; r < grid.Rings; r++ {
		radius := geo.RingRadius(r)
		for s := 0; s < grid.Slices; s++ {
			x0, y0 := geo.PolarToScreen(radius, float64(s)*grid.SliceDegrees)
			x1, y1 := geo.PolarToScreen(radius, float64(s+1)*grid.SliceDegrees)
			buf = appendVertex(buf, x0, y0, ring)
			buf = appendVertex(buf, x1, y1, ring)
		}
	}
	outer := geo.Radius()
	for s := 0; s < grid.Slices; s++ {
		x, y := geo.PolarToScreen(outer, float64(s)*grid.SliceDegrees)
		buf = appendVertex(buf, geo.CX, geo.CY, spoke)
		buf = appendVertex(buf, x, y, spoke)
	}
	return buf
}
