package desktop

import (
	"math"
	"testing"

	"ringgrid/internal/grid"
)

func TestAppendCellsSkipsClear(t *testing.T) {
	geo := grid.NewGeometry(960)
	g := grid.New()
	if buf := appendCells(nil, geo, g); len(buf) != 0 {
		t.Fatalf("clear grid produced %d floats", len(buf))
	}

	g.Set(grid.Cell{Ring: 3, Slice: 7}, true)
	g.Set(grid.Cell{Ring: 9, Slice: 0}, true)
	per := arcSegments * 6 * vertexFloats
	if buf := appendCells(nil, geo, g); len(buf) != 2*per {
		t.Errorf("two cells produced %d floats, want %d", len(buf), 2*per)
	}
}

func TestSectorStaysInsideAnnulus(t *testing.T) {
	geo := grid.NewGeometry(960)
	a := geo.CellToAnnulus(grid.Cell{Ring: 20, Slice: 33})
	buf := appendSector(nil, geo, a, rgba{1, 0, 0, 1})
	for i := 0; i < len(buf); i += vertexFloats {
		x, y := float64(buf[i]), float64(buf[i+1])
		d := math.Hypot(x-geo.CX, y-geo.CY)
		if d < a.Inner-0.01 || d > a.Outer+0.01 {
			t.Fatalf("vertex %d at radius %.2f outside [%.1f, %.1f]", i/vertexFloats, d, a.Inner, a.Outer)
		}
		// boundary vertices may land on either neighbouring ring
		if c := geo.PointToCell(x, y); c.Ring < 19 || c.Ring > 21 {
			t.Errorf("vertex %d maps to %v", i/vertexFloats, c)
		}
		if buf[i+2] != 1 || buf[i+5] != 1 {
			t.Errorf("vertex %d colour %v", i/vertexFloats, buf[i+2:i+6])
		}
	}
}

func TestGuideLines(t *testing.T) {
	geo := grid.NewGeometry(960)
	buf := guideLines(geo)
	want := (grid.Rings*grid.Slices + grid.Slices) * 2 * vertexFloats
	if len(buf) != want {
		t.Fatalf("guide floats = %d, want %d", len(buf), want)
	}
	// the last line is a spoke ending on the outer ring
	n := len(buf) - vertexFloats
	x, y := float64(buf[n]), float64(buf[n+1])
	if d := math.Hypot(x-geo.CX, y-geo.CY); math.Abs(d-geo.Radius()) > 0.01 {
		t.Errorf("spoke ends at radius %.2f, want %.2f", d, geo.Radius())
	}
}
