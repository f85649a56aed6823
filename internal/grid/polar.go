package grid

import "math"

// Geometry maps screen points onto the annular grid. Ring r covers distances
// [Step/2 + (r-1)*Step, Step/2 + r*Step) from the centre; ring 0 is the inner
// half-thick disc.
type Geometry struct {
	CX, CY float64
	Step   float64
}

// NewGeometry lays the grid out on a square screen of the given pixel size.
func NewGeometry(size int) Geometry {
	return Geometry{
		CX:   float64(size / 2),
		CY:   float64(size / 2),
		Step: float64(size / 2 / Rings),
	}
}

// Annulus is the screen footprint of one cell. Angles are in degrees, zero on
// the +x axis and increasing clockwise on screen.
type Annulus struct {
	Inner, Outer float64
	Start, End   float64
}

// Mid returns the radius halfway through the annulus.
func (a Annulus) Mid() float64 {
	return (a.Inner + a.Outer) * 0.5
}

// RingRadius is the outer boundary radius of ring r.
func (g Geometry) RingRadius(r int) float64 {
	return g.Step/2 + float64(r)*g.Step
}

// Radius is the outer boundary of the whole grid.
func (g Geometry) Radius() float64 {
	return g.RingRadius(Rings - 1)
}

// PointToCell returns the cell under (x, y). It is total: points beyond the
// outer ring clamp to the last ring and angles wrap.
func (g Geometry) PointToCell(x, y float64) Cell {
	dx, dy := x-g.CX, y-g.CY
	d := math.Hypot(dx, dy)

	ring := Rings - 1
	switch {
	case math.IsNaN(d) || math.IsInf(d, 0):
	case d <= g.Step/2:
		ring = 0
	case g.Step > 0:
		if f := math.Floor((d-g.Step/2)/g.Step) + 1; f < Rings {
			ring = int(f)
		}
	}

	// Measured from the vertical axis, then rotated so zero lies on +x.
	deg := math.Atan2(g.CX-x, y-g.CY)*180/math.Pi + 90
	if math.IsNaN(deg) {
		deg = 0
	}
	if deg < 0 {
		deg += 360
	}
	return Cell{Ring: ring, Slice: int(deg/SliceDegrees) % Slices}
}

// CellToAnnulus returns the screen footprint of c.
func (g Geometry) CellToAnnulus(c Cell) Annulus {
	c = c.Wrapped()
	a := Annulus{
		Outer: g.RingRadius(c.Ring),
		Start: float64(c.Slice) * SliceDegrees,
		End:   float64(c.Slice+1) * SliceDegrees,
	}
	if c.Ring > 0 {
		a.Inner = g.RingRadius(c.Ring - 1)
	}
	return a
}

// PolarToScreen converts a radius and angle in degrees to screen coordinates.
func (g Geometry) PolarToScreen(radius, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return g.CX + radius*math.Cos(rad), g.CY + radius*math.Sin(rad)
}
