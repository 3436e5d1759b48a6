package raster

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Edge is one polygon boundary segment in the tuple form used by the
// scanline edge query: Top/Bottom bound the device-space y range the edge
// is active over, XStart is x at y=Top, XInc is dx per unit y, and Dir is
// the edge's winding contribution (+1 descending in y, -1 ascending, as
// seen before the endpoints were sorted by y).
type Edge struct {
	Top, Bottom float64
	XStart      float64
	XInc        float64
	Dir         int
}

// NewEdge builds the tuple form of the segment p0->p1. Horizontal segments
// carry no winding information and are reported via the second return
// value.
func NewEdge(p0, p1 Point) (Edge, bool) {
	if p0.Y == p1.Y {
		return Edge{}, false
	}
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}
	dy := p1.Y - p0.Y
	return Edge{
		Top:    p0.Y,
		Bottom: p1.Y,
		XStart: p0.X,
		XInc:   (p1.X - p0.X) / dy,
		Dir:    dir,
	}, true
}

// XAt returns the edge's x coordinate at device y.
func (e Edge) XAt(y float64) float64 {
	return e.XStart + e.XInc*(y-e.Top)
}
