package stroke

import "math"

// PenVertex is one vertex of a Pen: its device-space position and the
// tangent slopes to its clockwise and counter-clockwise neighbors.
type PenVertex struct {
	Point             Point
	SlopeCW, SlopeCCW Slope
}

// Pen is a polygonal approximation of a circle of the given thickness,
// transformed into device space under the current matrix. Round joins and
// caps fan out over a contiguous range of its vertices.
type Pen struct {
	vertices   []PenVertex
	degenerate bool
}

// NewPen builds a Pen for a stroke of the given thickness, flattened to
// within tolerance device units, under transform. majorAxis is the value
// returned by MajorAxis for a circle of radius thickness/2 under
// transform's linear part.
func NewPen(thickness, tolerance, majorAxis float64, transform Transform) *Pen {
	radius := thickness / 2
	if majorAxis <= 0 {
		majorAxis = radius
	}

	if tolerance >= 4*majorAxis {
		return &Pen{vertices: []PenVertex{{Point: Point{}}}, degenerate: true}
	}

	ratio := tolerance / majorAxis
	if ratio > 2 {
		ratio = 2
	}
	n := int(math.Ceil(2 * math.Pi / math.Acos(1-ratio)))
	if n%2 != 0 {
		n++
	}
	if n < 4 {
		n = 4
	}

	reflect := transform.Determinant() < 0

	points := make([]Point, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		if reflect {
			angle = -angle
		}
		ux, uy := radius*math.Cos(angle), radius*math.Sin(angle)
		dx, dy := transform.UserToDeviceDistance(ux, uy)
		points[i] = Point{dx, dy}
	}

	vertices := make([]PenVertex, n)
	for i := 0; i < n; i++ {
		next := points[(i+1)%n]
		prev := points[(i-1+n)%n]
		vertices[i] = PenVertex{
			Point:    points[i],
			SlopeCW:  SlopeOf(points[i], prev),
			SlopeCCW: SlopeOf(points[i], next),
		}
	}

	return &Pen{vertices: vertices}
}

// Len returns the number of vertices in the pen.
func (p *Pen) Len() int { return len(p.vertices) }

// Degenerate reports whether the pen collapsed to a single point (the
// tolerance was too coarse relative to the stroke's major axis).
func (p *Pen) Degenerate() bool { return p.degenerate }

// Vertex returns the i-th vertex, indices taken modulo Len.
func (p *Pen) Vertex(i int) PenVertex {
	n := len(p.vertices)
	i = ((i % n) + n) % n
	return p.vertices[i]
}

// VertexRange returns the pen vertices spanning a join from inbound slope
// sIn to outbound slope sOut, in traversal order. clockwise selects
// comparison against SlopeCW (forward index order) vs SlopeCCW (backward
// index order).
func (p *Pen) VertexRange(sIn, sOut Slope, clockwise bool) []PenVertex {
	n := len(p.vertices)
	if n <= 1 {
		return nil
	}

	if clockwise {
		start := p.firstIndexGE(sIn, true)
		end := p.firstIndexGT(start, sOut, true)
		return p.collect(start, end, 1)
	}
	start := p.firstIndexGE(sIn, false)
	end := p.firstIndexGT(start, sOut, false)
	return p.collect(start, end, -1)
}

// firstIndexGE returns the first vertex index (searching forward if
// clockwise, backward otherwise, starting at 0) whose comparison slope is
// >= s.
func (p *Pen) firstIndexGE(s Slope, clockwise bool) int {
	n := len(p.vertices)
	for k := 0; k < n; k++ {
		i := k
		if !clockwise {
			i = (n - k) % n
		}
		cmp := p.Vertex(i).SlopeCW
		if !clockwise {
			cmp = p.Vertex(i).SlopeCCW
		}
		if Compare(cmp, s) >= 0 {
			return i
		}
	}
	return 0
}

// firstIndexGT finds, starting from start and wrapping, the first vertex
// index whose comparison slope is strictly greater than s.
func (p *Pen) firstIndexGT(start int, s Slope, clockwise bool) int {
	n := len(p.vertices)
	for k := 0; k < n; k++ {
		var i int
		if clockwise {
			i = (start + k) % n
		} else {
			i = ((start-k)%n + n) % n
		}
		cmp := p.Vertex(i).SlopeCW
		if !clockwise {
			cmp = p.Vertex(i).SlopeCCW
		}
		if Compare(cmp, s) > 0 {
			return i
		}
	}
	return start
}

// collect gathers vertices from start to end (inclusive), stepping by dir
// (+1 or -1) modulo the pen length.
func (p *Pen) collect(start, end, dir int) []PenVertex {
	n := len(p.vertices)
	var out []PenVertex
	i := start
	for {
		out = append(out, p.Vertex(i))
		if i == end {
			break
		}
		i = ((i+dir)%n + n) % n
		if len(out) > n {
			break
		}
	}
	return out
}
