package stroke

// Contour is an ordered chain of points built up during stroke plotting.
// Outer contours are built by Append; inner contours are built by Prepend
// (points logically prepended at the front) so that, once the stroke
// segment's outer and inner contours are concatenated, the combined
// polyline has consistent winding for open strokes.
//
// Internally Prepend pushes onto a separate reversed buffer so both
// operations are O(1) amortized; Points() materializes the chain in
// traversal order.
type Contour struct {
	front []Point // built by Prepend, stored reversed (last prepend first)
	back  []Point // built by Append, in order
}

// Append adds p to the end of the contour.
func (c *Contour) Append(p Point) {
	c.back = append(c.back, p)
}

// Prepend adds p to the start of the contour.
func (c *Contour) Prepend(p Point) {
	c.front = append(c.front, p)
}

// Len returns the number of points currently in the contour.
func (c *Contour) Len() int { return len(c.front) + len(c.back) }

// Points returns the contour's points in traversal order (front reversed,
// then back).
func (c *Contour) Points() []Point {
	out := make([]Point, 0, c.Len())
	for i := len(c.front) - 1; i >= 0; i-- {
		out = append(out, c.front[i])
	}
	out = append(out, c.back...)
	return out
}

// Splice appends other's points after this contour's points, draining
// other.
func (c *Contour) Splice(other *Contour) {
	c.back = append(c.Points(), other.Points()...)
	c.front = nil
	*other = Contour{}
}

// Reset empties the contour.
func (c *Contour) Reset() {
	c.front = nil
	c.back = nil
}
