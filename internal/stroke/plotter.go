package stroke

import "math"

// pointCollector adapts the spline flattener's LineTo/CurveTo interface to
// a plain point slice, appending flattened points (never the first point,
// which the caller already holds).
type pointCollector struct{ pts []Point }

func (c *pointCollector) LineTo(p Point)         { c.pts = append(c.pts, p) }
func (c *pointCollector) CurveTo(_, _, p Point)   { c.pts = append(c.pts, p) }

// subpathPoints is one flattened input subpath: its polyline and whether
// the original subpath ended with ClosePath.
type subpathPoints struct {
	pts    []Point
	closed bool
}

// flattenSubpaths splits a path node stream into subpaths and flattens
// every curve into line segments at the given device tolerance.
func flattenSubpaths(elements []PathElement, tolerance float64) []subpathPoints {
	var subpaths []subpathPoints
	var cur []Point
	var closed bool

	flush := func() {
		if len(cur) > 0 {
			subpaths = append(subpaths, subpathPoints{pts: cur, closed: closed})
		}
		cur = nil
		closed = false
	}

	appendPoint := func(p Point) {
		if len(cur) > 0 && cur[len(cur)-1].Equal(p) {
			return
		}
		cur = append(cur, p)
	}

	for _, el := range elements {
		switch e := el.(type) {
		case MoveTo:
			flush()
			cur = append(cur, e.Point)
		case LineTo:
			appendPoint(e.Point)
		case QuadTo:
			if len(cur) == 0 {
				continue
			}
			start := cur[len(cur)-1]
			// Degree-elevate the quadratic to an equivalent cubic for the
			// flattener: c1 = start + 2/3*(ctrl-start), c2 = end + 2/3*(ctrl-end).
			c1 := start.Add(e.Control.Sub(start).Scale(2.0 / 3.0))
			c2 := e.Point.Add(e.Control.Sub(e.Point).Scale(2.0 / 3.0))
			col := &pointCollector{}
			FlattenCubic(start, c1, c2, e.Point, tolerance, col)
			for _, p := range col.pts {
				appendPoint(p)
			}
		case CubicTo:
			if len(cur) == 0 {
				continue
			}
			start := cur[len(cur)-1]
			col := &pointCollector{}
			FlattenCubic(start, e.Control1, e.Control2, e.Point, tolerance, col)
			for _, p := range col.pts {
				appendPoint(p)
			}
		case Close:
			closed = true
			if len(cur) > 0 && !cur[0].Equal(cur[len(cur)-1]) {
				appendPoint(cur[0])
			}
			flush()
		}
	}
	flush()
	return subpaths
}

// Plot expands the stroked node stream into filled polygon contours, one
// per winding loop: closed subpaths yield two loops (outer ring, inner
// ring); open subpaths yield one loop (outer and inner joined through the
// end caps).
func Plot(elements []PathElement, style Stroke, tolerance float64, transform Transform) [][]Point {
	thickness := clampThickness(style.Width)
	if tolerance <= 0 {
		tolerance = 0.25
	}

	if transform == nil {
		transform = Identity
	}

	majorAxis := MajorAxis(thickness/2, 1, 0, 0, 1)
	if !transform.IsIdentity() {
		// Approximate major axis via unit distance mapping; exact linear
		// coefficients aren't exposed through the Transform interface, so
		// sample the transform's distance mapping on the unit axes.
		ax, ay := transform.UserToDeviceDistance(1, 0)
		bx, by := transform.UserToDeviceDistance(0, 1)
		majorAxis = MajorAxis(thickness/2, ax, bx, ay, by)
	}

	pen := NewPen(thickness, tolerance, majorAxis, transform)

	var out [][]Point

	if style.IsDashed() {
		dashed := plotDashed(elements, style, tolerance, transform, pen, thickness)
		out = append(out, dashed...)
		return out
	}

	for _, sp := range flattenSubpaths(elements, tolerance) {
		out = append(out, plotSubpath(sp.pts, sp.closed, style, thickness, pen, transform)...)
	}
	return out
}

// plotSubpath runs the join/cap state machine over one already-flattened
// polyline.
func plotSubpath(pts []Point, closed bool, style Stroke, thickness float64, pen *Pen, transform Transform) [][]Point {
	if len(pts) < 2 {
		if len(pts) == 1 && closed {
			return plotDot(pts[0], style, pen)
		}
		return nil
	}

	n := len(pts)
	faces := make([]Face, 0, n)
	loopPts := pts
	if closed {
		// A closed subpath's last point duplicates the first after the
		// auto-move; drop it so faces wrap exactly once around the ring.
		if loopPts[0].Equal(loopPts[len(loopPts)-1]) && len(loopPts) > 1 {
			loopPts = loopPts[:len(loopPts)-1]
		}
	}
	segCount := len(loopPts) - 1
	if closed {
		segCount = len(loopPts)
	}
	for i := 0; i < segCount; i++ {
		p0 := loopPts[i]
		p1 := loopPts[(i+1)%len(loopPts)]
		if p0.Equal(p1) {
			continue
		}
		faces = append(faces, NewFace(p0, p1, thickness, pen, transform))
	}
	if len(faces) == 0 {
		return nil
	}

	var outer, inner Contour
	var polygonClockwise bool
	haveClockwise := false

	joinCount := len(faces) - 1
	if closed {
		joinCount = len(faces)
	}
	for i := 0; i < joinCount; i++ {
		in := faces[i]
		out := faces[(i+1)%len(faces)]
		plotJoin(&outer, &inner, in, out, style.Join, style.MiterLimit, pen, &polygonClockwise, &haveClockwise)
	}

	if closed {
		return [][]Point{outer.Points(), inner.Points()}
	}

	first := faces[0]
	last := faces[len(faces)-1]

	var capped Contour
	for _, p := range first.CapP0Points(style.Cap) {
		capped.Append(p)
	}
	for _, p := range outer.Points() {
		capped.Append(p)
	}
	for _, p := range last.CapPoints(style.Cap) {
		capped.Append(p)
	}
	// inner.Points() is already in p1->p0 (backward) order: it was built
	// purely by Prepend, so reversing the front buffer undoes the
	// insertion order of the join loop (ascending vertex index).
	for _, p := range inner.Points() {
		capped.Append(p)
	}

	return [][]Point{capped.Points()}
}

// plotJoin emits the corner geometry around the shared point of in and
// out onto outer (the offset side rotated +90 from the segment direction)
// and inner (the opposite side), dispatching on the collinear/miter/bevel/
// round join mode of spec.md's join algorithm. The polygon-wide clockwise
// flag is latched from the first non-collinear join and used as the pen's
// traversal direction for round joins.
func plotJoin(outer, inner *Contour, in, out Face, mode LineJoin, miterLimit float64, pen *Pen, polygonClockwise *bool, haveClockwise *bool) {
	if in.P0.Equal(in.P1) || out.P0.Equal(out.P1) {
		return
	}

	inVec := Point{in.Slope.DX, in.Slope.DY}
	outVec := Point{out.Slope.DX, out.Slope.DY}
	cross := inVec.Cross(outVec)
	joinClockwise := cross < 0

	if !*haveClockwise {
		*polygonClockwise = joinClockwise
		*haveClockwise = true
	}

	outerC, innerC := outer, inner
	if joinClockwise != *polygonClockwise {
		// Reflex turn relative to the polygon's overall winding: swap which
		// contour receives the offset-side geometry so the combined
		// outer/inner rings don't self-intersect.
		outerC, innerC = inner, outer
	}

	p1 := in.P1
	collinear := math.Abs(cross) < epsilon && inVec.Normalize().Dot(outVec.Normalize()) >= 0
	if collinear {
		outerC.Append(in.P1CCW())
		innerC.Prepend(in.P1CW())
		return
	}

	switch mode {
	case LineJoinMiter:
		if MiterLimitOK(inVec, outVec, miterLimit) {
			if pt, ok := MiterIntersection(in, out, in.Offset, out.Offset); ok {
				outerC.Append(pt)
				break
			}
		}
		outerC.Append(in.P1CCW())
		outerC.Append(out.P0CCW())
	case LineJoinRound:
		outerC.Append(in.P1CCW())
		if pen != nil && !pen.Degenerate() {
			for _, v := range pen.VertexRange(in.Slope, out.Slope, joinClockwise) {
				outerC.Append(p1.Add(v.Point))
			}
		}
		outerC.Append(out.P0CCW())
	default: // LineJoinBevel
		outerC.Append(in.P1CCW())
		outerC.Append(out.P0CCW())
	}

	innerC.Prepend(in.P1CW())
	innerC.Prepend(p1)
	innerC.Prepend(out.P0CW())
}

// plotDot handles a zero-length subpath after close: visible only with a
// round cap (the full pen disc) or, under an active dash pattern, a square
// cap (a thickness-sized square). The square is axis-aligned; it is not
// rotated to any direction. Other cap modes emit nothing.
func plotDot(p Point, style Stroke, pen *Pen) [][]Point {
	switch style.Cap {
	case LineCapRound:
		if pen == nil || pen.Degenerate() {
			return nil
		}
		n := pen.Len()
		pts := make([]Point, n)
		for i := 0; i < n; i++ {
			pts[i] = p.Add(pen.Vertex(i).Point)
		}
		return [][]Point{pts}
	case LineCapSquare:
		if !style.IsDashed() {
			return nil
		}
		half := clampThickness(style.Width) / 2
		return [][]Point{{
			{p.X - half, p.Y - half},
			{p.X + half, p.Y - half},
			{p.X + half, p.Y + half},
			{p.X - half, p.Y + half},
		}}
	default:
		return nil
	}
}
