package stroke

import "math"

// Face holds the computed offset geometry of one straight stroked segment
// from P0 to P1.
type Face struct {
	P0, P1    Point
	Slope     Slope
	Offset    Point // half-width offset, perpendicular to Slope
	Pen       *Pen
	Transform Transform
	Thickness float64
}

// NewFace computes the Face for segment p0->p1 of the given thickness,
// under transform, sharing pen for round joins/caps.
func NewFace(p0, p1 Point, thickness float64, pen *Pen, transform Transform) Face {
	slope := SlopeOf(p0, p1)
	half := thickness / 2

	var offset Point
	if transform == nil || transform.IsIdentity() {
		offset = Point{slope.DX, slope.DY}.Normalize().Perp().Scale(half)
	} else {
		ux, uy, err := transform.DeviceToUserDistance(slope.DX, slope.DY)
		if err != nil {
			offset = Point{slope.DX, slope.DY}.Normalize().Perp().Scale(half)
		} else {
			userOffset := Point{ux, uy}.Normalize().Perp().Scale(half)
			if transform.Determinant() < 0 {
				userOffset = userOffset.Neg()
			}
			dx, dy := transform.UserToDeviceDistance(userOffset.X, userOffset.Y)
			offset = Point{dx, dy}
		}
	}

	return Face{
		P0:        p0,
		P1:        p1,
		Slope:     slope,
		Offset:    offset,
		Pen:       pen,
		Transform: transform,
		Thickness: thickness,
	}
}

// P0CW, P0CCW, P1CW, P1CCW are the four outer corner points of the face.
func (f Face) P0CW() Point  { return f.P0.Sub(f.Offset) }
func (f Face) P0CCW() Point { return f.P0.Add(f.Offset) }
func (f Face) P1CW() Point  { return f.P1.Sub(f.Offset) }
func (f Face) P1CCW() Point { return f.P1.Add(f.Offset) }

// flip returns the face with p0/p1 (and their corners) swapped, used by
// the cap_p0 variant so the same cap routine serves both ends.
func (f Face) flip() Face {
	return Face{
		P0:        f.P1,
		P1:        f.P0,
		Slope:     Slope{-f.Slope.DX, -f.Slope.DY},
		Offset:    f.Offset.Neg(),
		Pen:       f.Pen,
		Transform: f.Transform,
		Thickness: f.Thickness,
	}
}

// MiterIntersection computes the intersection of the outer (or inner)
// offset lines of an inbound face "in" and an outbound face "out" that
// share point p1/p0. It solves for y first, then takes x from the line
// whose dy component has the larger magnitude, for numerical stability.
func MiterIntersection(in, out Face, inOffset, outOffset Point) (Point, bool) {
	// Line 1: through in.P1+inOffset with direction in.Slope.
	// Line 2: through out.P0+outOffset with direction out.Slope.
	p1 := in.P1.Add(inOffset)
	p2 := out.P0.Add(outOffset)
	d1 := Point{in.Slope.DX, in.Slope.DY}
	d2 := Point{out.Slope.DX, out.Slope.DY}

	denom := d1.Cross(d2)
	if math.Abs(denom) < epsilon {
		return Point{}, false
	}

	// Solve p1 + t*d1 = p2 + u*d2 for t to get y, then take x from the
	// line whose dy has the larger magnitude to reduce cancellation error.
	t := (p2.Sub(p1)).Cross(d2) / denom
	y := p1.Y + t*d1.Y
	var x float64
	if math.Abs(d1.Y) >= math.Abs(d2.Y) {
		x = p1.X + (y-p1.Y)*d1.X/d1.Y
	} else {
		x = p2.X + (y-p2.Y)*d2.X/d2.Y
	}
	return Point{x, y}, true
}

// MiterLimitOK reports whether the miter join between unit inbound and
// outbound direction vectors passes the miter-limit test:
// 2 <= miterLimit^2 * (1 + in.out).
func MiterLimitOK(inDir, outDir Point, miterLimit float64) bool {
	dot := inDir.Normalize().Dot(outDir.Normalize())
	return 2 <= miterLimit*miterLimit*(1+dot)
}

// CapPoints returns the polyline from p1_cw to p1_ccw implementing the
// given cap style at the end of the face (p1).
func (f Face) CapPoints(cap LineCap) []Point {
	cw, ccw := f.P1CW(), f.P1CCW()
	switch cap {
	case LineCapSquare:
		dir := Point{f.Slope.DX, f.Slope.DY}.Normalize().Scale(f.Thickness / 2)
		return []Point{cw.Add(dir), ccw.Add(dir)}
	case LineCapRound:
		if f.Pen == nil || f.Pen.Degenerate() {
			return []Point{cw, ccw}
		}
		tangent := SlopeOf(f.P0, f.P1)
		reverse := Slope{-tangent.DX, -tangent.DY}
		pts := []Point{cw}
		for _, v := range f.Pen.VertexRange(tangent, reverse, true) {
			pts = append(pts, f.P1.Add(v.Point))
		}
		pts = append(pts, ccw)
		return pts
	default: // LineCapButt
		return []Point{cw, ccw}
	}
}

// CapP0Points returns the cap polyline at p0 (the start of the face) by
// flipping the face and reusing CapPoints.
func (f Face) CapP0Points(cap LineCap) []Point {
	return f.flip().CapPoints(cap)
}
