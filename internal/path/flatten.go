// Package path provides internal path processing utilities: curve
// flattening, edge iteration and the fill plotter.
package path

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Tolerance is the default maximum deviation, in device pixels, allowed
// when flattening curves to line segments.
const Tolerance = 0.1

// PathElement represents an element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the path.
type Close struct{}

func (Close) isPathElement() {}

// Helper methods for Point
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Flatten converts a path with curves into a path with only straight lines.
func Flatten(elements []PathElement) []Point {
	var points []Point
	var current Point

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			current = e.Point
			points = append(points, current)

		case LineTo:
			current = e.Point
			points = append(points, current)

		case QuadTo:
			quad := flattenQuadratic(current, e.Control, e.Point, Tolerance)
			points = append(points, quad...)
			current = e.Point

		case CubicTo:
			cubic := flattenCubic(current, e.Control1, e.Control2, e.Point, Tolerance)
			points = append(points, cubic...)
			current = e.Point

		case Close:
			if len(points) > 0 {
				points = append(points, points[0])
			}
		}
	}

	return points
}

// flattenQuadratic flattens a quadratic Bezier curve into line segments by
// degree-elevating it to an equivalent cubic and running the cubic
// flattener, so both curve kinds share one error metric.
func flattenQuadratic(p0, p1, p2 Point, tolerance float64) []Point {
	c1 := p0.Add(p1.Sub(p0).Mul(2.0 / 3.0))
	c2 := p2.Add(p1.Sub(p2).Mul(2.0 / 3.0))
	return flattenCubic(p0, c1, c2, p2, tolerance)
}

// flattenCubic decomposes the cubic Bezier (a, b, c, d) into line segments
// such that the squared deviation from the curve is bounded by
// tolerance^2, using recursive de Casteljau midpoint subdivision and an
// exact chord-projection error estimate.
func flattenCubic(a, b, c, d Point, tolerance float64) []Point {
	var points []Point
	if a == b && c == d {
		return append(points, d)
	}
	flattenCubicRec(a, b, c, d, tolerance*tolerance, a, &points)
	return append(points, d)
}

// flattenCubicRec recurses until the chord-projection error estimate drops
// below tol2 (tolerance squared), then emits a point for the subcurve's
// start a (unless it is the original curve start, origStart).
func flattenCubicRec(a, b, c, d Point, tol2 float64, origStart Point, points *[]Point) {
	if cubicError(a, b, c, d) < tol2 {
		if a != origStart {
			*points = append(*points, a)
		}
		return
	}

	ab := a.Add(b).Mul(0.5)
	bc := b.Add(c).Mul(0.5)
	cd := c.Add(d).Mul(0.5)
	abbc := ab.Add(bc).Mul(0.5)
	bccd := bc.Add(cd).Mul(0.5)
	mid := abbc.Add(bccd).Mul(0.5)

	flattenCubicRec(a, ab, abbc, mid, tol2, origStart, points)
	flattenCubicRec(mid, bccd, cd, d, tol2, origStart, points)
}

// cubicError estimates the squared deviation of control points b, c from
// the chord a->d: project b-a and c-a onto d-a; if the projection exceeds
// the chord's squared length, measure from d instead.
func cubicError(a, b, c, d Point) float64 {
	chord := d.Sub(a)
	chordLen2 := chord.LengthSquared()

	if chordLen2 == 0 {
		lb := b.Sub(a).LengthSquared()
		lc := c.Sub(a).LengthSquared()
		if lb > lc {
			return lb
		}
		return lc
	}

	errB := perp2FromChord(b.Sub(a), chord, chordLen2, b, d)
	errC := perp2FromChord(c.Sub(a), chord, chordLen2, c, d)
	if errB > errC {
		return errB
	}
	return errC
}

// perp2FromChord returns the squared perpendicular distance of point from
// the chord a->d (chord = d-a, v = point-a), switching to measuring from d
// when the projection of v onto chord exceeds the chord's squared length.
func perp2FromChord(v, chord Point, chordLen2 float64, point, d Point) float64 {
	dot := v.Dot(chord)
	if dot > chordLen2 {
		return point.Sub(d).LengthSquared()
	}
	cross := v.Cross(chord)
	return (cross * cross) / chordLen2
}
