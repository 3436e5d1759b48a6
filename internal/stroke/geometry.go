// Package stroke expands a stroked path node stream into a filled polygon.
//
// The algorithm follows the classic pen-and-face construction: a Pen models
// the cross-section of the stroke (a polygonal approximation of a circle),
// a Face computes the offset geometry of one straight segment, and a
// Plotter drives a state machine over the node stream, using Face and Pen
// to emit joins and caps into a pair of outer/inner contours that are
// finally converted into polygon edges.
package stroke

import "math"

// epsilon is the float tolerance below which two slopes are treated as
// equal, preventing spurious non-parallelism from floating point noise.
const epsilon = 1e-9

// Point is a 2D point or vector in device space.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Neg returns -p.
func (p Point) Neg() Point { return Point{-p.X, -p.Y} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the 2D cross product (p.X*q.Y - p.Y*q.X).
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Length returns the Euclidean length of p.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// LengthSquared returns the squared length of p.
func (p Point) LengthSquared() float64 { return p.X*p.X + p.Y*p.Y }

// Normalize returns p scaled to unit length, or the zero vector if p is
// degenerate.
func (p Point) Normalize() Point {
	l := p.Length()
	if l < epsilon {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// Perp returns p rotated 90 degrees: (x, y) -> (-y, x). This turns +X
// toward +Y, which is clockwise on screen in device space (y-down).
func (p Point) Perp() Point { return Point{-p.Y, p.X} }

// Equal reports whether p and q are bit-exact equal, per the data model's
// Point equality rule.
func (p Point) Equal(q Point) bool { return p.X == q.X && p.Y == q.Y }

// Slope is a 2D difference vector (dx, dy) used for join direction and
// vertex-range comparisons.
type Slope struct {
	DX, DY float64
}

// SlopeOf returns the slope of the vector from a to b.
func SlopeOf(a, b Point) Slope { return Slope{b.X - a.X, b.Y - a.Y} }

// IsZero reports whether the slope is (numerically) the zero vector.
func (s Slope) IsZero() bool {
	return math.Abs(s.DX) < epsilon && math.Abs(s.DY) < epsilon
}

// snap returns s with components snapped to those of t when their
// componentwise difference is below epsilon, preventing spurious
// non-parallelism from floating point noise.
func (s Slope) snap(t Slope) Slope {
	dx, dy := s.DX, s.DY
	if math.Abs(dx-t.DX) < epsilon {
		dx = t.DX
	}
	if math.Abs(dy-t.DY) < epsilon {
		dy = t.DY
	}
	return Slope{dx, dy}
}

// Compare returns the sign of the cross product a.dy*b.dx - b.dy*a.dx,
// used to order slopes angularly. Zero vectors sort larger than any
// non-zero slope; antiparallel pairs are disambiguated by the sign of
// dx/dy so that Compare gives a strict weak order usable for binary
// search over a pen's vertex table.
func Compare(a, b Slope) int {
	a = a.snap(b)
	if a.IsZero() && b.IsZero() {
		return 0
	}
	if a.IsZero() {
		return 1
	}
	if b.IsZero() {
		return -1
	}

	cross := a.DY*b.DX - b.DY*a.DX
	if math.Abs(cross) < epsilon {
		// Collinear: either parallel (same sign) or antiparallel.
		dot := a.DX*b.DX + a.DY*b.DY
		if dot >= 0 {
			return 0
		}
		// Antiparallel: break the tie using dx, then dy.
		if a.DX != b.DX {
			if a.DX < b.DX {
				return -1
			}
			return 1
		}
		if a.DY < b.DY {
			return -1
		}
		if a.DY > b.DY {
			return 1
		}
		return 0
	}
	if cross > 0 {
		return 1
	}
	return -1
}

// Less reports whether slope a sorts strictly before slope b.
func Less(a, b Slope) bool { return Compare(a, b) < 0 }
