package raster

import (
	"math"
	"sort"
)

// i30Min and i30Max bound the signed 30-bit range that scanline x
// coordinates are clamped to, guarding against geometry overflow from
// malformed or extreme transforms.
const (
	i30Min = -(1 << 29)
	i30Max = (1 << 29) - 1
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Span is one filled horizontal run on a scanline, in half-open
// [Start, End) pixel coordinates.
type Span struct{ Start, End int }

// Polygon is an unordered collection of edges built from one or more
// point-ring contours, queried per scanline via the edge-query algorithm.
type Polygon struct {
	edges []Edge
}

// NewPolygon returns an empty polygon.
func NewPolygon() *Polygon { return &Polygon{} }

// AddContour appends the edges of one point ring, skipping horizontal
// segments and implicitly closing the ring back to its first point.
func (p *Polygon) AddContour(pts []Point) {
	if len(pts) < 2 {
		return
	}
	for i := 0; i < len(pts); i++ {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		if e, ok := NewEdge(a, b); ok {
			p.edges = append(p.edges, e)
		}
	}
}

// Empty reports whether the polygon has no edges.
func (p *Polygon) Empty() bool { return len(p.edges) == 0 }

// Bounds returns the integer scanline range [yMin, yMax) the polygon can
// possibly affect.
func (p *Polygon) Bounds() (yMin, yMax int) {
	if len(p.edges) == 0 {
		return 0, 0
	}
	lo := math.MaxFloat64
	hi := -math.MaxFloat64
	for _, e := range p.edges {
		lo = math.Min(lo, e.Top)
		hi = math.Max(hi, e.Bottom)
	}
	return int(math.Floor(lo)), int(math.Ceil(hi))
}

type crossing struct {
	x   float64
	dir int
}

// SpansAt returns the filled x-ranges for the sample row centered at
// yCenter, under the given fill rule: compute x = round(x_start +
// x_inc*(yCenter-top)) clamped to i30 for every edge with top < yCenter <=
// bottom, sort ascending by x, then pair up per fill rule.
func (p *Polygon) SpansAt(yCenter float64, rule FillRule) []Span {
	var xs []crossing
	for _, e := range p.edges {
		if e.Top < yCenter && yCenter <= e.Bottom {
			x := clampI30(math.Round(e.XAt(yCenter)))
			xs = append(xs, crossing{x: x, dir: e.Dir})
		}
	}
	if len(xs) == 0 {
		return nil
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i].x < xs[j].x })

	var spans []Span
	switch rule {
	case FillRuleEvenOdd:
		for i := 0; i+1 < len(xs); i += 2 {
			spans = append(spans, Span{Start: int(xs[i].x), End: int(xs[i+1].x)})
		}
	default: // FillRuleNonZero
		winding := 0
		var start float64
		for _, c := range xs {
			prev := winding
			winding += c.dir
			switch {
			case prev == 0 && winding != 0:
				start = c.x
			case prev != 0 && winding == 0:
				spans = append(spans, Span{Start: int(start), End: int(c.x)})
			}
		}
	}
	return spans
}

// Spans returns the filled spans for integer scanline y (sample center
// y+0.5).
func (p *Polygon) Spans(y int, rule FillRule) []Span {
	return p.SpansAt(float64(y)+0.5, rule)
}

func clampI30(x float64) float64 {
	if x < i30Min {
		return i30Min
	}
	if x > i30Max {
		return i30Max
	}
	return x
}
