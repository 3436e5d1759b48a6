package gg

import (
	gpath "github.com/gogpu/gg/internal/path"
	"github.com/gogpu/gg/internal/raster"
	"github.com/gogpu/gg/internal/stroke"
)

// aaScale is the supersampling factor used by the sparse coverage buffer
// when rasterizing with anti-aliasing enabled.
const aaScale = 4

// SoftwareRenderer is a CPU-based scanline rasterizer: it flattens paths to
// polygon contours, rasterizes them either directly (non-AA) or through the
// supersampled coverage buffer (AA), and composites the result onto a
// Pixmap with source-over blending.
type SoftwareRenderer struct {
	rasterizer    *raster.Rasterizer
	width, height int
}

// NewSoftwareRenderer creates a new software renderer for the given pixel
// dimensions.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	return &SoftwareRenderer{
		rasterizer: raster.NewRasterizer(width, height),
		width:      width,
		height:     height,
	}
}

// Resize reconfigures the renderer for new pixel dimensions.
func (r *SoftwareRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.rasterizer = raster.NewRasterizer(width, height)
}

// convertPath converts gg.Path elements to path.PathElement for flattening.
func convertPath(p *Path) []gpath.PathElement {
	var elements []gpath.PathElement
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			elements = append(elements, gpath.MoveTo{Point: gpath.Point{X: e.Point.X, Y: e.Point.Y}})
		case LineTo:
			elements = append(elements, gpath.LineTo{Point: gpath.Point{X: e.Point.X, Y: e.Point.Y}})
		case QuadTo:
			elements = append(elements, gpath.QuadTo{
				Control: gpath.Point{X: e.Control.X, Y: e.Control.Y},
				Point:   gpath.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case CubicTo:
			elements = append(elements, gpath.CubicTo{
				Control1: gpath.Point{X: e.Control1.X, Y: e.Control1.Y},
				Control2: gpath.Point{X: e.Control2.X, Y: e.Control2.Y},
				Point:    gpath.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case Close:
			elements = append(elements, gpath.Close{})
		}
	}
	return elements
}

// convertPathToStrokeElements converts gg.Path elements to stroke.PathElement.
func convertPathToStrokeElements(p *Path) []stroke.PathElement {
	var elements []stroke.PathElement
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			elements = append(elements, stroke.MoveTo{Point: stroke.Point{X: e.Point.X, Y: e.Point.Y}})
		case LineTo:
			elements = append(elements, stroke.LineTo{Point: stroke.Point{X: e.Point.X, Y: e.Point.Y}})
		case QuadTo:
			elements = append(elements, stroke.QuadTo{
				Control: stroke.Point{X: e.Control.X, Y: e.Control.Y},
				Point:   stroke.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case CubicTo:
			elements = append(elements, stroke.CubicTo{
				Control1: stroke.Point{X: e.Control1.X, Y: e.Control1.Y},
				Control2: stroke.Point{X: e.Control2.X, Y: e.Control2.Y},
				Point:    stroke.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case Close:
			elements = append(elements, stroke.Close{})
		}
	}
	return elements
}

// convertLineCap converts gg.LineCap to stroke.LineCap.
func convertLineCap(cap LineCap) stroke.LineCap {
	switch cap {
	case LineCapButt:
		return stroke.LineCapButt
	case LineCapRound:
		return stroke.LineCapRound
	case LineCapSquare:
		return stroke.LineCapSquare
	default:
		return stroke.LineCapButt
	}
}

// convertLineJoin converts gg.LineJoin to stroke.LineJoin.
func convertLineJoin(join LineJoin) stroke.LineJoin {
	switch join {
	case LineJoinMiter:
		return stroke.LineJoinMiter
	case LineJoinRound:
		return stroke.LineJoinRound
	case LineJoinBevel:
		return stroke.LineJoinBevel
	default:
		return stroke.LineJoinMiter
	}
}

// polygonFromContours builds a raster.Polygon from the point-ring contours
// produced by path.Fill or stroke.Plot.
func polygonFromContours(contours [][]gpath.Point) *raster.Polygon {
	poly := raster.NewPolygon()
	for _, c := range contours {
		pts := make([]raster.Point, len(c))
		for i, p := range c {
			pts[i] = raster.Point{X: p.X, Y: p.Y}
		}
		poly.AddContour(pts)
	}
	return poly
}

// strokePolygonFromContours builds a raster.Polygon from stroke.Plot's
// []stroke.Point contours.
func strokePolygonFromContours(contours [][]stroke.Point) *raster.Polygon {
	poly := raster.NewPolygon()
	for _, c := range contours {
		pts := make([]raster.Point, len(c))
		for i, p := range c {
			pts[i] = raster.Point{X: p.X, Y: p.Y}
		}
		poly.AddContour(pts)
	}
	return poly
}

// solidColorFromPaint returns paint's color and true when paint resolves to
// a single solid color (no per-pixel sampling needed), preferring Brush over
// Pattern. It returns ok=false for any brush or pattern that varies by
// position, so callers can fall back to per-pixel Painter sampling.
func solidColorFromPaint(paint *Paint) (RGBA, bool) {
	if paint.Brush != nil {
		if sb, ok := paint.Brush.(SolidBrush); ok {
			return sb.Color, true
		}
		return RGBA{}, false
	}
	if paint.Pattern != nil {
		if sp, ok := paint.Pattern.(*SolidPattern); ok {
			return sp.Color, true
		}
		return RGBA{}, false
	}
	return Black, true
}

// blendPixelAlpha composites c onto the pixel at (x, y) with source-over,
// scaling c's alpha by coverage/255 first. This folds the spec's
// destination-in-then-source-over compositing step into one pass, since the
// mask is sampled directly as a per-pixel coverage scalar rather than
// materialized as an intermediate full-color buffer.
func blendPixelAlpha(pixmap *Pixmap, x, y int, c RGBA, coverage uint8) {
	if coverage == 0 {
		return
	}
	if x < 0 || x >= pixmap.Width() || y < 0 || y >= pixmap.Height() {
		return
	}
	if coverage == 255 && c.A == 1.0 {
		pixmap.SetPixel(x, y, c)
		return
	}

	existing := pixmap.GetPixel(x, y)
	srcAlpha := c.A * float64(coverage) / 255.0
	invSrcAlpha := 1.0 - srcAlpha

	outA := srcAlpha + existing.A*invSrcAlpha
	if outA <= 0 {
		return
	}
	outR := (c.R*srcAlpha + existing.R*existing.A*invSrcAlpha) / outA
	outG := (c.G*srcAlpha + existing.G*existing.A*invSrcAlpha) / outA
	outB := (c.B*srcAlpha + existing.B*existing.A*invSrcAlpha) / outA
	pixmap.SetPixel(x, y, RGBA{R: outR, G: outG, B: outB, A: outA})
}

// paintPolygon rasterizes poly and composites it onto pixmap using paint's
// color source, either through the AA coverage buffer or via direct non-AA
// spans. Solid brushes/patterns take a fast path that resolves the color
// once; everything else (gradients, checkerboards, image patterns) samples
// a Painter per pixel.
func (r *SoftwareRenderer) paintPolygon(pixmap *Pixmap, poly *raster.Polygon, rule raster.FillRule, paint *Paint, antialias bool) {
	if poly.Empty() {
		return
	}

	if c, ok := solidColorFromPaint(paint); ok {
		if !antialias {
			r.rasterizer.FillSpans(poly, rule, func(y, x0, x1 int) {
				for x := x0; x < x1; x++ {
					blendPixelAlpha(pixmap, x, y, c, 255)
				}
			})
			return
		}
		mask := r.rasterizer.FillMask(poly, rule, aaScale)
		for y := 0; y < r.height; y++ {
			for x := 0; x < r.width; x++ {
				if a := mask.At(x, y); a != 0 {
					blendPixelAlpha(pixmap, x, y, c, a)
				}
			}
		}
		return
	}

	painter := PainterFromPaint(paint)
	span := make([]RGBA, r.width)

	if !antialias {
		r.rasterizer.FillSpans(poly, rule, func(y, x0, x1 int) {
			length := x1 - x0
			if length <= 0 {
				return
			}
			painter.PaintSpan(span[:length], x0, y, length)
			for i := 0; i < length; i++ {
				blendPixelAlpha(pixmap, x0+i, y, span[i], 255)
			}
		})
		return
	}

	mask := r.rasterizer.FillMask(poly, rule, aaScale)
	for y := 0; y < r.height; y++ {
		painter.PaintSpan(span, 0, y, r.width)
		for x := 0; x < r.width; x++ {
			if a := mask.At(x, y); a != 0 {
				blendPixelAlpha(pixmap, x, y, span[x], a)
			}
		}
	}
}

// Fill implements Renderer.Fill: flattens the path into fill-rule polygon
// contours and rasterizes them, anti-aliased unless paint.Antialias is
// false.
func (r *SoftwareRenderer) Fill(pixmap *Pixmap, p *Path, paint *Paint) error {
	elements := convertPath(p)
	contours := gpath.Fill(elements, paint.Tolerance)
	poly := polygonFromContours(contours)

	rule := raster.FillRuleNonZero
	if paint.FillRule == FillRuleEvenOdd {
		rule = raster.FillRuleEvenOdd
	}

	r.paintPolygon(pixmap, poly, rule, paint, paint.Antialias)
	return nil
}

// FillNoAA fills without anti-aliasing (faster but aliased).
func (r *SoftwareRenderer) FillNoAA(pixmap *Pixmap, p *Path, paint *Paint) error {
	elements := convertPath(p)
	contours := gpath.Fill(elements, paint.Tolerance)
	poly := polygonFromContours(contours)

	rule := raster.FillRuleNonZero
	if paint.FillRule == FillRuleEvenOdd {
		rule = raster.FillRuleEvenOdd
	}

	r.paintPolygon(pixmap, poly, rule, paint, false)
	return nil
}

// Stroke implements Renderer.Stroke: expands the path into stroke outline
// contours (dashed, if paint specifies a dash pattern) and rasterizes them
// under the non-zero fill rule, anti-aliased unless paint.Antialias is
// false.
func (r *SoftwareRenderer) Stroke(pixmap *Pixmap, p *Path, paint *Paint) error {
	elements := convertPathToStrokeElements(p)

	scale := paint.TransformScale
	if scale == 0 {
		scale = 1
	}

	strokeStyle := stroke.Stroke{
		Width:      paint.LineWidth * scale,
		Cap:        convertLineCap(paint.LineCap),
		Join:       convertLineJoin(paint.LineJoin),
		MiterLimit: paint.MiterLimit,
	}
	if strokeStyle.MiterLimit <= 0 {
		strokeStyle.MiterLimit = 4.0
	}
	if gs := paint.GetStroke(); gs.Dash != nil {
		strokeStyle.Dashes = make([]float64, len(gs.Dash.Array))
		for i, d := range gs.Dash.Array {
			strokeStyle.Dashes[i] = d * scale
		}
		strokeStyle.DashOffset = gs.Dash.Offset * scale
	}

	contours := stroke.Plot(elements, strokeStyle, paint.Tolerance, nil)
	poly := strokePolygonFromContours(contours)

	r.paintPolygon(pixmap, poly, raster.FillRuleNonZero, paint, paint.Antialias)
	return nil
}
