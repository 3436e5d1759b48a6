// Package raster rasterizes filled polygons into pixel spans or
// anti-aliased alpha masks.
package raster

// RGBA represents a color (internal copy to avoid import cycle).
type RGBA struct {
	R, G, B, A float64
}

// AlphaMask is a single-channel 8-bit coverage mask, one row-major byte
// per device pixel.
type AlphaMask struct {
	Width, Height int
	Pix           []uint8
}

// NewAlphaMask allocates a zeroed mask of the given dimensions.
func NewAlphaMask(w, h int) *AlphaMask {
	return &AlphaMask{Width: w, Height: h, Pix: make([]uint8, w*h)}
}

// At returns the mask value at (x, y), or 0 outside bounds.
func (m *AlphaMask) At(x, y int) uint8 {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0
	}
	return m.Pix[y*m.Width+x]
}

// Rasterizer converts a Polygon into pixel coverage, either directly
// (non-AA spans) or through the sparse coverage buffer at a supersampling
// scale (AA mask).
type Rasterizer struct {
	width, height int
}

// NewRasterizer creates a new rasterizer for the given dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{width: width, height: height}
}

// FillSpans iterates the polygon's non-AA scanline spans within the
// rasterizer's bounds and reports each one to emit.
func (r *Rasterizer) FillSpans(poly *Polygon, rule FillRule, emit func(y, x0, x1 int)) {
	if poly.Empty() {
		return
	}
	yMin, yMax := poly.Bounds()
	if yMin < 0 {
		yMin = 0
	}
	if yMax > r.height {
		yMax = r.height
	}
	for y := yMin; y < yMax; y++ {
		for _, sp := range poly.Spans(y, rule) {
			x0, x1 := sp.Start, sp.End
			if x0 > x1 {
				x0, x1 = x1, x0
			}
			if x0 < 0 {
				x0 = 0
			}
			if x1 > r.width {
				x1 = r.width
			}
			if x0 < x1 {
				emit(y, x0, x1)
			}
		}
	}
}

// FillMask rasterizes the polygon into an alpha-8 mask at supersampling
// scale s: s scanline samples per device row, each queried for spans and
// accumulated through the sparse coverage buffer, then averaged down to
// 8-bit alpha per pixel.
func (r *Rasterizer) FillMask(poly *Polygon, rule FillRule, s int) *AlphaMask {
	mask := NewAlphaMask(r.width, r.height)
	if poly.Empty() || s <= 0 {
		return mask
	}

	yMin, yMax := poly.Bounds()
	if yMin < 0 {
		yMin = 0
	}
	if yMax > r.height {
		yMax = r.height
	}

	cov := NewCoverage(s)
	for y := yMin; y < yMax; y++ {
		cov.Reset()
		for sub := 0; sub < s; sub++ {
			subY := float64(y) + (float64(sub)+0.5)/float64(s)
			for _, sp := range poly.SpansAt(subY, rule) {
				x0, x1 := sp.Start, sp.End
				if x0 > x1 {
					x0, x1 = x1, x0
				}
				xSub0 := x0 * s
				xSub1 := x1 * s
				if xSub1 > xSub0 {
					cov.addSpan(xSub0, xSub1-xSub0)
				}
			}
		}
		row := cov.ToAlpha(r.width)
		copy(mask.Pix[y*r.width:(y+1)*r.width], row)
	}
	return mask
}
