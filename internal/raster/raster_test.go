package raster

import "testing"

func TestAlphaMaskOutOfBoundsZero(t *testing.T) {
	m := NewAlphaMask(4, 4)
	if got := m.At(-1, 0); got != 0 {
		t.Errorf("At(-1,0) = %d, want 0", got)
	}
	if got := m.At(0, 4); got != 0 {
		t.Errorf("At(0,4) = %d, want 0", got)
	}
}

func TestAlphaMaskInBounds(t *testing.T) {
	m := NewAlphaMask(4, 4)
	m.Pix[1*4+2] = 200
	if got := m.At(2, 1); got != 200 {
		t.Errorf("At(2,1) = %d, want 200", got)
	}
}

func TestRasterizerFillSpansEmptyPolygon(t *testing.T) {
	r := NewRasterizer(10, 10)
	p := NewPolygon()
	called := false
	r.FillSpans(p, FillRuleNonZero, func(y, x0, x1 int) { called = true })
	if called {
		t.Error("FillSpans should not emit anything for an empty polygon")
	}
}

func TestRasterizerFillSpansClipsToBounds(t *testing.T) {
	r := NewRasterizer(10, 10)
	p := NewPolygon()
	p.AddContour(square(-5, -5, 15, 15))

	var minX, maxX, minY, maxY int
	first := true
	r.FillSpans(p, FillRuleNonZero, func(y, x0, x1 int) {
		if first {
			minX, maxX, minY, maxY = x0, x1, y, y
			first = false
		}
		if x0 < minX {
			minX = x0
		}
		if x1 > maxX {
			maxX = x1
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	})
	if first {
		t.Fatal("expected some spans to be emitted")
	}
	if minX < 0 || maxX > 10 || minY < 0 || maxY >= 10 {
		t.Errorf("spans should be clipped to [0,10): minX=%d maxX=%d minY=%d maxY=%d", minX, maxX, minY, maxY)
	}
}

func TestRasterizerFillSpansRectangle(t *testing.T) {
	r := NewRasterizer(20, 20)
	p := NewPolygon()
	p.AddContour(square(2, 2, 8, 8))

	rows := 0
	r.FillSpans(p, FillRuleNonZero, func(y, x0, x1 int) {
		rows++
		if x0 != 2 || x1 != 8 {
			t.Errorf("row %d span = [%d,%d), want [2,8)", y, x0, x1)
		}
	})
	if rows != 6 {
		t.Errorf("expected 6 filled rows (y=2..7), got %d", rows)
	}
}

func TestRasterizerFillMaskEmptyPolygon(t *testing.T) {
	r := NewRasterizer(10, 10)
	p := NewPolygon()
	mask := r.FillMask(p, FillRuleNonZero, 4)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if mask.At(x, y) != 0 {
				t.Fatalf("mask.At(%d,%d) = %d, want 0 for an empty polygon", x, y, mask.At(x, y))
			}
		}
	}
}

func TestRasterizerFillMaskInteriorFullyOpaque(t *testing.T) {
	r := NewRasterizer(20, 20)
	p := NewPolygon()
	p.AddContour(square(4, 4, 16, 16))

	mask := r.FillMask(p, FillRuleNonZero, 4)
	if mask.At(10, 10) != 255 {
		t.Errorf("interior pixel = %d, want 255", mask.At(10, 10))
	}
	if mask.At(0, 0) != 0 {
		t.Errorf("exterior pixel = %d, want 0", mask.At(0, 0))
	}
}

func TestRasterizerFillMaskEdgeIsPartiallyCovered(t *testing.T) {
	r := NewRasterizer(20, 20)
	p := NewPolygon()
	// A non-integer bottom edge (y=15.5) straddles scanline row 15: only
	// the sub-row samples at or above y=15.5 count, giving that row
	// partial vertical coverage under supersampling.
	p.AddContour(square(4, 4, 16, 15.5))

	mask := r.FillMask(p, FillRuleNonZero, 4)
	edge := mask.At(10, 15)
	if edge == 0 || edge == 255 {
		t.Errorf("boundary row coverage = %d, want a partial value", edge)
	}
	if interior := mask.At(10, 10); interior != 255 {
		t.Errorf("interior row coverage = %d, want 255", interior)
	}
}

func TestRasterizerFillMaskZeroScaleReturnsEmpty(t *testing.T) {
	r := NewRasterizer(10, 10)
	p := NewPolygon()
	p.AddContour(square(2, 2, 8, 8))

	mask := r.FillMask(p, FillRuleNonZero, 0)
	if mask.At(5, 5) != 0 {
		t.Errorf("scale=0 should produce an empty mask, got %d", mask.At(5, 5))
	}
}
