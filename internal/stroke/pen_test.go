package stroke

import "testing"

func TestNewPenVertexCount(t *testing.T) {
	pen := NewPen(2, 0.1, 1, Identity)
	if pen.Degenerate() {
		t.Fatal("pen with reasonable tolerance should not be degenerate")
	}
	if pen.Len() < 4 {
		t.Errorf("Len() = %d, want >= 4", pen.Len())
	}
	if pen.Len()%2 != 0 {
		t.Errorf("Len() = %d, want even", pen.Len())
	}
}

func TestNewPenDegenerateWhenToleranceTooCoarse(t *testing.T) {
	// tolerance >= 4*majorAxis collapses the pen to a single point.
	pen := NewPen(2, 10, 1, Identity)
	if !pen.Degenerate() {
		t.Error("pen should be degenerate when tolerance dwarfs the radius")
	}
}

func TestPenVertexWrapsModulo(t *testing.T) {
	pen := NewPen(2, 0.1, 1, Identity)
	n := pen.Len()
	v0 := pen.Vertex(0)
	vN := pen.Vertex(n)
	if v0.Point != vN.Point {
		t.Errorf("Vertex(0) = %v, Vertex(n) = %v, want equal (modulo wrap)", v0.Point, vN.Point)
	}
	vNeg := pen.Vertex(-1)
	vLast := pen.Vertex(n - 1)
	if vNeg.Point != vLast.Point {
		t.Errorf("Vertex(-1) = %v, Vertex(n-1) = %v, want equal", vNeg.Point, vLast.Point)
	}
}

func TestPenVerticesLieOnCircle(t *testing.T) {
	radius := 3.0
	pen := NewPen(2*radius, 0.01, radius, Identity)
	for i := 0; i < pen.Len(); i++ {
		v := pen.Vertex(i)
		l := v.Point.Length()
		if !approxEqual(l, radius, 0.05) {
			t.Errorf("vertex %d length = %v, want ~%v", i, l, radius)
		}
	}
}

func TestPenVertexRangeNonEmpty(t *testing.T) {
	pen := NewPen(2, 0.05, 1, Identity)
	in := Slope{1, 0}
	out := Slope{0, 1}
	verts := pen.VertexRange(in, out, true)
	if len(verts) == 0 {
		t.Error("VertexRange should return at least one vertex for a quarter-turn join")
	}
}

func TestPenVertexRangeDegeneratePenReturnsNil(t *testing.T) {
	pen := NewPen(2, 10, 1, Identity)
	verts := pen.VertexRange(Slope{1, 0}, Slope{0, 1}, true)
	if verts != nil {
		t.Errorf("VertexRange on a degenerate (single-vertex) pen should return nil, got %v", verts)
	}
}
