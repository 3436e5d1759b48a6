package raster

import "testing"

func TestNewEdgeHorizontalRejected(t *testing.T) {
	_, ok := NewEdge(Point{0, 5}, Point{10, 5})
	if ok {
		t.Error("horizontal segment should not produce an edge")
	}
}

func TestNewEdgeDirectionDescending(t *testing.T) {
	e, ok := NewEdge(Point{0, 0}, Point{0, 10})
	if !ok {
		t.Fatal("expected a valid edge")
	}
	if e.Dir != 1 {
		t.Errorf("Dir = %d, want 1 for a top-to-bottom segment", e.Dir)
	}
	if e.Top != 0 || e.Bottom != 10 {
		t.Errorf("Top/Bottom = %v/%v, want 0/10", e.Top, e.Bottom)
	}
}

func TestNewEdgeDirectionAscendingIsNormalized(t *testing.T) {
	e, ok := NewEdge(Point{0, 10}, Point{0, 0})
	if !ok {
		t.Fatal("expected a valid edge")
	}
	if e.Dir != -1 {
		t.Errorf("Dir = %d, want -1 for a bottom-to-top segment", e.Dir)
	}
	// Endpoints should be normalized so Top < Bottom regardless of winding.
	if e.Top != 0 || e.Bottom != 10 {
		t.Errorf("Top/Bottom = %v/%v, want 0/10", e.Top, e.Bottom)
	}
}

func TestEdgeXAt(t *testing.T) {
	e, ok := NewEdge(Point{0, 0}, Point{10, 10})
	if !ok {
		t.Fatal("expected a valid edge")
	}
	if got := e.XAt(0); got != 0 {
		t.Errorf("XAt(0) = %v, want 0", got)
	}
	if got := e.XAt(5); got != 5 {
		t.Errorf("XAt(5) = %v, want 5", got)
	}
	if got := e.XAt(10); got != 10 {
		t.Errorf("XAt(10) = %v, want 10", got)
	}
}
