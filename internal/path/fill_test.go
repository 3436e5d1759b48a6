package path

import "testing"

func TestFillTriangle(t *testing.T) {
	elements := []PathElement{
		MoveTo{Point{0, 0}},
		LineTo{Point{10, 0}},
		LineTo{Point{5, 10}},
		Close{},
	}
	contours := Fill(elements, 0.1)
	if len(contours) != 1 {
		t.Fatalf("expected 1 contour, got %d", len(contours))
	}
	if len(contours[0]) != 3 {
		t.Errorf("triangle contour should have 3 points, got %d", len(contours[0]))
	}
}

func TestFillMultipleSubpaths(t *testing.T) {
	elements := []PathElement{
		MoveTo{Point{0, 0}},
		LineTo{Point{10, 0}},
		LineTo{Point{5, 10}},
		Close{},
		MoveTo{Point{20, 0}},
		LineTo{Point{30, 0}},
		LineTo{Point{25, 10}},
		Close{},
	}
	contours := Fill(elements, 0.1)
	if len(contours) != 2 {
		t.Fatalf("expected 2 contours, got %d", len(contours))
	}
}

func TestFillDegenerateSubpathDropped(t *testing.T) {
	elements := []PathElement{
		MoveTo{Point{0, 0}},
		LineTo{Point{10, 0}},
		Close{},
	}
	contours := Fill(elements, 0.1)
	if len(contours) != 0 {
		t.Errorf("a 2-point subpath should be dropped as degenerate, got %d contours", len(contours))
	}
}

func TestFillCurvedSubpathFlattened(t *testing.T) {
	elements := []PathElement{
		MoveTo{Point{0, 0}},
		CubicTo{Control1: Point{0, 10}, Control2: Point{10, 10}, Point: Point{10, 0}},
		LineTo{Point{5, -10}},
		Close{},
	}
	contours := Fill(elements, 0.1)
	if len(contours) != 1 {
		t.Fatalf("expected 1 contour, got %d", len(contours))
	}
	if len(contours[0]) < 4 {
		t.Errorf("curved subpath should flatten to more than 3 points, got %d", len(contours[0]))
	}
}

func TestFillNoMoveToIgnoresCurves(t *testing.T) {
	// A QuadTo/CubicTo before any MoveTo has no current point and should be
	// skipped rather than panicking.
	elements := []PathElement{
		QuadTo{Control: Point{5, 5}, Point: Point{10, 10}},
		MoveTo{Point{0, 0}},
		LineTo{Point{10, 0}},
		LineTo{Point{5, 10}},
		Close{},
	}
	contours := Fill(elements, 0.1)
	if len(contours) != 1 {
		t.Fatalf("expected 1 contour, got %d", len(contours))
	}
}

func TestFillDefaultTolerance(t *testing.T) {
	elements := []PathElement{
		MoveTo{Point{0, 0}},
		LineTo{Point{10, 0}},
		LineTo{Point{5, 10}},
		Close{},
	}
	withZero := Fill(elements, 0)
	withDefault := Fill(elements, Tolerance)
	if len(withZero) != len(withDefault) {
		t.Errorf("zero tolerance should fall back to the default, got %d contours vs %d",
			len(withZero), len(withDefault))
	}
}
