package geom

import "testing"

func TestRectsIntersectOverlapping(t *testing.T) {
	a := Rectangle{X: 0, Y: 0, Width: 4, Height: 4, Angle: 0}
	b := Rectangle{X: 2, Y: 2, Width: 4, Height: 4, Angle: 0}
	if !RectsIntersect(a, b) {
		t.Errorf("RectsIntersect() = false, want true for overlapping rects")
	}
}

func TestRectsIntersectSeparated(t *testing.T) {
	a := Rectangle{X: 0, Y: 0, Width: 4, Height: 4, Angle: 0}
	b := Rectangle{X: 100, Y: 100, Width: 4, Height: 4, Angle: 0}
	if RectsIntersect(a, b) {
		t.Errorf("RectsIntersect() = true, want false for far-apart rects")
	}
}

func TestRectsIntersectRotatedCorner(t *testing.T) {
	// A 45-degree rotated square whose corner just barely pokes into an
	// axis-aligned square sitting next to it. SAT should catch this even
	// though axis-aligned-bounds overlap would too, so this exercises the
	// rotated-axis projections specifically.
	a := Rectangle{X: 0, Y: 0, Width: 2, Height: 2, Angle: 0}
	b := Rectangle{X: 2, Y: 0, Width: 2, Height: 2, Angle: 45}
	if !RectsIntersect(a, b) {
		t.Errorf("RectsIntersect() = false, want true for rotated-corner overlap")
	}
}

func site10() NPolygon {
	return NewPolygon(V(0, 0), V(10, 0), V(10, 10), V(0, 10))
}

func TestRectWithinPolygonInside(t *testing.T) {
	r := Rectangle{X: 5, Y: 5, Width: 2, Height: 2, Angle: 0}
	if !RectWithinPolygon(r, site10()) {
		t.Errorf("RectWithinPolygon() = false, want true")
	}
}

func TestRectWithinPolygonCrossingEdge(t *testing.T) {
	r := Rectangle{X: 0, Y: 5, Width: 4, Height: 4, Angle: 0}
	if RectWithinPolygon(r, site10()) {
		t.Errorf("RectWithinPolygon() = true, want false for a rect crossing the boundary")
	}
}

func TestRectWithinPolygonOutside(t *testing.T) {
	r := Rectangle{X: 100, Y: 100, Width: 2, Height: 2, Angle: 0}
	if RectWithinPolygon(r, site10()) {
		t.Errorf("RectWithinPolygon() = true, want false")
	}
}

func TestRectIntersectsPolygonPartialOverlap(t *testing.T) {
	r := Rectangle{X: 0, Y: 5, Width: 4, Height: 4, Angle: 0}
	if !RectIntersectsPolygon(r, site10()) {
		t.Errorf("RectIntersectsPolygon() = false, want true")
	}
}

func TestRectIntersectsPolygonNoOverlap(t *testing.T) {
	r := Rectangle{X: 100, Y: 100, Width: 2, Height: 2, Angle: 0}
	if RectIntersectsPolygon(r, site10()) {
		t.Errorf("RectIntersectsPolygon() = true, want false")
	}
}
