package geom

import "testing"

func square(side float64) NPolygon {
	return NewPolygon(
		V(0, 0),
		V(side, 0),
		V(side, side),
		V(0, side),
	)
}

func TestPolygonContainsInterior(t *testing.T) {
	p := square(10)
	if !p.Contains(V(5, 5)) {
		t.Errorf("Contains(5,5) = false, want true")
	}
}

func TestPolygonContainsExterior(t *testing.T) {
	p := square(10)
	if p.Contains(V(20, 20)) {
		t.Errorf("Contains(20,20) = true, want false")
	}
}

func TestBoundsOf(t *testing.T) {
	p := square(10)
	b := BoundsOf(p)
	want := AxisBounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}
	if b != want {
		t.Errorf("BoundsOf() = %v, want %v", b, want)
	}
}

func TestAxisBoundsArea(t *testing.T) {
	b := AxisBounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 5}
	if got := b.Area(); !FloatEquals(got, 50) {
		t.Errorf("Area() = %v, want 50", got)
	}
}

func TestAxisBoundsClampInside(t *testing.T) {
	b := AxisBounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}
	v := V(5, 5)
	if got := b.Clamp(v); got != v {
		t.Errorf("Clamp(%v) = %v, want unchanged", v, got)
	}
}

func TestAxisBoundsClampOutside(t *testing.T) {
	b := AxisBounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}
	got := b.Clamp(V(-5, 20))
	want := V(0, 10)
	if got != want {
		t.Errorf("Clamp() = %v, want %v", got, want)
	}
}

func TestPolygonEdge(t *testing.T) {
	p := square(10)
	e := p.Edge(0)
	want := Line{Start: V(0, 0), End: V(10, 0)}
	if e != want {
		t.Errorf("Edge(0) = %v, want %v", e, want)
	}
}
