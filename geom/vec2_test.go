package geom

import "testing"

func TestVec2Add(t *testing.T) {
	got := V(1, 2).Add(V(3, 4))
	want := V(4, 6)
	if got != want {
		t.Errorf("Add() = %v, want %v", got, want)
	}
}

func TestVec2Distance(t *testing.T) {
	got := V(0, 0).Distance(V(3, 4))
	if !FloatEquals(got, 5) {
		t.Errorf("Distance() = %v, want 5", got)
	}
}

func TestVec2RotateFullCircle(t *testing.T) {
	v := V(1, 0)
	got := v.Rotate(360)
	if !FloatEquals(got.X, v.X) || !FloatEquals(got.Y, v.Y) {
		t.Errorf("Rotate(360) = %v, want %v", got, v)
	}
}

func TestVec2RotateQuarterTurn(t *testing.T) {
	got := V(1, 0).Rotate(90)
	want := V(0, 1)
	if !FloatEquals(got.X, want.X) || !FloatEquals(got.Y, want.Y) {
		t.Errorf("Rotate(90) = %v, want %v", got, want)
	}
}

func TestVec2Perp(t *testing.T) {
	got := V(1, 0).Perp()
	want := V(0, 1)
	if got != want {
		t.Errorf("Perp() = %v, want %v", got, want)
	}
}

func TestVec2Angle(t *testing.T) {
	cases := []struct {
		v    Vec2
		want float64
	}{
		{V(1, 0), 0},
		{V(0, 1), 90},
		{V(-1, 0), 180},
		{V(0, -1), 270},
	}
	for _, c := range cases {
		if got := c.v.Angle(); !FloatEquals(got, c.want) {
			t.Errorf("Angle(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestVec2Lerp(t *testing.T) {
	got := V(0, 0).Lerp(V(10, 10), 0.5)
	want := V(5, 5)
	if got != want {
		t.Errorf("Lerp() = %v, want %v", got, want)
	}
}

func TestLineToVec(t *testing.T) {
	l := Line{Start: V(1, 1), End: V(4, 5)}
	got := l.ToVec()
	want := V(3, 4)
	if got != want {
		t.Errorf("ToVec() = %v, want %v", got, want)
	}
}
