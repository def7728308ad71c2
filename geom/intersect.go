package geom

import "math"

// RectsIntersect reports whether two rotated rectangles overlap, using the
// separating axis theorem over each rectangle's two unique edge normals.
func RectsIntersect(a, b Rectangle) bool {
	axesA := edgeNormals(a.Corners())
	axesB := edgeNormals(b.Corners())

	for _, axis := range append(axesA, axesB...) {
		if !overlapsOnAxis(axis, a.Corners(), b.Corners()) {
			return false
		}
	}
	return true
}

// edgeNormals returns the two unique normals of a rectangle's edges
// (opposite edges share a normal direction for a parallelogram). Each is
// its edge rotated a quarter turn counter-clockwise, which points inward
// for the counter-clockwise corners Corners returns; the separating axis
// test does not depend on the direction.
func edgeNormals(corners [4]Vec2) []Vec2 {
	e0 := corners[1].Sub(corners[0])
	e1 := corners[2].Sub(corners[1])
	return []Vec2{e0.Perp(), e1.Perp()}
}

func overlapsOnAxis(axis Vec2, a, b [4]Vec2) bool {
	aMin, aMax := projectOntoAxis(axis, a)
	bMin, bMax := projectOntoAxis(axis, b)
	return !(aMax < bMin-Epsilon || bMax < aMin-Epsilon)
}

func projectOntoAxis(axis Vec2, corners [4]Vec2) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, c := range corners {
		d := c.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// RectWithinPolygon reports whether r lies entirely inside p: every corner
// of r is inside p, and no edge of r crosses an edge of p.
func RectWithinPolygon(r Rectangle, p NPolygon) bool {
	corners := r.Corners()
	for _, c := range corners {
		if !p.Contains(c) {
			return false
		}
	}

	for i := 0; i < 4; i++ {
		rEdge := Line{corners[i], corners[(i+1)%4]}
		for j := 0; j < p.Len(); j++ {
			if segmentsIntersect(rEdge, p.Edge(j)) {
				return false
			}
		}
	}
	return true
}

// RectIntersectsPolygon reports whether r overlaps p at all: any corner of
// r inside p, any vertex of p inside r, or any edge crossing.
func RectIntersectsPolygon(r Rectangle, p NPolygon) bool {
	corners := r.Corners()
	for _, c := range corners {
		if p.Contains(c) {
			return true
		}
	}

	rPoly := r.ToPolygon()
	for _, v := range p.Vertices {
		if rPoly.Contains(v) {
			return true
		}
	}

	for i := 0; i < 4; i++ {
		rEdge := Line{corners[i], corners[(i+1)%4]}
		for j := 0; j < p.Len(); j++ {
			if segmentsIntersect(rEdge, p.Edge(j)) {
				return true
			}
		}
	}
	return false
}

// segmentsIntersect reports whether segments a and b cross, including
// touching at an endpoint.
func segmentsIntersect(a, b Line) bool {
	d1 := cross(b.End.Sub(b.Start), a.Start.Sub(b.Start))
	d2 := cross(b.End.Sub(b.Start), a.End.Sub(b.Start))
	d3 := cross(a.End.Sub(a.Start), b.Start.Sub(a.Start))
	d4 := cross(a.End.Sub(a.Start), b.End.Sub(a.Start))

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	if FloatEquals(d1, 0) && onSegment(b.Start, b.End, a.Start) {
		return true
	}
	if FloatEquals(d2, 0) && onSegment(b.Start, b.End, a.End) {
		return true
	}
	if FloatEquals(d3, 0) && onSegment(a.Start, a.End, b.Start) {
		return true
	}
	if FloatEquals(d4, 0) && onSegment(a.Start, a.End, b.End) {
		return true
	}
	return false
}

func cross(v, w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

func onSegment(s, e, p Vec2) bool {
	return p.X >= math.Min(s.X, e.X)-Epsilon && p.X <= math.Max(s.X, e.X)+Epsilon &&
		p.Y >= math.Min(s.Y, e.Y)-Epsilon && p.Y <= math.Max(s.Y, e.Y)+Epsilon
}
