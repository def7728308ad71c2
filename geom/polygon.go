package geom

// NPolygon is a simple polygon given as an ordered, n-vertex ring. Both the
// bounding site and hazard areas are NPolygons.
type NPolygon struct {
	Vertices []Vec2
}

// NewPolygon builds an NPolygon from a vertex list.
func NewPolygon(vertices ...Vec2) NPolygon {
	return NPolygon{Vertices: vertices}
}

// Len returns the number of vertices.
func (p NPolygon) Len() int {
	return len(p.Vertices)
}

// Edge returns the i-th edge as (start, end), wrapping around.
func (p NPolygon) Edge(i int) Line {
	n := len(p.Vertices)
	return Line{p.Vertices[i%n], p.Vertices[(i+1)%n]}
}

// Contains reports whether pt lies inside p, using ray casting. Points
// exactly on an edge are not guaranteed to be classified as inside.
func (p NPolygon) Contains(pt Vec2) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi, vj := p.Vertices[i], p.Vertices[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// AxisBounds is an axis-aligned bounding box.
type AxisBounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// BoundsOf derives the axis-aligned bounding box of p's vertices.
func BoundsOf(p NPolygon) AxisBounds {
	b := AxisBounds{
		MinX: p.Vertices[0].X, MaxX: p.Vertices[0].X,
		MinY: p.Vertices[0].Y, MaxY: p.Vertices[0].Y,
	}
	for _, v := range p.Vertices[1:] {
		if v.X < b.MinX {
			b.MinX = v.X
		}
		if v.X > b.MaxX {
			b.MaxX = v.X
		}
		if v.Y < b.MinY {
			b.MinY = v.Y
		}
		if v.Y > b.MaxY {
			b.MaxY = v.Y
		}
	}
	return b
}

// Area returns the box's area; zero-area boxes (a degenerate site) are
// rejected as infeasible input by the initializer.
func (b AxisBounds) Area() float64 {
	return (b.MaxX - b.MinX) * (b.MaxY - b.MinY)
}

// Clamp slides v into the box, leaving it unchanged if it is already
// inside. Same box-clamp step as mesh.Bounded.Nearest in
// github.com/rwcarlsen/optim. Nothing else in this module calls it.
func (b AxisBounds) Clamp(v Vec2) Vec2 {
	x, y := v.X, v.Y
	if x < b.MinX {
		x = b.MinX
	} else if x > b.MaxX {
		x = b.MaxX
	}
	if y < b.MinY {
		y = b.MinY
	} else if y > b.MaxY {
		y = b.MaxY
	}
	return Vec2{x, y}
}
