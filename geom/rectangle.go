package geom

// Rectangle is a rotated rectangle given by its center, extents, and
// rotation in degrees, matching the upstream Rectangle(cx, cy, width,
// height, angle) constructor used throughout the GA.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
	Angle         float64
}

// Corners returns the rectangle's four vertices in counter-clockwise order,
// starting from the corner at (-width/2, -height/2) before rotation.
func (r Rectangle) Corners() [4]Vec2 {
	hw, hh := r.Width/2, r.Height/2
	local := [4]Vec2{
		{-hw, -hh},
		{hw, -hh},
		{hw, hh},
		{-hw, hh},
	}
	center := Vec2{r.X, r.Y}
	var out [4]Vec2
	for i, v := range local {
		out[i] = v.Rotate(r.Angle).Add(center)
	}
	return out
}

// ToPolygon converts r into its 4-vertex polygon, consistent winding with
// Corners.
func (r Rectangle) ToPolygon() NPolygon {
	c := r.Corners()
	return NPolygon{Vertices: []Vec2{c[0], c[1], c[2], c[3]}}
}
