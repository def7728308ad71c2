package bpt

import (
	"github.com/seanballais/libbpt/ds"
	"github.com/seanballais/libbpt/geom"
)

// buildingRect constructs the rotated rectangle for building i of sol,
// using buildings[i]'s fixed footprint. Every feasibility, crossover, and
// mutation check goes through this one constructor so the
// width=Width/height=Length convention only has to be gotten right in one
// place.
func buildingRect(sol ds.Solution, buildings []ds.InputBuilding, i int) geom.Rectangle {
	return geom.Rectangle{
		X:      float64(sol.X(i)),
		Y:      float64(sol.Y(i)),
		Width:  float64(buildings[i].Width),
		Height: float64(buildings[i].Length),
		Angle:  float64(sol.Rotation(i)),
	}
}

// Feasible reports whether sol places every building inside site with no
// two buildings overlapping.
func Feasible(sol ds.Solution, site geom.NPolygon, buildings []ds.InputBuilding) bool {
	return noOverlap(sol, buildings) && inBounds(sol, site, buildings)
}

func noOverlap(sol ds.Solution, buildings []ds.InputBuilding) bool {
	n := sol.NumBuildings()
	for i := 0; i < n; i++ {
		ri := buildingRect(sol, buildings, i)
		for j := i + 1; j < n; j++ {
			rj := buildingRect(sol, buildings, j)
			if geom.RectsIntersect(ri, rj) {
				return false
			}
		}
	}
	return true
}

func inBounds(sol ds.Solution, site geom.NPolygon, buildings []ds.InputBuilding) bool {
	n := sol.NumBuildings()
	for i := 0; i < n; i++ {
		if !geom.RectWithinPolygon(buildingRect(sol, buildings, i), site) {
			return false
		}
	}
	return true
}
