package bpt

import (
	"testing"

	"github.com/seanballais/libbpt/ds"
	"github.com/seanballais/libbpt/geom"
)

func site20() geom.NPolygon {
	return geom.NewPolygon(
		geom.V(0, 0),
		geom.V(20, 0),
		geom.V(20, 20),
		geom.V(0, 20),
	)
}

func twoBuildings() []ds.InputBuilding {
	return []ds.InputBuilding{
		{Length: 2, Width: 2},
		{Length: 2, Width: 2},
	}
}

func TestFeasibleNonOverlappingInBounds(t *testing.T) {
	buildings := twoBuildings()
	sol := ds.NewSolution(2)
	sol.SetX(0, 2)
	sol.SetY(0, 2)
	sol.SetX(1, 10)
	sol.SetY(1, 10)

	if !Feasible(sol, site20(), buildings) {
		t.Errorf("Feasible() = false, want true")
	}
}

func TestFeasibleOverlapping(t *testing.T) {
	buildings := twoBuildings()
	sol := ds.NewSolution(2)
	sol.SetX(0, 5)
	sol.SetY(0, 5)
	sol.SetX(1, 5)
	sol.SetY(1, 5)

	if Feasible(sol, site20(), buildings) {
		t.Errorf("Feasible() = true, want false for overlapping buildings")
	}
}

func TestFeasibleOutOfBounds(t *testing.T) {
	buildings := twoBuildings()
	sol := ds.NewSolution(2)
	sol.SetX(0, 2)
	sol.SetY(0, 2)
	sol.SetX(1, 1000)
	sol.SetY(1, 1000)

	if Feasible(sol, site20(), buildings) {
		t.Errorf("Feasible() = true, want false for an out-of-bounds building")
	}
}
