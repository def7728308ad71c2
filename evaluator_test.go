package bpt

import (
	"testing"

	"github.com/seanballais/libbpt/ds"
	"github.com/seanballais/libbpt/geom"
)

func TestSolutionFitnessDistanceOnly(t *testing.T) {
	buildings := twoBuildings()
	sol := ds.NewSolution(2)
	sol.SetX(0, 0)
	sol.SetY(0, 0)
	sol.SetX(1, 3)
	sol.SetY(1, 4)

	flows, err := ds.NewFlowMatrix([][]float32{
		{0, 2},
		{2, 0},
	})
	if err != nil {
		t.Fatalf("NewFlowMatrix() err = %v", err)
	}

	// With j starting at 1, the only distance term ever computed for a
	// 2-building solution is (i=0, j=1): distance(0,1) * flow[0][1].
	// (i=1, j=1) is skipped by the i == j guard.
	want := 5.0 * 2.0
	got := SolutionFitness(sol, buildings, flows, nil, nil, 0, 0, 1)
	if !geom.FloatEquals(got, want) {
		t.Errorf("SolutionFitness() = %v, want %v", got, want)
	}
}

func TestSolutionFitnessDistanceWeightScales(t *testing.T) {
	buildings := twoBuildings()
	sol := ds.NewSolution(2)
	sol.SetX(1, 3)
	sol.SetY(1, 4)

	flows, _ := ds.NewFlowMatrix([][]float32{
		{0, 1},
		{1, 0},
	})

	got := SolutionFitness(sol, buildings, flows, nil, nil, 0, 0, 2)
	want := 5.0 * 1.0 * 2.0
	if !geom.FloatEquals(got, want) {
		t.Errorf("SolutionFitness() = %v, want %v", got, want)
	}
}

func TestSolutionFitnessZeroWhenCoincidentAndClear(t *testing.T) {
	buildings := []ds.InputBuilding{{Length: 1, Width: 1}}
	sol := ds.NewSolution(1)
	flows, _ := ds.NewFlowMatrix([][]float32{{0}})

	got := SolutionFitness(sol, buildings, flows, nil, nil, 1000, 1000, 1)
	if !geom.FloatEquals(got, 0) {
		t.Errorf("SolutionFitness() = %v, want 0 for a single building with no hazards", got)
	}
}

func TestSolutionFitnessFloodPenalty(t *testing.T) {
	buildings := []ds.InputBuilding{{Length: 2, Width: 2}}
	sol := ds.NewSolution(1)
	sol.SetX(0, 5)
	sol.SetY(0, 5)
	flows, _ := ds.NewFlowMatrix([][]float32{{0}})

	floodArea := geom.NewPolygon(geom.V(0, 0), geom.V(10, 0), geom.V(10, 10), geom.V(0, 10))

	got := SolutionFitness(sol, buildings, flows, []geom.NPolygon{floodArea}, nil, 1000, 0, 1)
	if !geom.FloatEquals(got, 1000) {
		t.Errorf("SolutionFitness() = %v, want 1000 for a building inside the flood area", got)
	}
}

func TestEvaluatePopulationSetsFitness(t *testing.T) {
	buildings := []ds.InputBuilding{{Length: 1, Width: 1}}
	flows, _ := ds.NewFlowMatrix([][]float32{{0}})
	pop := []ds.Solution{ds.NewSolution(1), ds.NewSolution(1)}

	EvaluatePopulation(pop, buildings, flows, nil, nil, 0, 0, 1)

	for i, sol := range pop {
		if _, err := sol.Fitness(); err != nil {
			t.Errorf("pop[%d].Fitness() err = %v, want nil", i, err)
		}
	}
}
