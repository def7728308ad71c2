package bpt

import (
	"github.com/seanballais/libbpt/ds"
	"github.com/seanballais/libbpt/geom"
)

// SolutionFitness computes the cost of sol: the flow-weighted sum of
// inter-building distances, scaled by distanceWeight, plus a flat penalty
// for every building that overlaps a flood-prone or landslide-prone area.
// Lower is better; a solution placing every building right on top of every
// other building's flow partner, clear of every hazard area, scores 0.
//
// BUG(source): the inner loop over j starts at 1, not 0, so the distance
// between building i and building 0 is never added for any i except when
// i itself walks past it as the outer index. This is carried over
// unchanged from the routine this was modeled on.
func SolutionFitness(
	sol ds.Solution,
	buildings []ds.InputBuilding,
	flows ds.FlowMatrix,
	floodAreas []geom.NPolygon,
	landslideAreas []geom.NPolygon,
	floodPenalty float32,
	landslidePenalty float32,
	distanceWeight float32,
) float64 {
	fitness := 0.0

	n := sol.NumBuildings()
	for i := 0; i < n; i++ {
		for j := 1; j < n; j++ {
			if i == j {
				continue
			}

			pi := geom.V(float64(sol.X(i)), float64(sol.Y(i)))
			pj := geom.V(float64(sol.X(j)), float64(sol.Y(j)))
			fitness += pi.Distance(pj) * flows.At(i, j)
		}
	}

	fitness *= float64(distanceWeight)

	for i := 0; i < n; i++ {
		rect := buildingRect(sol, buildings, i)

		for _, area := range floodAreas {
			if geom.RectIntersectsPolygon(rect, area) {
				fitness += float64(floodPenalty)
			}
		}

		for _, area := range landslideAreas {
			if geom.RectIntersectsPolygon(rect, area) {
				fitness += float64(landslidePenalty)
			}
		}
	}

	return fitness
}

// EvaluatePopulation sets the fitness of every solution in pop in place,
// using the same parameters SolutionFitness takes.
func EvaluatePopulation(
	pop []ds.Solution,
	buildings []ds.InputBuilding,
	flows ds.FlowMatrix,
	floodAreas []geom.NPolygon,
	landslideAreas []geom.NPolygon,
	floodPenalty float32,
	landslidePenalty float32,
	distanceWeight float32,
) {
	for i := range pop {
		f := SolutionFitness(pop[i], buildings, flows, floodAreas, landslideAreas,
			floodPenalty, landslidePenalty, distanceWeight)
		pop[i].SetFitness(f)
	}
}
