package bpt

import (
	"github.com/seanballais/libbpt/ds"
	"github.com/seanballais/libbpt/geom"
)

// Crossover produces two children from parentA and parentB by uniform
// per-gene crossover: each child starts as a copy of its namesake parent,
// then every (x, y, rotation) gene of every building is independently
// redrawn from one of the two parents with equal probability. Each child
// is regenerated from scratch - not gene-by-gene repaired - until it is
// feasible on its own.
func Crossover(parentA, parentB ds.Solution, site geom.NPolygon, buildings []ds.InputBuilding) (ds.Solution, ds.Solution) {
	children := [2]ds.Solution{parentA.Clone(), parentB.Clone()}
	parents := [2]ds.Solution{parentA, parentB}

	for c := 0; c < 2; c++ {
		best := children[c].Clone()
		bestBad := badness(best, site, buildings)
		feasible := false
		for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
			for i := range buildings {
				src := parents[geom.SampleUniformInt(0, 1)]
				children[c].SetX(i, src.X(i))

				src = parents[geom.SampleUniformInt(0, 1)]
				children[c].SetY(i, src.Y(i))

				src = parents[geom.SampleUniformInt(0, 1)]
				children[c].SetRotation(i, src.Rotation(i))
			}

			if Feasible(children[c], site, buildings) {
				feasible = true
				break
			}
			if bad := badness(children[c], site, buildings); bad < bestBad {
				best, bestBad = children[c].Clone(), bad
			}
		}

		// Retry cap exhausted; settle for the least-infeasible gene mix
		// seen rather than spinning forever.
		if !feasible {
			children[c] = best
		}
	}

	return children[0], children[1]
}
