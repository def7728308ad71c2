package bpt

import (
	"github.com/petar/GoLLRB/llrb"

	"github.com/seanballais/libbpt/ds"
	"github.com/seanballais/libbpt/geom"
	"github.com/seanballais/libbpt/population"
)

// maxPlacementAttempts bounds the rejection-sampling loops below, so a
// pathological site (zero free area, buildings that can't possibly fit)
// can't spin forever. It is set high enough that no site with
// non-trivial free area will ever hit it.
const maxPlacementAttempts = 1_000_000

// candidate tracks a proposed (infeasible) solution and how far from
// feasible it is, so the least-bad one seen can be recovered if the
// retry cap is hit. Same structure as github.com/rwcarlsen/optim's
// pop.go: a llrb.Tree of "howbad" items recovers the least-unfavorable
// point when a feasible one can't be found within the iteration budget.
type candidate struct {
	sol    ds.Solution
	howBad float64
}

func (c candidate) Less(than llrb.Item) bool {
	return c.howBad < than.(candidate).howBad
}

// badness scores how far sol is from feasible: each overlapping building
// pair and each out-of-bounds building adds 1. Zero means feasible.
func badness(sol ds.Solution, site geom.NPolygon, buildings []ds.InputBuilding) float64 {
	n := sol.NumBuildings()
	score := 0.0
	for i := 0; i < n; i++ {
		ri := buildingRect(sol, buildings, i)
		if !geom.RectWithinPolygon(ri, site) {
			score++
		}
		for j := i + 1; j < n; j++ {
			if geom.RectsIntersect(ri, buildingRect(sol, buildings, j)) {
				score++
			}
		}
	}
	return score
}

// NewRandomSolution builds one feasible individual by rejection sampling:
// for each building, resample (x, y, rot) uniformly within the site's
// axis-aligned bounds until that building alone is in-bounds; once every
// building is placed, restart from scratch if the whole solution still
// has overlapping buildings.
func NewRandomSolution(buildings []ds.InputBuilding, site geom.NPolygon) (ds.Solution, error) {
	bounds := geom.BoundsOf(site)

	seen := llrb.New()
	for outer := 0; outer < maxPlacementAttempts; outer++ {
		sol := ds.NewSolution(len(buildings))
		for i := range buildings {
			if !placeOneBuilding(&sol, i, buildings, site, bounds) {
				return ds.Solution{}, ds.ErrInfeasibleInput
			}
		}

		if Feasible(sol, site, buildings) {
			return sol, nil
		}

		seen.ReplaceOrInsert(candidate{sol: sol, howBad: badness(sol, site, buildings)})
	}

	// Retry cap exhausted on a pathological site. Rather than returning the
	// last infeasible proposal tried, hand back the least-bad candidate
	// seen across every attempt.
	if min := seen.Min(); min != nil {
		return min.(candidate).sol, ds.ErrInfeasibleInput
	}
	return ds.Solution{}, ds.ErrInfeasibleInput
}

// placeOneBuilding resamples building i's (x, y, rot) until its rectangle
// lies inside site, committing the result into sol. Returns false if no
// in-bounds placement was found within the retry cap.
func placeOneBuilding(sol *ds.Solution, i int, buildings []ds.InputBuilding, site geom.NPolygon, bounds geom.AxisBounds) bool {
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		x := geom.SampleUniformReal(bounds.MinX, bounds.MaxX)
		y := geom.SampleUniformReal(bounds.MinY, bounds.MaxY)
		rot := geom.SampleUniformReal(0, 360)

		rect := geom.Rectangle{
			X: x, Y: y,
			Width:  float64(buildings[i].Width),
			Height: float64(buildings[i].Length),
			Angle:  rot,
		}
		if geom.RectWithinPolygon(rect, site) {
			sol.SetX(i, float32(x))
			sol.SetY(i, float32(y))
			sol.SetRotation(i, float32(rot))
			return true
		}
	}
	return false
}

// NewRandomPopulation builds n feasible individuals, each via
// NewRandomSolution. Fitness is not assigned; the caller is expected to
// evaluate each individual afterward.
func NewRandomPopulation(n int, buildings []ds.InputBuilding, site geom.NPolygon) (population.Population, error) {
	pop := make(population.Population, n)
	for i := 0; i < n; i++ {
		sol, err := NewRandomSolution(buildings, site)
		if err != nil {
			return nil, err
		}
		pop[i] = sol
	}
	return pop, nil
}
