package bpt

import (
	"github.com/seanballais/libbpt/ds"
	"github.com/seanballais/libbpt/geom"
)

const (
	jiggleMaxShift    = 1.0
	jiggleMaxRotShift = 5.0
)

// Mutate dispatches to one of the three move operators uniformly at
// random and applies it to sol in place. Each operator proposes a change,
// checks whole-solution feasibility, and retries from the pre-mutation
// state until a feasible result is found.
//
// Buddy-buddy needs two distinct buildings to pick a static and a dynamic
// one; with a single building that draw can never succeed, so it's taken
// out of the draw entirely and replaced with shake.
func Mutate(sol *ds.Solution, site geom.NPolygon, buildings []ds.InputBuilding) {
	kind := ds.MutationKind(geom.SampleUniformInt(0, 2))
	if len(buildings) < 2 && kind == ds.MutationBuddyBuddy {
		kind = ds.MutationShake
	}

	switch kind {
	case ds.MutationBuddyBuddy:
		applyBuddyBuddyMutation(sol, site, buildings)
	case ds.MutationShake:
		applyShakingMutation(sol, site, buildings)
	case ds.MutationJiggle:
		applyJiggleMutation(sol, site, buildings)
	}
}

// applyBuddyBuddyMutation picks two distinct buildings, a static buddy and
// a dynamic one, picks one side of the static buddy's rectangle as the
// contact line, and moves the dynamic buddy to a position computed from
// that line, a random slide fraction t, and the dynamic buddy's own
// extents. The proposal is kept only if the whole solution is feasible.
//
// BUG(source): when orientation selects the "perpendicular" branch, the
// dynamic buddy's angle is set to contactLineAngle+45, not +90. A
// genuinely perpendicular placement would need a right angle added to the
// contact line's own angle; the 45-degree offset below is carried over
// unchanged from the routine this is modeled on.
func applyBuddyBuddyMutation(sol *ds.Solution, site geom.NPolygon, buildings []ds.InputBuilding) {
	n := len(buildings)
	best := sol.Clone()
	bestBad := badness(best, site, buildings)
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		tmp := sol.Clone()

		var staticBuddy, dynamicBuddy int
		for {
			staticBuddy = geom.SampleUniformInt(0, n-1)
			dynamicBuddy = geom.SampleUniformInt(0, n-1)
			if staticBuddy != dynamicBuddy {
				break
			}
		}

		staticRect := buildingRect(*sol, buildings, staticBuddy)
		buddyPoly := staticRect.ToPolygon()

		var contactLine geom.Line
		switch geom.SampleUniformInt(0, 3) {
		case 0:
			contactLine = geom.Line{Start: buddyPoly.Vertices[0], End: buddyPoly.Vertices[1]}
		case 1:
			contactLine = geom.Line{Start: buddyPoly.Vertices[1], End: buddyPoly.Vertices[2]}
		case 2:
			contactLine = geom.Line{Start: buddyPoly.Vertices[2], End: buddyPoly.Vertices[3]}
		case 3:
			contactLine = geom.Line{Start: buddyPoly.Vertices[3], End: buddyPoly.Vertices[0]}
		}

		contactVec := contactLine.ToVec()
		contactAngle := contactVec.Angle()

		var distContactToCenter, extLength, dynamicAngle float64
		if geom.SampleUniformInt(0, 1) == 0 {
			// Dynamic buddy parallel to the contact line.
			distContactToCenter = float64(buildings[dynamicBuddy].Width) / 2
			extLength = float64(buildings[dynamicBuddy].Length) / 2
			dynamicAngle = contactAngle
		} else {
			// Dynamic buddy meant to be perpendicular to the contact line.
			distContactToCenter = float64(buildings[dynamicBuddy].Length) / 2
			extLength = float64(buildings[dynamicBuddy].Width) / 2
			dynamicAngle = contactAngle + 45
		}

		distContactToCenter += 1e-4

		buddyMidRelContact := geom.V(0, extLength*2).Rotate(contactAngle).Add(contactVec)
		buddyMidRelContactStart := geom.V(0, -extLength).Rotate(contactAngle).Add(contactLine.Start)

		t := geom.SampleUniformReal(0, 1)
		dynamicPos := buddyMidRelContact.Scale(t).
			Add(geom.V(0, distContactToCenter).Rotate(contactAngle).Perp()).
			Add(buddyMidRelContactStart)

		tmp.SetX(dynamicBuddy, float32(dynamicPos.X))
		tmp.SetY(dynamicBuddy, float32(dynamicPos.Y))
		tmp.SetRotation(dynamicBuddy, float32(dynamicAngle))

		if Feasible(tmp, site, buildings) {
			*sol = tmp
			return
		}
		if bad := badness(tmp, site, buildings); bad < bestBad {
			best, bestBad = tmp, bad
		}
	}

	// Retry cap exhausted; settle for the least-infeasible proposal seen
	// rather than spinning forever.
	*sol = best
}

// applyShakingMutation resamples one building's full gene triple - x, y,
// and rotation - uniformly within the site's bounds, leaving every other
// building untouched.
func applyShakingMutation(sol *ds.Solution, site geom.NPolygon, buildings []ds.InputBuilding) {
	bounds := geom.BoundsOf(site)
	target := geom.SampleUniformInt(0, sol.NumBuildings()-1)

	best := sol.Clone()
	bestBad := badness(best, site, buildings)
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		tmp := sol.Clone()
		tmp.SetX(target, float32(geom.SampleUniformReal(bounds.MinX, bounds.MaxX)))
		tmp.SetY(target, float32(geom.SampleUniformReal(bounds.MinY, bounds.MaxY)))
		tmp.SetRotation(target, float32(geom.SampleUniformReal(0, 360)))

		if Feasible(tmp, site, buildings) {
			*sol = tmp
			return
		}
		if bad := badness(tmp, site, buildings); bad < bestBad {
			best, bestBad = tmp, bad
		}
	}

	*sol = best
}

// jiggleMove is one of the eight small nudges applyJiggleMutation picks
// among. Each takes the working solution and the target building index
// and returns the nudged solution.
type jiggleMove func(ds.Solution, int) ds.Solution

// jiggleMoves mirrors the eight move patterns this is modeled on exactly,
// including two that read the wrong axis.
//
// BUG(source): moves 2 and 3 (0-indexed) set the building's Y position
// from its own X position instead of its Y position, so they jump the
// building to a different row instead of nudging it - an axis aliasing
// bug carried over unchanged from the source.
var jiggleMoves = [8]jiggleMove{
	func(sol ds.Solution, i int) ds.Solution {
		shift := geom.SampleUniformReal(0, jiggleMaxShift)
		sol.SetX(i, sol.X(i)+float32(shift))
		return sol
	},
	func(sol ds.Solution, i int) ds.Solution {
		shift := geom.SampleUniformReal(0, jiggleMaxShift)
		sol.SetX(i, sol.X(i)-float32(shift))
		return sol
	},
	func(sol ds.Solution, i int) ds.Solution {
		shift := geom.SampleUniformReal(0, jiggleMaxShift)
		sol.SetY(i, sol.X(i)-float32(shift))
		return sol
	},
	func(sol ds.Solution, i int) ds.Solution {
		shift := geom.SampleUniformReal(0, jiggleMaxShift)
		sol.SetY(i, sol.X(i)+float32(shift))
		return sol
	},
	func(sol ds.Solution, i int) ds.Solution {
		a := geom.SampleUniformReal(0, jiggleMaxShift)
		b := geom.SampleUniformReal(0, jiggleMaxShift)
		sol.SetX(i, sol.X(i)+float32(a))
		sol.SetY(i, sol.Y(i)-float32(b))
		return sol
	},
	func(sol ds.Solution, i int) ds.Solution {
		a := geom.SampleUniformReal(0, jiggleMaxShift)
		b := geom.SampleUniformReal(0, jiggleMaxShift)
		sol.SetX(i, sol.X(i)+float32(a))
		sol.SetY(i, sol.Y(i)+float32(b))
		return sol
	},
	func(sol ds.Solution, i int) ds.Solution {
		a := geom.SampleUniformReal(0, jiggleMaxShift)
		b := geom.SampleUniformReal(0, jiggleMaxShift)
		sol.SetX(i, sol.X(i)-float32(a))
		sol.SetY(i, sol.Y(i)-float32(b))
		return sol
	},
	func(sol ds.Solution, i int) ds.Solution {
		a := geom.SampleUniformReal(0, jiggleMaxShift)
		b := geom.SampleUniformReal(0, jiggleMaxShift)
		sol.SetX(i, sol.X(i)-float32(a))
		sol.SetY(i, sol.Y(i)+float32(b))
		return sol
	},
}

// applyJiggleMutation nudges one building by a small random amount, using
// one of the eight jiggleMoves, and independently perturbs its rotation
// by up to 5 degrees in either direction.
func applyJiggleMutation(sol *ds.Solution, site geom.NPolygon, buildings []ds.InputBuilding) {
	n := len(buildings)
	best := sol.Clone()
	bestBad := badness(best, site, buildings)
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		tmp := sol.Clone()

		target := geom.SampleUniformInt(0, n-1)
		move := jiggleMoves[geom.SampleUniformInt(0, len(jiggleMoves)-1)]
		tmp = move(tmp, target)

		rotDelta := geom.SampleUniformReal(-jiggleMaxRotShift, jiggleMaxRotShift)
		tmp.SetRotation(target, tmp.Rotation(target)+float32(rotDelta))

		if Feasible(tmp, site, buildings) {
			*sol = tmp
			return
		}
		if bad := badness(tmp, site, buildings); bad < bestBad {
			best, bestBad = tmp, bad
		}
	}

	*sol = best
}
