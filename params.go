package bpt

import (
	"github.com/seanballais/libbpt/ds"
	"github.com/seanballais/libbpt/geom"
)

// Default parameter values, exported as package constants alongside an
// options struct rather than parsed from a config file (compare
// pswarm.DefaultCognition/DefaultSocial/DefaultInertia in
// github.com/rwcarlsen/optim).
const (
	DefaultTournamentSize  = 4
	DefaultMutationRate    = 0.1
	DefaultFloodPenalty    = 1000.0
	DefaultLandslidePenalty = 1000.0
	DefaultDistanceWeight  = 1.0
)

// Params bundles every argument GenerateSolutions needs, so that callers
// configure a run by filling in a struct rather than passing fifteen
// positional arguments.
type Params struct {
	Buildings      []ds.InputBuilding
	Site           geom.NPolygon
	Flows          ds.FlowMatrix
	FloodAreas     []geom.NPolygon
	LandslideAreas []geom.NPolygon

	MutationRate    float32
	PopulationSize  int
	NumGenerations  int
	TournamentSize  int
	KeepPrevCount   int
	FloodPenalty    float32
	LandslidePenalty float32
	DistanceWeight  float32

	// LocalSearchEnabled is accepted for interface compatibility with
	// callers that still pass it, but is never read: no local-search or
	// hill-climbing refinement step is implemented here.
	LocalSearchEnabled bool

	SelectionKind ds.SelectionKind
}

// Validate checks the entry-time preconditions GenerateSolutions needs to
// fail fast on: flow-matrix dimensions matching the building count, and a
// usable site polygon.
func (p Params) Validate() error {
	if p.Flows.NumBuildings() != len(p.Buildings) {
		return ds.ErrDimensionMismatch
	}
	if len(p.Buildings) == 0 {
		return ds.ErrInfeasibleInput
	}
	if p.Site.Len() < 3 {
		return ds.ErrInfeasibleInput
	}
	bounds := geom.BoundsOf(p.Site)
	if bounds.Area() <= 0 {
		return ds.ErrInfeasibleInput
	}
	return nil
}
