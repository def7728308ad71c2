package bpt

import (
	"fmt"

	"github.com/seanballais/libbpt/ds"
	"github.com/seanballais/libbpt/geom"
	"github.com/seanballais/libbpt/population"
)

// GA runs the generational loop: seed a population, then repeatedly
// select parents, breed and mutate offspring, and replace the population's
// tail with them. It also accumulates the per-generation statistics of
// the most recent run.
type GA struct {
	currentGen int
	stats      population.Stats

	// Verbose, when true, prints one line of progress before the initial
	// population is generated and one line at the start of each
	// generation, with plain fmt.Printf. Off by default; there is no
	// structured logger wired in, since nothing in this domain calls for
	// one beyond that.
	Verbose bool
}

// New returns a GA ready for its first run.
func New() *GA {
	return &GA{currentGen: -1}
}

func (g *GA) logf(format string, args ...interface{}) {
	if g.Verbose {
		fmt.Printf(format+"\n", args...)
	}
}

// GenerateSolutions runs the full GA: it seeds params.PopulationSize
// feasible individuals, then advances params.NumGenerations generations,
// returning a snapshot of the population after every generation
// (including the initial one, at index 0).
func (g *GA) GenerateSolutions(params Params) ([]population.Population, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	g.stats.Reset()

	g.logf("generating initial population of %d solutions", params.PopulationSize)
	pop, err := NewRandomPopulation(params.PopulationSize, params.Buildings, params.Site)
	if err != nil {
		return nil, err
	}
	EvaluatePopulation(pop, params.Buildings, params.Flows, params.FloodAreas, params.LandslideAreas,
		params.FloodPenalty, params.LandslidePenalty, params.DistanceWeight)
	pop.SortByFitness()

	generations := make([]population.Population, 0, params.NumGenerations+1)
	generations = append(generations, pop.Clone())
	g.recordStats(pop)

	numOffspringsToMake := params.PopulationSize - params.KeepPrevCount

	for gen := 0; gen < params.NumGenerations; gen++ {
		g.currentGen++
		g.logf("generation %d", g.currentGen)

		newOffsprings := make([]ds.Solution, numOffspringsToMake)
		numOffsprings := 0
		for numOffsprings < numOffspringsToMake {
			parentA, parentB := SelectParents(pop, params.TournamentSize, params.SelectionKind)
			numOffsprings = g.breed(parentA, parentB, newOffsprings, numOffsprings, numOffspringsToMake, params)
		}

		pop.SortByFitness()
		for i := params.KeepPrevCount; i < len(pop); i++ {
			pop[i] = newOffsprings[i-params.KeepPrevCount]
		}
		pop.SortByFitness()

		generations = append(generations, pop.Clone())
		g.recordStats(pop)
	}

	g.currentGen = -1
	return generations, nil
}

// breed crosses over the two parents into two children, coin-flip-mutates
// the first child and commits it, then either commits the second child
// outright (if there's still room) or only keeps it if it beats the
// current worst offspring produced this generation. Returns the updated
// offspring count.
func (g *GA) breed(
	parentA, parentB ds.Solution,
	offsprings []ds.Solution,
	numOffsprings, numOffspringsToMake int,
	params Params,
) int {
	childA, childB := Crossover(parentA, parentB, params.Site, params.Buildings)

	offsprings[numOffsprings] = childA
	g.evaluateAndMaybeMutate(&offsprings[numOffsprings], params)
	numOffsprings++

	if numOffsprings == numOffspringsToMake {
		weakestIdx := 0
		weakestFitness, _ := offsprings[0].Fitness()
		for i := 1; i < len(offsprings); i++ {
			f, _ := offsprings[i].Fitness()
			if f > weakestFitness {
				weakestFitness = f
				weakestIdx = i
			}
		}

		childBFitness := g.evaluate(childB, params)
		if childBFitness < weakestFitness {
			childB.SetFitness(childBFitness)
			offsprings[weakestIdx] = childB
			g.evaluateAndMaybeMutate(&offsprings[weakestIdx], params)
		}
	} else {
		offsprings[numOffsprings] = childB
		g.evaluateAndMaybeMutate(&offsprings[numOffsprings], params)
		numOffsprings++
	}

	return numOffsprings
}

func (g *GA) evaluate(sol ds.Solution, params Params) float64 {
	return SolutionFitness(sol, params.Buildings, params.Flows, params.FloodAreas, params.LandslideAreas,
		params.FloodPenalty, params.LandslidePenalty, params.DistanceWeight)
}

// evaluateAndMaybeMutate sets sol's fitness, then with probability
// params.MutationRate applies one mutation operator and re-evaluates.
func (g *GA) evaluateAndMaybeMutate(sol *ds.Solution, params Params) {
	sol.SetFitness(g.evaluate(*sol, params))

	if float32(geom.SampleUniformReal(0, 1)) < params.MutationRate {
		Mutate(sol, params.Site, params.Buildings)
		sol.SetFitness(g.evaluate(*sol, params))
	}
}

func (g *GA) recordStats(pop population.Population) {
	avg, _ := pop.AverageFitness()
	best, _ := pop.Best().Fitness()
	worst, _ := pop.Worst().Fitness()
	g.stats.Record(float32(avg), float32(best), float32(worst))
}

// CurrentRunGenerationNumber returns the generation GenerateSolutions is
// currently advancing, or -1 when no run is in progress.
func (g *GA) CurrentRunGenerationNumber() int {
	return g.currentGen
}

// RecentRunAverageFitnesses returns the per-generation average-fitness
// sequence from the most recently completed run, including the initial
// population as its first entry.
func (g *GA) RecentRunAverageFitnesses() []float32 { return g.stats.Average() }

// RecentRunBestFitnesses returns the per-generation best-fitness sequence
// from the most recently completed run.
func (g *GA) RecentRunBestFitnesses() []float32 { return g.stats.Best() }

// RecentRunWorstFitnesses returns the per-generation worst-fitness
// sequence from the most recently completed run.
func (g *GA) RecentRunWorstFitnesses() []float32 { return g.stats.Worst() }
