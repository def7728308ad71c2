package bpt

import (
	"github.com/seanballais/libbpt/ds"
	"github.com/seanballais/libbpt/geom"
	"github.com/seanballais/libbpt/population"
)

// SelectParents picks two parents out of pop according to kind. pop must
// already have a fitness set on every individual.
//
// BUG(source): the switch this is modeled on has no break after the
// roulette-wheel case, so asking for SelectionRouletteWheel always runs
// tournament selection afterward and returns its result instead -
// roulette wheel's own result is computed and then thrown away. The
// fallthrough below reproduces that exactly; SelectionTournament and
// SelectionNone are unaffected since they're the last two cases.
func SelectParents(pop population.Population, tournamentSize int, kind ds.SelectionKind) (ds.Solution, ds.Solution) {
	var a, b ds.Solution
	switch kind {
	case ds.SelectionRouletteWheel:
		a, b = rouletteWheelSelection(pop)
		fallthrough
	case ds.SelectionTournament:
		a, b = tournamentSelection(pop, tournamentSize)
	default:
		// SelectionNone: no selection pressure, just copy the first two
		// individuals in the population.
		a, b = pop[0].Clone(), pop[1].Clone()
	}

	return a, b
}

// rouletteWheelSelection implements fitness-proportionate selection,
// adapted from the stackoverflow-sourced routine this is modeled on.
//
// BUG(source): the inner scan subtracts upperBound-popFitnesses[i] using
// the outer per-parent loop index i rather than the inner scan index j,
// so the wheel position is compared against the same fitness value
// (population[i]'s) on every iteration of the inner loop instead of
// walking the population. Reproduced unchanged below.
func rouletteWheelSelection(pop population.Population) (ds.Solution, ds.Solution) {
	n := len(pop)
	fitnesses := make([]float64, n)
	fitnessSum := 0.0
	maxFitness := pop[0]
	minFitness := pop[0]
	for i := 0; i < n; i++ {
		f, _ := pop[i].Fitness()
		fitnesses[i] = f
		fitnessSum += f

		if mf, _ := maxFitness.Fitness(); f > mf {
			maxFitness = pop[i]
		}
		if mf, _ := minFitness.Fitness(); f < mf {
			minFitness = pop[i]
		}
	}

	maxF, _ := maxFitness.Fitness()
	minF, _ := minFitness.Fitness()
	upperBound := maxF + minF

	var parents [2]ds.Solution
	for i := 0; i < 2; i++ {
		p := geom.SampleUniformReal(0, fitnessSum)
		parents[i] = pop[0]
		for j := 0; j < n; j++ {
			p -= upperBound - fitnesses[i]

			if geom.FloatLessEqual(p, 0) {
				parents[i] = pop[j]
				break
			}
		}
	}

	return parents[0], parents[1]
}

// tournamentSelection draws tournamentSize individuals with replacement
// and keeps the best and second-best seen.
func tournamentSelection(pop population.Population, tournamentSize int) (ds.Solution, ds.Solution) {
	var parents [2]ds.Solution
	for j := 0; j < tournamentSize; j++ {
		idx := geom.SampleUniformInt(0, len(pop)-1)
		candidateFitness, _ := pop[idx].Fitness()
		firstFitness, _ := parents[0].Fitness()
		secondFitness, _ := parents[1].Fitness()

		if j == 0 || candidateFitness < firstFitness {
			parents[1] = parents[0]
			parents[0] = pop[idx]
		} else if parents[1].NumBuildings() == 0 || candidateFitness < secondFitness {
			parents[1] = pop[idx]
		}
	}

	return parents[0], parents[1]
}
