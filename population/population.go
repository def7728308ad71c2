// Package population holds the GA's population container and the run
// statistics recorded across generations, in the shape of
// github.com/rwcarlsen/optim's pswarm.Population (Best()) and
// population.NewRandom helpers.
package population

import (
	"sort"

	"github.com/seanballais/libbpt/ds"
)

// Population is an ordered sequence of solutions. After each generation the
// GA driver leaves it sorted ascending by fitness (smaller is better).
type Population []ds.Solution

// SortByFitness sorts pop ascending by fitness in place. Solutions with an
// unset fitness sort as if their fitness were +Inf, never happening in
// practice since the driver assigns fitness before sorting.
func (pop Population) SortByFitness() {
	sort.SliceStable(pop, func(i, j int) bool {
		fi, erri := pop[i].Fitness()
		fj, errj := pop[j].Fitness()
		if erri != nil {
			return false
		}
		if errj != nil {
			return true
		}
		return fi < fj
	})
}

// Best returns the population's best (lowest-fitness) solution. The
// population must be sorted first; Best just returns pop[0].
func (pop Population) Best() ds.Solution {
	return pop[0]
}

// Worst returns the population's worst (highest-fitness) solution. The
// population must be sorted first; Worst just returns the last element.
func (pop Population) Worst() ds.Solution {
	return pop[len(pop)-1]
}

// AverageFitness returns the mean fitness across the population. Every
// solution must have a fitness set.
func (pop Population) AverageFitness() (float64, error) {
	total := 0.0
	for _, sol := range pop {
		f, err := sol.Fitness()
		if err != nil {
			return 0, err
		}
		total += f
	}
	return total / float64(len(pop)), nil
}

// Clone returns a deep copy of pop; every solution's gene slice is copied,
// so mutating the clone cannot affect pop.
func (pop Population) Clone() Population {
	out := make(Population, len(pop))
	for i, sol := range pop {
		out[i] = sol.Clone()
	}
	return out
}
