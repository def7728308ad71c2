package ds

import "github.com/seanballais/libbpt/geom"

// Solution is a fixed-shape genome: a flat sequence of (x, y, rot) gene
// triples, one per building, plus a cached fitness. The layout mirrors the
// original representation directly:
//
//	[ xPos of building 0, yPos of building 0, rotation of building 0, ... ]
type Solution struct {
	genes        []float32
	numBuildings int
	fitness      float64
	fitnessSet   bool
}

// NewSolution allocates a zero-filled genome for numBuildings buildings.
func NewSolution(numBuildings int) Solution {
	return Solution{
		genes:        make([]float32, numBuildings*3),
		numBuildings: numBuildings,
	}
}

// NumBuildings returns the number of buildings this solution positions.
func (s Solution) NumBuildings() int {
	return s.numBuildings
}

// X returns the x position of building i.
func (s Solution) X(i int) float32 { return s.genes[i*3] }

// Y returns the y position of building i.
func (s Solution) Y(i int) float32 { return s.genes[i*3+1] }

// Rotation returns the rotation, in degrees, of building i.
func (s Solution) Rotation(i int) float32 { return s.genes[i*3+2] }

// SetX sets the x position of building i.
func (s *Solution) SetX(i int, x float32) { s.genes[i*3] = x }

// SetY sets the y position of building i.
func (s *Solution) SetY(i int, y float32) { s.genes[i*3+1] = y }

// SetRotation sets the rotation, in degrees, of building i.
func (s *Solution) SetRotation(i int, rot float32) { s.genes[i*3+2] = rot }

// Fitness returns the cached fitness, or ErrFitnessNotSet if none has been
// assigned yet via SetFitness.
func (s Solution) Fitness() (float64, error) {
	if !s.fitnessSet {
		return 0, ErrFitnessNotSet
	}
	return s.fitness, nil
}

// SetFitness assigns the solution's cached fitness.
func (s *Solution) SetFitness(fitness float64) {
	s.fitness = fitness
	s.fitnessSet = true
}

// Clone returns a deep copy; the returned solution's gene slice does not
// alias s's, so mutating one cannot affect the other. Every mutation and
// crossover operator works on a Clone so that a rejected candidate never
// corrupts the solution it was proposed from.
func (s Solution) Clone() Solution {
	genes := make([]float32, len(s.genes))
	copy(genes, s.genes)
	return Solution{
		genes:        genes,
		numBuildings: s.numBuildings,
		fitness:      s.fitness,
		fitnessSet:   s.fitnessSet,
	}
}

// Equal reports whether s and other have element-wise float-equal gene
// vectors, within geom.Epsilon.
func (s Solution) Equal(other Solution) bool {
	if len(s.genes) != len(other.genes) {
		return false
	}
	for i := range s.genes {
		if !geom.FloatEquals(float64(s.genes[i]), float64(other.genes[i])) {
			return false
		}
	}
	return true
}
