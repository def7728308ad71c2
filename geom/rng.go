package geom

import (
	"math/rand"
	"time"
)

// Rand is the process-wide random source every sampling call in this module
// draws from. It is a package variable, same as pop.Rand in
// github.com/rwcarlsen/optim/pop, so that callers can reseed it
// (Rand = rand.New(rand.NewSource(seed))) for deterministic runs without
// threading a generator through every function signature. Nothing in this
// module seeds it on its own - that's a caller responsibility.
var Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

// SampleUniformReal draws a float64 uniformly from [lo, hi).
func SampleUniformReal(lo, hi float64) float64 {
	return lo + Rand.Float64()*(hi-lo)
}

// SampleUniformInt draws an int uniformly from [lo, hi], inclusive on both
// ends.
func SampleUniformInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + Rand.Intn(hi-lo+1)
}
