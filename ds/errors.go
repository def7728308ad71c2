package ds

import "errors"

// ErrDimensionMismatch is returned when the flow matrix's dimensions do not
// match the number of input buildings.
var ErrDimensionMismatch = errors.New("libbpt: flow matrix dimensions do not match building count")

// ErrInfeasibleInput is returned when the caller supplies degenerate input
// that no amount of rejection sampling can resolve: zero buildings, a site
// polygon with fewer than 3 vertices, or a site with a zero-area bounding
// box.
var ErrInfeasibleInput = errors.New("libbpt: input cannot yield a feasible solution")

// ErrFitnessNotSet is returned by Solution.Fitness when no fitness has ever
// been assigned to the solution.
var ErrFitnessNotSet = errors.New("libbpt: solution fitness has not been set")
