package ds

import (
	"github.com/gonum/matrix/mat64"
)

// FlowMatrix is the B x B matrix of non-negative inter-building
// interaction weights. flow.At(i, j) is the weight between buildings i and
// j; only off-diagonal entries are used by the evaluator.
type FlowMatrix struct {
	m *mat64.Dense
}

// NewFlowMatrix builds a FlowMatrix from a row-major slice of rows. Every
// row must have the same length as the number of rows (a square matrix);
// ErrDimensionMismatch otherwise.
func NewFlowMatrix(rows [][]float32) (FlowMatrix, error) {
	n := len(rows)
	data := make([]float64, 0, n*n)
	for _, row := range rows {
		if len(row) != n {
			return FlowMatrix{}, ErrDimensionMismatch
		}
		for _, v := range row {
			data = append(data, float64(v))
		}
	}
	return FlowMatrix{m: mat64.NewDense(n, n, data)}, nil
}

// NumBuildings returns the matrix's dimension B.
func (f FlowMatrix) NumBuildings() int {
	if f.m == nil {
		return 0
	}
	r, _ := f.m.Dims()
	return r
}

// At returns flow[i][j].
func (f FlowMatrix) At(i, j int) float64 {
	return f.m.At(i, j)
}
