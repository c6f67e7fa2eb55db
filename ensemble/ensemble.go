package ensemble

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Ensemble is an M x (N+1) matrix of simulated paths: row i is path i,
// column k is the state at time grid index k. Construct with New; the zero
// value is not ready to use.
type Ensemble struct {
	dense *mat.Dense
	m     int
	cols  int
}

// New allocates an Ensemble for m paths over a time grid with steps steps
// (steps+1 columns). Panics if m or steps is non-positive: this is an
// internal constructor called only by pathsim.Simulate after it has already
// validated the iteration count and time grid, so an invalid size here is a
// programmer error, not a caller-triggered condition.
func New(m, steps int) *Ensemble {
	if m <= 0 || steps <= 0 {
		panic(fmt.Sprintf("ensemble: invalid dimensions m=%d steps=%d", m, steps))
	}
	cols := steps + 1
	return &Ensemble{dense: mat.NewDense(m, cols, nil), m: m, cols: cols}
}

// SetRow copies path into row i. len(path) must equal e.Cols(); panics
// otherwise, for the same reason New panics on bad dimensions — the kernels
// that produce path always return exactly N+1 values for this ensemble's
// grid, so a mismatch here means the caller wired the wrong grid to the
// wrong ensemble.
func (e *Ensemble) SetRow(i int, path []float64) {
	if len(path) != e.cols {
		panic(fmt.Sprintf("ensemble: row length %d does not match %d columns", len(path), e.cols))
	}
	e.dense.SetRow(i, path)
}

// Row returns a copy of path i; mutating the returned slice does not change
// the Ensemble. In pathsim's driver every row is written exactly once, by
// exactly one goroutine, before any reader observes the Ensemble.
func (e *Ensemble) Row(i int) []float64 {
	row := make([]float64, e.cols)
	mat.Row(row, i, e.dense)
	return row
}

// Rows returns M, the number of simulated paths.
func (e *Ensemble) Rows() int { return e.m }

// Cols returns N+1, the number of time-grid points per path.
func (e *Ensemble) Cols() int { return e.cols }

// Dense exposes the underlying matrix for gonum/stat-based analysis or other
// consumers that want direct access instead of the Row accessor.
func (e *Ensemble) Dense() *mat.Dense { return e.dense }
