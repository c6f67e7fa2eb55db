// Package ensemble holds the M x (N+1) matrix of simulated paths a Simulate
// call produces: one row per path, one column per time-grid point.
//
// What & Why:
//
//	A Monte Carlo run's natural output shape is dense and rectangular — every
//	path shares the same time grid, so there are no ragged rows to accommodate.
//	Ensemble wraps a gonum/mat.Dense rather than a [][]float64 so that payoff
//	reducers and downstream statistical analysis (gonum/stat) can operate on
//	the result without a conversion step. Row returns a copy of a row; Dense
//	gives direct access to the backing matrix.
package ensemble
