package payoff

import (
	"math"

	"github.com/quantedge/pathsim/ensemble"
	"github.com/samber/lo"
)

// Payoff evaluates one path (the full time series, index 0..N) into a single
// terminal cash flow.
type Payoff func(path []float64) float64

// Call is the plain European call payoff, evaluated at the path's terminal
// value: max(0, S_N - strike).
func Call(strike float64) Payoff {
	return func(path []float64) float64 {
		return math.Max(0, terminal(path)-strike)
	}
}

// Put is the plain European put payoff: max(0, strike - S_N).
func Put(strike float64) Payoff {
	return func(path []float64) float64 {
		return math.Max(0, strike-terminal(path))
	}
}

// AsianAvgCall is the arithmetic-average Asian call payoff:
// max(0, mean(S_0..S_N) - strike).
func AsianAvgCall(strike float64) Payoff {
	return func(path []float64) float64 {
		return math.Max(0, average(path)-strike)
	}
}

// AsianAvgPut is the arithmetic-average Asian put payoff:
// max(0, strike - mean(S_0..S_N)).
func AsianAvgPut(strike float64) Payoff {
	return func(path []float64) float64 {
		return math.Max(0, strike-average(path))
	}
}

func terminal(path []float64) float64 { return path[len(path)-1] }

func average(path []float64) float64 {
	sum := lo.Reduce(path, func(acc float64, x float64, _ int) float64 { return acc + x }, 0.0)
	return sum / float64(len(path))
}

// Reduce applies p to every row of e and returns the per-path payoffs,
// preserving path order (row i -> result[i]).
func Reduce(e *ensemble.Ensemble, p Payoff) []float64 {
	rows := make([][]float64, e.Rows())
	for i := range rows {
		rows[i] = e.Row(i)
	}
	return lo.Map(rows, func(row []float64, _ int) float64 { return p(row) })
}

// MeanDiscounted discounts each payoff in values by exp(-rate*t) and returns
// the sample mean — the Monte Carlo price estimate.
func MeanDiscounted(values []float64, rate, t float64) float64 {
	df := math.Exp(-rate * t)
	sum := lo.Reduce(values, func(acc, v float64, _ int) float64 { return acc + v }, 0.0)
	return df * sum / float64(len(values))
}
