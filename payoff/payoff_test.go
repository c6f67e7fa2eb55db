package payoff_test

import (
	"testing"

	"github.com/quantedge/pathsim/ensemble"
	"github.com/quantedge/pathsim/payoff"
	"github.com/stretchr/testify/require"
)

func TestCall_PaysIntrinsicAtTerminal(t *testing.T) {
	call := payoff.Call(100)
	require.Equal(t, 20.0, call([]float64{90, 95, 120}))
	require.Equal(t, 0.0, call([]float64{90, 95, 80}))
}

func TestPut_PaysIntrinsicAtTerminal(t *testing.T) {
	put := payoff.Put(100)
	require.Equal(t, 20.0, put([]float64{110, 105, 80}))
	require.Equal(t, 0.0, put([]float64{110, 105, 120}))
}

func TestAsianAvgCall_UsesPathAverage(t *testing.T) {
	call := payoff.AsianAvgCall(100)
	// average of (90, 100, 110) is 100: at-the-money, zero payoff.
	require.Equal(t, 0.0, call([]float64{90, 100, 110}))
	// average of (100, 110, 120) is 110.
	require.InDelta(t, 10.0, call([]float64{100, 110, 120}), 1e-9)
}

func TestAsianAvgPut_UsesPathAverage(t *testing.T) {
	put := payoff.AsianAvgPut(100)
	require.InDelta(t, 10.0, put([]float64{100, 90, 80}), 1e-9)
}

func TestReduce_PreservesRowOrder(t *testing.T) {
	e := ensemble.New(3, 2)
	e.SetRow(0, []float64{100, 90, 80})
	e.SetRow(1, []float64{100, 100, 150})
	e.SetRow(2, []float64{100, 100, 100})

	vals := payoff.Reduce(e, payoff.Call(100))
	require.Equal(t, []float64{0, 50, 0}, vals)
}

func TestMeanDiscounted_AppliesDiscountFactor(t *testing.T) {
	vals := []float64{10, 20, 30}
	price := payoff.MeanDiscounted(vals, 0, 1)
	require.InDelta(t, 20.0, price, 1e-9)

	discounted := payoff.MeanDiscounted(vals, 0.05, 1)
	require.Less(t, discounted, 20.0)
}
