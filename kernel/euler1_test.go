package kernel_test

import (
	"math"
	"testing"

	"github.com/quantedge/pathsim/kernel"
	"github.com/quantedge/pathsim/pathrng"
	"github.com/quantedge/pathsim/sde"
	"github.com/quantedge/pathsim/timegrid"
	"github.com/stretchr/testify/require"
)

func TestEuler1_PathLengthAndStart(t *testing.T) {
	s := sde.NewSde1(
		func(t, x float64) float64 { return 0.05 * x },
		func(t, x float64) float64 { return 0.2 * x },
		100.0,
	)
	grid, err := timegrid.Uniform(1.0, 10)
	require.NoError(t, err)
	rng := pathrng.New(1, 0)

	path, err := kernel.Euler1(s, grid, rng)
	require.NoError(t, err)
	require.Len(t, path, 11)
	require.Equal(t, 100.0, path[0])
}

func TestEuler1_ZeroDiffusionReproducesODE(t *testing.T) {
	// dx = r*x dt, sigma=0 must reproduce the deterministic Euler-forward
	// recursion x_{k+1} = x_k*(1+r*Delta) exactly, independent of the RNG draws.
	const r = 0.05
	s := sde.NewSde1(
		func(t, x float64) float64 { return r * x },
		func(t, x float64) float64 { return 0 },
		100.0,
	)
	grid, err := timegrid.Uniform(1.0, 50)
	require.NoError(t, err)
	rng := pathrng.New(7, 3)

	path, err := kernel.Euler1(s, grid, rng)
	require.NoError(t, err)

	delta := 1.0 / 50
	want := 100.0
	for k := 1; k <= 50; k++ {
		want *= 1 + r*delta
		require.InDelta(t, want, path[k], 1e-9)
	}
}

func TestEuler1_UsesGridTimeNotRawIndex(t *testing.T) {
	// Regression: drift/diffusion must be evaluated at grid.At(k), the actual
	// time coordinate, not at the raw step index k. An explicit grid with
	// non-uniform spacing makes the two diverge immediately if confused.
	points := []float64{0, 0.1, 0.5, 1.2, 2.0}
	grid, err := timegrid.Explicit(points)
	require.NoError(t, err)

	var sawTimes []float64
	s := sde.NewSde1(
		func(t, x float64) float64 {
			sawTimes = append(sawTimes, t)
			return 0
		},
		func(t, x float64) float64 { return 0 },
		1.0,
	)
	rng := pathrng.New(1, 0)
	_, err = kernel.Euler1(s, grid, rng)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0.1, 0.5, 1.2}, sawTimes)
}

func TestEuler1_NonFiniteStateReported(t *testing.T) {
	s := sde.NewSde1(
		func(t, x float64) float64 { return math.Inf(1) },
		func(t, x float64) float64 { return 0 },
		1.0,
	)
	grid, err := timegrid.Uniform(1.0, 5)
	require.NoError(t, err)
	rng := pathrng.New(1, 0)

	_, err = kernel.Euler1(s, grid, rng)
	require.Error(t, err)
	require.ErrorIs(t, err, kernel.ErrNonFinite)

	var nfe *kernel.NonFiniteError
	require.ErrorAs(t, err, &nfe)
	require.Equal(t, 1, nfe.Step)
}

func TestEuler1_DeterministicForSameSeed(t *testing.T) {
	s := sde.NewSde1(
		func(t, x float64) float64 { return 0.03 * x },
		func(t, x float64) float64 { return 0.4 * x },
		50.0,
	)
	grid, err := timegrid.Uniform(2.0, 20)
	require.NoError(t, err)

	p1, err := kernel.Euler1(s, grid, pathrng.New(99, 5))
	require.NoError(t, err)
	p2, err := kernel.Euler1(s, grid, pathrng.New(99, 5))
	require.NoError(t, err)
	require.Equal(t, p1, p2)
}
