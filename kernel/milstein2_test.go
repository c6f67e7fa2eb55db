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

func TestMilstein2_PathLengthAndStart(t *testing.T) {
	s := gbmHestonLike(-0.3)
	grid, err := timegrid.Uniform(1.0, 10)
	require.NoError(t, err)
	m := kernel.NewMilstein()

	path, err := m.Milstein2(s, grid, pathrng.New(1, 0))
	require.NoError(t, err)
	require.Len(t, path, 11)
	require.Equal(t, 100.0, path[0])
}

func TestMilstein2_BothDiffusionsZeroReproducesODE(t *testing.T) {
	// With both diffusion coefficients identically zero, every correction term
	// (which all carry a sigma1 or sigma2 factor) vanishes, and factor 1 must
	// collapse to the deterministic drift-only recursion.
	const r = 0.06
	drift1 := func(t, x1, x2 float64) float64 { return r * x1 }
	drift2 := func(t, x1, x2 float64) float64 { return 0.1 * (0.02 - x2) }
	zero := func(t, x1, x2 float64) float64 { return 0 }
	s, err := sde.NewSde2(drift1, zero, 100, drift2, zero, 0.02, 0.4)
	require.NoError(t, err)

	grid, err := timegrid.Uniform(1.0, 30)
	require.NoError(t, err)
	m := kernel.NewMilstein()

	path, err := m.Milstein2(s, grid, pathrng.New(9, 4))
	require.NoError(t, err)

	delta := 1.0 / 30
	want := 100.0
	for k := 1; k <= 30; k++ {
		want *= 1 + r*delta
		require.InDelta(t, want, path[k], 1e-9)
	}
}

func TestMilstein2_ConstantDiffusionsMatchEuler2(t *testing.T) {
	// Constant (state-independent) diffusion coefficients have zero spatial
	// derivatives everywhere, so Milstein2's correction terms vanish and the
	// scheme must reduce to Euler2 for an identically-seeded stream.
	drift1 := func(t, x1, x2 float64) float64 { return 0.03 * x1 }
	diff1 := func(t, x1, x2 float64) float64 { return 0.25 }
	drift2 := func(t, x1, x2 float64) float64 { return 0.02 * x2 }
	diff2 := func(t, x1, x2 float64) float64 { return 0.1 }
	s, err := sde.NewSde2(drift1, diff1, 100, drift2, diff2, 50, 0.5)
	require.NoError(t, err)

	grid, err := timegrid.Uniform(1.0, 25)
	require.NoError(t, err)

	eulerPath, err := kernel.Euler2(s, grid, pathrng.New(13, 1))
	require.NoError(t, err)

	m := kernel.NewMilstein()
	milsteinPath, err := m.Milstein2(s, grid, pathrng.New(13, 1))
	require.NoError(t, err)

	for i := range eulerPath {
		require.InDelta(t, eulerPath[i], milsteinPath[i], 1e-6)
	}
}

func TestMilstein2_NonFiniteStateReported(t *testing.T) {
	drift1 := func(t, x1, x2 float64) float64 { return math.Inf(1) }
	zero := func(t, x1, x2 float64) float64 { return 0 }
	s, err := sde.NewSde2(drift1, zero, 100, zero, zero, 0, 0.2)
	require.NoError(t, err)

	grid, err := timegrid.Uniform(1.0, 5)
	require.NoError(t, err)
	m := kernel.NewMilstein()

	_, err = m.Milstein2(s, grid, pathrng.New(1, 0))
	require.ErrorIs(t, err, kernel.ErrNonFinite)
}

func TestMilstein2_DeterministicForSameSeed(t *testing.T) {
	s := gbmHestonLike(0.6)
	grid, err := timegrid.Uniform(1.0, 15)
	require.NoError(t, err)
	m := kernel.NewMilstein()

	p1, err := m.Milstein2(s, grid, pathrng.New(21, 2))
	require.NoError(t, err)
	p2, err := m.Milstein2(s, grid, pathrng.New(21, 2))
	require.NoError(t, err)
	require.Equal(t, p1, p2)
}
