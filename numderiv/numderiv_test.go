package numderiv_test

import (
	"math"
	"testing"

	"github.com/quantedge/pathsim/numderiv"
	"github.com/stretchr/testify/require"
)

func TestCentral_LinearFunctionIsExact(t *testing.T) {
	f := func(x float64) float64 { return 3*x + 7 }
	got := numderiv.Central(f, 2.0, numderiv.DefaultStep)
	require.InDelta(t, 3.0, got, 1e-9)
}

func TestCentral_QuadraticMatchesAnalytic(t *testing.T) {
	// f(x) = x^2, f'(x) = 2x; central difference error is O(h^2), negligible at
	// the default step.
	f := func(x float64) float64 { return x * x }
	got := numderiv.Central(f, 5.0, numderiv.DefaultStep)
	require.InDelta(t, 10.0, got, 1e-6)
}

func TestCentral_SquareRootDiffusion(t *testing.T) {
	// sigma(x) = sqrt(x) (CEV-style), sigma'(x) = 1/(2 sqrt(x)).
	f := math.Sqrt
	got := numderiv.Central(f, 4.0, numderiv.DefaultStep)
	want := 1.0 / (2 * math.Sqrt(4.0))
	require.InDelta(t, want, got, 1e-6)
}
