package lanes

import (
	"math"

	"github.com/quantedge/pathsim/kernel"
	"github.com/quantedge/pathsim/numderiv"
	"github.com/quantedge/pathsim/sde"
	"github.com/quantedge/pathsim/sobol"
	"github.com/quantedge/pathsim/timegrid"
)

// Milstein1 advances one one-factor path on lane under the Milstein scheme,
// drawing its normal from a fresh Sobol cursor skipped to lane. h is the
// central-difference step for the diffusion derivative, mirroring
// kernel.Milstein.H — there is no accelerator-side equivalent of
// kernel.NewMilstein's functional-options configuration because a lane
// function takes no other configurable state.
func Milstein1(s sde.Sde1, grid timegrid.Grid, h float64, lane uint64) ([]float64, error) {
	cursor := sobol.NewGenerator().Skip(lane)

	n := grid.N()
	path := make([]float64, n+1)
	path[0] = s.InitialCondition()

	for k := 0; k < n; k++ {
		t := grid.At(k)
		delta := grid.Step(k)
		x := path[k]

		z := sobolNormal(cursor)
		sigma := s.Diffusion(t, x)
		sigmaPrime := numderiv.Central(func(xx float64) float64 { return s.Diffusion(t, xx) }, x, h)
		sqrtDelta := math.Sqrt(delta)

		next := x +
			s.Drift(t, x)*delta +
			sigma*sqrtDelta*z +
			0.5*sigma*sigmaPrime*(delta*z*z-delta)
		if !finite(next) {
			return nil, &kernel.NonFiniteError{Step: k + 1}
		}
		path[k+1] = next
	}
	return path, nil
}
