package kernel

import (
	"math"
	"math/rand"

	"github.com/quantedge/pathsim/numderiv"
	"github.com/quantedge/pathsim/pathrng"
	"github.com/quantedge/pathsim/sde"
	"github.com/quantedge/pathsim/timegrid"
)

// Milstein1 advances one one-factor path under the Milstein scheme:
//
//	x_{k+1} = x_k + mu*Delta + sigma*sqrt(Delta)*Z
//	          + 0.5*sigma*sigma'_x*(Delta*Z^2 - Delta)
//
// where sigma'_x is the partial derivative of the diffusion coefficient with
// respect to x, evaluated at (t_k, x_k) by central finite difference with step
// m.H, reusing the same diffusion closure the step itself evaluates. Like
// Euler1, it draws two normals per step from rng and uses only the first.
func (m Milstein) Milstein1(s sde.Sde1, grid timegrid.Grid, rng *rand.Rand) ([]float64, error) {
	n := grid.N()
	path := make([]float64, n+1)
	path[0] = s.InitialCondition()

	for k := 0; k < n; k++ {
		t := grid.At(k)
		delta := grid.Step(k)
		x := path[k]

		z := pathrng.Normal(rng)
		_ = pathrng.Normal(rng)
		sigma := s.Diffusion(t, x)
		sigmaPrime := numderiv.Central(func(xx float64) float64 { return s.Diffusion(t, xx) }, x, m.H)
		sqrtDelta := math.Sqrt(delta)

		next := x +
			s.Drift(t, x)*delta +
			sigma*sqrtDelta*z +
			0.5*sigma*sigmaPrime*(delta*z*z-delta)
		if !finite(next) {
			return nil, &NonFiniteError{Step: k + 1}
		}
		path[k+1] = next
	}
	return path, nil
}
