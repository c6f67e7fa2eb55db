package lanes

import (
	"math"

	"github.com/quantedge/pathsim/kernel"
	"github.com/quantedge/pathsim/sde"
	"github.com/quantedge/pathsim/sobol"
	"github.com/quantedge/pathsim/timegrid"
)

// Euler2 advances one two-factor path on lane under the correlated Euler
// scheme. Both normals driving (W1, W2) come from the same Box-Muller pair
// drawn from lane's Sobol cursor — two uniforms in, two normals kept per
// step, unlike the one-factor lane kernels which discard the second.
func Euler2(s sde.Sde2, grid timegrid.Grid, rho float64, lane uint64) ([]float64, error) {
	cursor := sobol.NewGenerator().Skip(lane)
	sqrtOneMinusRho2 := math.Sqrt(1 - rho*rho)

	n := grid.N()
	path := make([]float64, n+1)
	x1, x2 := s.InitialConditions()
	path[0] = x1

	for k := 0; k < n; k++ {
		t := grid.At(k)
		delta := grid.Step(k)
		sqrtDelta := math.Sqrt(delta)

		u1, u2 := cursor.Next(), cursor.Next()
		z1, z2 := sobol.BoxMuller(u1, u2)
		w1 := z1
		w2 := rho*z1 + sqrtOneMinusRho2*z2

		mu1 := s.Drift1(t, x1, x2)
		sig1 := s.Diffusion1(t, x1, x2)
		mu2 := s.Drift2(t, x1, x2)
		sig2 := s.Diffusion2(t, x1, x2)

		nx1 := x1 + mu1*delta + sig1*sqrtDelta*w1
		nx2 := x2 + mu2*delta + sig2*sqrtDelta*w2
		if !finite(nx1) || !finite(nx2) {
			return nil, &kernel.NonFiniteError{Step: k + 1}
		}
		x1, x2 = nx1, nx2
		path[k+1] = x1
	}
	return path, nil
}
