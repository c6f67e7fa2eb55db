package kernel

import (
	"math"
	"math/rand"

	"github.com/quantedge/pathsim/pathrng"
	"github.com/quantedge/pathsim/sde"
	"github.com/quantedge/pathsim/timegrid"
)

// Euler2 advances one two-factor path under the correlated Euler scheme. Given
// correlation rho, independent standard normals Z1, Z2 are drawn and combined
// into the correlated pair (W1, W2) = (Z1, rho*Z1 + sqrt(1-rho^2)*Z2):
//
//	x1_{k+1} = x1_k + mu1(t_k,x1_k,x2_k)*Delta + sigma1(t_k,x1_k,x2_k)*sqrt(Delta)*W1
//	x2_{k+1} = x2_k + mu2(t_k,x1_k,x2_k)*Delta + sigma2(t_k,x1_k,x2_k)*sqrt(Delta)*W2
//
// Both factors evaluate their coefficients at the pre-update state (explicit
// coupling). Only factor 1 is returned; factor 2 is an internal driver.
func Euler2(s sde.Sde2, grid timegrid.Grid, rng *rand.Rand) ([]float64, error) {
	n := grid.N()
	path := make([]float64, n+1)
	x1, x2 := s.InitialConditions()
	path[0] = x1

	rho := s.Correlation()
	sqrtOneMinusRho2 := math.Sqrt(1 - rho*rho)

	for k := 0; k < n; k++ {
		t := grid.At(k)
		delta := grid.Step(k)
		sqrtDelta := math.Sqrt(delta)

		z1 := pathrng.Normal(rng)
		z2 := pathrng.Normal(rng)
		w1 := z1
		w2 := rho*z1 + sqrtOneMinusRho2*z2

		mu1 := s.Drift1(t, x1, x2)
		sig1 := s.Diffusion1(t, x1, x2)
		mu2 := s.Drift2(t, x1, x2)
		sig2 := s.Diffusion2(t, x1, x2)

		nx1 := x1 + mu1*delta + sig1*sqrtDelta*w1
		nx2 := x2 + mu2*delta + sig2*sqrtDelta*w2
		if !finite(nx1) || !finite(nx2) {
			return nil, &NonFiniteError{Step: k + 1}
		}
		x1, x2 = nx1, nx2
		path[k+1] = x1
	}
	return path, nil
}
