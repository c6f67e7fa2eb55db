package kernel

import (
	"math"
	"math/rand"

	"github.com/quantedge/pathsim/pathrng"
	"github.com/quantedge/pathsim/sde"
	"github.com/quantedge/pathsim/timegrid"
)

// Euler1 advances one one-factor path under the Euler-Maruyama scheme:
//
//	x_{k+1} = x_k + mu(t_k,x_k)*Delta_k + sigma(t_k,x_k)*sqrt(Delta_k)*Z_k
//
// rng supplies the IID standard normal draws Z_k and must not be shared with
// any other concurrently-running path. Two normals are drawn per step and only
// the first is used, so the per-step draw budget matches the two-factor kernels.
func Euler1(s sde.Sde1, grid timegrid.Grid, rng *rand.Rand) ([]float64, error) {
	n := grid.N()
	path := make([]float64, n+1)
	path[0] = s.InitialCondition()

	for k := 0; k < n; k++ {
		t := grid.At(k)
		delta := grid.Step(k)
		x := path[k]

		z := pathrng.Normal(rng)
		_ = pathrng.Normal(rng)
		next := x + s.Drift(t, x)*delta + s.Diffusion(t, x)*math.Sqrt(delta)*z
		if !finite(next) {
			return nil, &NonFiniteError{Step: k + 1}
		}
		path[k+1] = next
	}
	return path, nil
}
