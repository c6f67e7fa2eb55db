package lanes

import (
	"math"

	"github.com/quantedge/pathsim/kernel"
	"github.com/quantedge/pathsim/sde"
	"github.com/quantedge/pathsim/sobol"
	"github.com/quantedge/pathsim/timegrid"
)

// sobolNormal draws one standard normal from c via a single Box-Muller pair,
// keeping z0 and discarding z1: two uniforms consumed per step, one normal
// kept, so the per-step draw budget matches the two-factor lane kernels.
func sobolNormal(c *sobol.Cursor) float64 {
	u1, u2 := c.Next(), c.Next()
	z0, _ := sobol.BoxMuller(u1, u2)
	return z0
}

// Euler1 advances one one-factor path on lane under the Euler-Maruyama
// scheme, drawing its normals from a fresh Sobol cursor skipped to lane
// rather than from a PRNG stream. It is the accelerator-target analogue of
// kernel.Euler1 and implements the same recurrence bit-for-bit.
func Euler1(s sde.Sde1, grid timegrid.Grid, lane uint64) ([]float64, error) {
	cursor := sobol.NewGenerator().Skip(lane)

	n := grid.N()
	path := make([]float64, n+1)
	path[0] = s.InitialCondition()

	for k := 0; k < n; k++ {
		t := grid.At(k)
		delta := grid.Step(k)
		x := path[k]

		z := sobolNormal(cursor)
		next := x + s.Drift(t, x)*delta + s.Diffusion(t, x)*math.Sqrt(delta)*z
		if !finite(next) {
			return nil, &kernel.NonFiniteError{Step: k + 1}
		}
		path[k+1] = next
	}
	return path, nil
}
