package model

import (
	"math"

	"github.com/quantedge/pathsim/sde"
)

// GBM returns a one-factor geometric Brownian motion dx = mu*x dt + sigma*x dW,
// the standard Black-Scholes underlying process.
func GBM(mu, sigma, x0 float64) sde.Sde1 {
	return sde.NewSde1(
		func(t, x float64) float64 { return mu * x },
		func(t, x float64) float64 { return sigma * x },
		x0,
	)
}

// ABM returns a one-factor arithmetic Brownian motion dx = mu dt + sigma dW:
// constant drift and diffusion, independent of the current level.
func ABM(mu, sigma, x0 float64) sde.Sde1 {
	return sde.NewSde1(
		func(t, x float64) float64 { return mu },
		func(t, x float64) float64 { return sigma },
		x0,
	)
}

// CEV returns a one-factor constant elasticity of variance process
// dx = mu*x dt + sigma*x^beta dW. beta=1 recovers GBM; beta<1 produces the
// leverage effect (volatility rises as x falls) used to fit equity skew.
func CEV(mu, sigma, beta, x0 float64) sde.Sde1 {
	return sde.NewSde1(
		func(t, x float64) float64 { return mu * x },
		func(t, x float64) float64 { return sigma * math.Pow(x, beta) },
		x0,
	)
}

// Heston returns the two-factor Heston stochastic-volatility system:
//
//	dS = mu*S dt + sqrt(v)*S dW1
//	dv = kappa*(theta - v) dt + eta*sqrt(v) dW2
//
// with corr(dW1, dW2) = rho. The variance diffusion is floored at zero
// (max(v,0)) under the square root so a Euler/Milstein step that has pushed v
// slightly negative does not produce a NaN on the next step — the Heston
// literature's "full truncation" convention, not a silent validity weakening,
// since the process is only ever approximated by a discrete scheme to begin
// with. rho is validated by sde.NewSde2; a |rho|>1 call returns
// sde.ErrInvalidCorrelation.
func Heston(mu, kappa, theta, eta, rho, s0, v0 float64) (sde.Sde2, error) {
	diffS := func(t, s, v float64) float64 { return math.Sqrt(math.Max(v, 0)) * s }
	diffV := func(t, s, v float64) float64 { return eta * math.Sqrt(math.Max(v, 0)) }
	return sde.NewSde2(
		func(t, s, v float64) float64 { return mu * s }, diffS, s0,
		func(t, s, v float64) float64 { return kappa * (theta - v) }, diffV, v0,
		rho,
	)
}
