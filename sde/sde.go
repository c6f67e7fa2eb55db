package sde

import "math"

// Drift1 is the drift coefficient mu(t, x) of a one-factor SDE.
type Drift1 func(t, x float64) float64

// Diffusion1 is the diffusion coefficient sigma(t, x) of a one-factor SDE.
type Diffusion1 func(t, x float64) float64

// Drift2 is the drift coefficient of one factor of a two-factor SDE; it observes
// both the factor's own state and the companion factor's state.
type Drift2 func(t, x1, x2 float64) float64

// Diffusion2 is the diffusion coefficient of one factor of a two-factor SDE.
type Diffusion2 func(t, x1, x2 float64) float64

// Sde1 is an immutable one-factor SDE: dx = drift(t,x) dt + diffusion(t,x) dW.
//
// Sde1 is a small value type (three fields, two of which are closures); copying it
// is cheap and intentional — every goroutine simulating an independent path holds
// its own copy-by-value of the same Sde1, never a shared pointer, so there is
// nothing to synchronize as long as drift and diffusion are themselves reentrant.
type Sde1 struct {
	drift     Drift1
	diffusion Diffusion1
	initial   float64
}

// NewSde1 builds a one-factor SDE from a drift, a diffusion, and an initial
// condition. drift and diffusion must be pure functions of (t, x): the kernel
// package calls them repeatedly, including twice per Milstein step for the
// central-difference derivative, and assumes no observable side effects.
func NewSde1(drift Drift1, diffusion Diffusion1, x0 float64) Sde1 {
	return Sde1{drift: drift, diffusion: diffusion, initial: x0}
}

// Drift evaluates the drift coefficient at (t, x).
func (s Sde1) Drift(t, x float64) float64 { return s.drift(t, x) }

// Diffusion evaluates the diffusion coefficient at (t, x).
func (s Sde1) Diffusion(t, x float64) float64 { return s.diffusion(t, x) }

// InitialCondition returns x0.
func (s Sde1) InitialCondition() float64 { return s.initial }

// Sde2 is an immutable two-factor SDE system with correlated Brownian drivers.
// Factor 1 is the "observed" process (the one surfaced in the returned ensemble);
// factor 2 is an internal driver that may feed into factor 1's coefficients (e.g.
// stochastic variance in a Heston-style model).
type Sde2 struct {
	drift1, drift2         Drift2
	diffusion1, diffusion2 Diffusion2
	x10, x20               float64
	rho                    float64
}

// NewSde2 builds a two-factor SDE system. rho is the instantaneous correlation
// between the two Brownian drivers and must satisfy |rho| <= 1, or
// ErrInvalidCorrelation is returned.
func NewSde2(
	drift1 Drift2, diffusion1 Diffusion2, x10 float64,
	drift2 Drift2, diffusion2 Diffusion2, x20 float64,
	rho float64,
) (Sde2, error) {
	if math.Abs(rho) > 1 {
		return Sde2{}, ErrInvalidCorrelation
	}
	return Sde2{
		drift1: drift1, diffusion1: diffusion1, x10: x10,
		drift2: drift2, diffusion2: diffusion2, x20: x20,
		rho: rho,
	}, nil
}

// Drift1 evaluates factor 1's drift at the pre-update state (t, x1, x2).
func (s Sde2) Drift1(t, x1, x2 float64) float64 { return s.drift1(t, x1, x2) }

// Diffusion1 evaluates factor 1's diffusion at the pre-update state (t, x1, x2).
func (s Sde2) Diffusion1(t, x1, x2 float64) float64 { return s.diffusion1(t, x1, x2) }

// Drift2 evaluates factor 2's drift at the pre-update state (t, x1, x2).
func (s Sde2) Drift2(t, x1, x2 float64) float64 { return s.drift2(t, x1, x2) }

// Diffusion2 evaluates factor 2's diffusion at the pre-update state (t, x1, x2).
func (s Sde2) Diffusion2(t, x1, x2 float64) float64 { return s.diffusion2(t, x1, x2) }

// InitialConditions returns (x1_0, x2_0).
func (s Sde2) InitialConditions() (float64, float64) { return s.x10, s.x20 }

// Correlation returns rho, the instantaneous correlation between the two drivers.
func (s Sde2) Correlation() float64 { return s.rho }
