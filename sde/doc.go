// Package sde defines the immutable stochastic differential equation (SDE) value
// objects consumed by the kernel, lanes, and pathsim packages.
//
// An Sde1 bundles a scalar drift, a scalar diffusion, and an initial condition for a
// one-factor model (dx = mu(t,x) dt + sigma(t,x) dW). An Sde2 pairs two such
// components with a correlation coefficient for a two-factor model with correlated
// Brownian drivers (e.g. an asset plus a stochastic variance factor).
//
// Both types are read-only once constructed: drift and diffusion are held as plain
// function values, never wrapped in an interface, so evaluating them in a kernel's
// inner loop costs a direct call, not a virtual dispatch. Neither type exposes a
// mutator; they are safe to share across goroutines as long as the drift/diffusion
// closures themselves are side-effect-free, which callers must guarantee.
package sde
