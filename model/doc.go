// Package model builds ready-to-simulate sde.Sde1/sde.Sde2 values for the
// standard SDE families a derivatives pricer needs: geometric and arithmetic
// Brownian motion, constant elasticity of variance, and the Heston
// stochastic-volatility system. Each builder is a thin function, not a
// stateful type — unlike the C++ original's SdeBuilder class hierarchy, a Go
// closure already is the "drift/diffusion" pair, so there is nothing a
// builder object would hold that the returned sde.Sde1/sde.Sde2 does not.
package model
