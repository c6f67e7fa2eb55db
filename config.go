package pathsim

import (
	"github.com/quantedge/pathsim/numderiv"
	"github.com/quantedge/pathsim/pathrng"
)

// Scheme selects the discretization scheme a simulation uses.
type Scheme int

const (
	// Euler selects the Euler-Maruyama scheme.
	Euler Scheme = iota
	// MilsteinScheme selects the Milstein scheme.
	MilsteinScheme
)

// Target selects the execution model: goroutine-per-path with a PRNG stream
// (CPU) or lane-parallel with a Sobol low-discrepancy sequence (Accelerator).
type Target int

const (
	// CPU dispatches one goroutine per path, each with its own PRNG stream.
	CPU Target = iota
	// Accelerator dispatches one goroutine per lane, each with its own Sobol
	// cursor — the data-parallel execution shape.
	Accelerator
)

// config holds Simulate's resolved options. The zero value is not ready to
// use; build it with newConfig.
type config struct {
	seed         uint64
	seedExplicit bool
	milsteinStep float64
	target       Target
}

// Option customizes a Simulate call by mutating an unexported config.
type Option func(*config)

// WithSeed fixes the CPU target's master seed for reproducible runs. Without
// it, Simulate draws a fresh seed from the entropy source for each call.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seedExplicit = true
	}
}

// WithMilsteinStep overrides the central-difference step used by Milstein
// kernels. A non-positive h is a no-op, leaving the previous value (the
// default, unless another WithMilsteinStep already ran) in place.
func WithMilsteinStep(h float64) Option {
	return func(c *config) {
		if h > 0 {
			c.milsteinStep = h
		}
	}
}

// WithTarget selects the execution target; the default is CPU.
func WithTarget(t Target) Option {
	return func(c *config) {
		c.target = t
	}
}

// newConfig builds a config with defaults, then applies opts in order; later
// options override earlier ones.
func newConfig(opts ...Option) *config {
	c := &config{
		milsteinStep: numderiv.DefaultStep,
		target:       CPU,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// resolveSeed returns the configured seed, or a fresh one from the entropy
// source if the caller never called WithSeed.
func (c *config) resolveSeed() uint64 {
	if c.seedExplicit {
		return c.seed
	}
	return pathrng.EntropySeed()
}
