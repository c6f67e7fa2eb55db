package kernel

import "github.com/quantedge/pathsim/numderiv"

// Milstein holds the configurable derivative step h used by the Milstein
// kernels. The zero value is not ready to use; construct with NewMilstein.
type Milstein struct {
	H float64
}

// MilsteinOption customizes a Milstein kernel's configuration.
type MilsteinOption func(*Milstein)

// WithStep overrides the central-difference step h. A non-positive h is a
// no-op, leaving the previous value (the default, unless another WithStep
// already ran) in place.
func WithStep(h float64) MilsteinOption {
	return func(m *Milstein) {
		if h > 0 {
			m.H = h
		}
	}
}

// NewMilstein builds a Milstein kernel configuration, defaulting H to
// numderiv.DefaultStep, then applying opts in order.
func NewMilstein(opts ...MilsteinOption) Milstein {
	m := Milstein{H: numderiv.DefaultStep}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}
