// Package numderiv provides the fixed-step central finite difference used by the
// Milstein kernels to approximate a diffusion coefficient's partial derivative
// without requiring callers to supply an analytic derivative.
//
// A general-purpose numerical differentiation library (e.g.
// gonum.org/v1/gonum/diff/fd) was deliberately not used here: its Derivative entry
// point builds a Settings value and dispatches through configurable step/origin/
// concurrency options on every call, which is the wrong shape for a derivative
// taken once per kernel step inside the system's hottest loop. Central is a
// two-line closure evaluation using a fixed h/2 offset, with no allocation and
// no indirection beyond the one call the kernel already needs to make into the
// diffusion closure.
package numderiv
