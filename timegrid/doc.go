// Package timegrid builds the ordered time points (t0=0, t1, ..., tN) a kernel steps
// through, in one of two shapes:
//
//   - Uniform: derived compactly from (T, N); the package stores only T, N and
//     Delta=T/N, never materializing all N+1 points, since most kernels only ever
//     need the constant step.
//   - Explicit: a caller-supplied ordered sequence of time points, validated to be
//     strictly increasing and to start at zero.
//
// Both shapes satisfy the same Grid accessor surface so kernels can treat them
// uniformly via At/Step/N; for a uniform grid At and Step compute from Delta, and
// Uniform reports Delta directly.
package timegrid
