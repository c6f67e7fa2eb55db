// Package kernel implements the CPU scheme kernels: the per-step numerical
// recurrences that advance a single path from t=0 to t=T under the
// Euler-Maruyama or Milstein discretisation, for one- or two-factor SDEs, over
// either a uniform or an explicit time grid.
//
// Every kernel here is a pure function of (sde, grid, rng): given the same
// inputs and the same sequence of draws from rng, the output path is bitwise
// reproducible. Kernels hold no state beyond the step index they are currently
// computing: there is no kernel object to configure beyond Milstein's
// derivative step h.
//
// t_k is always grid.At(k) — i.e. (k)*Delta for a uniform grid — never the raw
// step index; calling drift/diffusion with the bare step index instead of its
// time coordinate is a classic off-by-scale mistake for a non-trivial time
// grid, and a regression test pins the corrected behavior.
package kernel
