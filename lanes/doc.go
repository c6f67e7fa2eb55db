// Package lanes provides the accelerator (data-parallel) counterparts to the
// kernel package's CPU scheme kernels. Where kernel draws its normals from a
// per-path math/rand.Rand PRNG stream, lanes draws them from a per-lane cursor
// into a single shared 1-D Sobol low-discrepancy sequence (package sobol),
// modeling the "every lane executes the same kernel in lockstep, differing
// only in its quasi-random sub-stream" execution shape of a data-parallel
// accelerator target.
//
// Each function here owns a fresh sobol.Generator skipped to its lane before
// drawing the first uniform; no state is shared between lanes, so the
// pathsim driver can run every lane concurrently without synchronization
// beyond a single join at the end.
package lanes
