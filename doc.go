// Package pathsim is a Monte Carlo engine for simulating paths of stochastic
// differential equations used in quantitative finance.
//
// 🚀 What is pathsim?
//
//	A small, dependency-light library that brings together:
//
//	  • One- and two-factor SDE models (sde) with correlated Brownian drivers
//	  • Uniform and explicit time grids (timegrid)
//	  • Euler-Maruyama and Milstein discretization schemes (kernel, lanes)
//	  • A dense path ensemble (ensemble) ready for payoff evaluation
//
// ✨ Why choose pathsim?
//
//   - Two execution targets — goroutine-per-path on CPU, Sobol-driven
//     lane-parallel for data-parallel accelerators
//   - Deterministic         — a given seed (or lane index) always reproduces
//     the same path
//   - Explicit failure modes — a non-finite state halts the run and reports
//     exactly where it happened, never silently propagates NaN
//
// Under the hood, everything is organized under subpackages:
//
//	sde/       — one/two-factor SDE value types and the correlation invariant
//	timegrid/  — uniform and explicit time grids
//	kernel/    — CPU scheme kernels (Euler/Milstein x one/two-factor)
//	lanes/     — accelerator (Sobol, data-parallel) scheme kernels
//	ensemble/  — the M x (N+1) result matrix
//	model/     — GBM, ABM, CEV, Heston model builders
//	payoff/    — call/put/Asian payoff reducers over an ensemble
//	cmd/pathsim/ — a demonstration CLI
//
// Simulate is the single entry point; see its doc comment for the dispatch
// and error-handling contract.
package pathsim
