// Package pathrng provides deterministic per-path random generation for the CPU
// simulation regime.
//
// Goals:
//   - Determinism: same master seed and path index => identical normal draws
//     across runs on the same hardware/compiler configuration.
//   - Isolation: every path owns its own *rand.Rand; none is ever shared across
//     goroutines, since math/rand.Rand is not goroutine-safe.
//   - No hidden entropy: the only non-deterministic path is the explicit
//     no-seed-supplied case, which draws once from crypto/rand.
package pathrng
