package pathrng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// New returns a deterministic *rand.Rand for the path at pathIndex, derived from
// masterSeed by mixing the two with a SplitMix64-style avalanche finalizer. Two
// calls with the same (masterSeed, pathIndex) always yield generators that produce
// the same sequence of draws; two different pathIndex values under the same
// masterSeed yield independent, decorrelated streams.
func New(masterSeed uint64, pathIndex uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(deriveSeed(masterSeed, pathIndex))))
}

// deriveSeed mixes a master seed and a path index into a new 64-bit seed using
// the canonical SplitMix64 finalizer constants (Vigna 2014): strong avalanche, so
// nearby path indices do not produce correlated streams.
func deriveSeed(masterSeed, pathIndex uint64) uint64 {
	x := masterSeed ^ (pathIndex + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// EntropySeed draws a fresh master seed from the operating system's entropy
// source. It is used when the caller supplies no master seed, matching the CPU
// regime's "draw per launch from an entropy source" behavior at the simulation
// level (a single draw seeds all path derivations for that run).
func EntropySeed() uint64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		// crypto/rand.Read on a supported platform does not fail in practice;
		// falling back to a fixed seed would be silently non-random, so panic
		// instead of masking a broken entropy source.
		panic("pathrng: entropy source unavailable: " + err.Error())
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// Normal draws one standard normal variate from r using the Go runtime's
// built-in transform.
func Normal(r *rand.Rand) float64 { return r.NormFloat64() }
