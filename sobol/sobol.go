package sobol

import "math"

const bits = 32
const scale = float64(uint64(1) << bits)

// Generator holds the direction numbers for a 1-dimension Sobol sequence. The
// direction numbers are fixed (there is no primitive-polynomial choice to make
// for a single dimension) and never mutated after construction, so a Generator
// is safe to share read-only across every lane.
type Generator struct {
	v [bits + 1]uint64 // v[1..bits]; v[0] unused
}

// NewGenerator builds the canonical 1-dimension direction numbers v_c = 2^(32-c).
func NewGenerator() *Generator {
	g := &Generator{}
	for c := 1; c <= bits; c++ {
		g.v[c] = uint64(1) << uint(bits-c)
	}
	return g
}

// Cursor is a lane-local position in the sequence. It is not safe for concurrent
// use by more than one goroutine; each lane must hold its own Cursor.
type Cursor struct {
	gen   *Generator
	index uint64
}

// Skip returns a Cursor positioned so that its first Next() call yields the
// sequence value at offset lane, per the direction-numbers domain: the state is
// computed as the XOR, over every bit set in the Gray code of lane, of the
// corresponding direction number — never by drawing and discarding `lane` prior
// values. This is what makes independent lanes independently reproducible.
func (g *Generator) Skip(lane uint64) *Cursor {
	return &Cursor{gen: g, index: lane}
}

// Next returns the next uniform variate in [0,1) from the Cursor's sub-stream;
// the value at sequence position 0 is exactly 0.
func (c *Cursor) Next() float64 {
	x := c.gen.stateAt(c.index)
	c.index++
	return float64(x) / scale
}

// stateAt computes the Sobol sequence value at 0-indexed position n via the
// closed-form Gray-code construction: gray(n) = n XOR (n>>1); the result is the
// XOR of v[b+1] over every bit b set in gray(n).
func (g *Generator) stateAt(n uint64) uint64 {
	gray := n ^ (n >> 1)
	var x uint64
	for b := uint(0); b < bits; b++ {
		if gray&(uint64(1)<<b) != 0 {
			x ^= g.v[b+1]
		}
	}
	return x
}

// BoxMuller converts two independent uniforms in (0,1) into a pair of
// independent standard normal variates via the standard (non-polar) Box-Muller
// transform. A u1 of zero or less (Cursor.Next can return exactly 0.0) is
// replaced by the smallest positive float64, so the log never yields -Inf.
func BoxMuller(u1, u2 float64) (z0, z1 float64) {
	if u1 <= 0 {
		u1 = math.SmallestNonzeroFloat64
	}
	r := math.Sqrt(-2 * math.Log(u1))
	theta := 2 * math.Pi * u2
	z0 = r * math.Cos(theta)
	z1 = r * math.Sin(theta)
	return z0, z1
}
