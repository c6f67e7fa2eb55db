package pathrng_test

import (
	"testing"

	"github.com/quantedge/pathsim/pathrng"
	"github.com/stretchr/testify/require"
)

func TestNew_DeterministicForSameSeedAndIndex(t *testing.T) {
	r1 := pathrng.New(42, 7)
	r2 := pathrng.New(42, 7)

	for i := 0; i < 100; i++ {
		require.Equal(t, pathrng.Normal(r1), pathrng.Normal(r2))
	}
}

func TestNew_IndependentAcrossPathIndex(t *testing.T) {
	r1 := pathrng.New(42, 0)
	r2 := pathrng.New(42, 1)

	same := true
	for i := 0; i < 20; i++ {
		if pathrng.Normal(r1) != pathrng.Normal(r2) {
			same = false
			break
		}
	}
	require.False(t, same, "different path indices must not produce identical streams")
}

func TestNew_IndependentAcrossMasterSeed(t *testing.T) {
	r1 := pathrng.New(1, 0)
	r2 := pathrng.New(2, 0)
	require.NotEqual(t, pathrng.Normal(r1), pathrng.Normal(r2))
}

func TestEntropySeed_ProducesVaryingValues(t *testing.T) {
	a := pathrng.EntropySeed()
	b := pathrng.EntropySeed()
	require.NotEqual(t, a, b)
}
