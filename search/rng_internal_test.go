package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRngFromSeed_ZeroMapsToDefault(t *testing.T) {
	a, b := rngFromSeed(0), rngFromSeed(defaultRNGSeed)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestDeriveSeed_StreamsDiffer(t *testing.T) {
	seen := make(map[int64]uint64)
	for stream := uint64(0); stream < 64; stream++ {
		s := deriveSeed(42, stream)
		prev, dup := seen[s]
		assert.False(t, dup, "stream %d collides with stream %d", stream, prev)
		seen[s] = stream
	}
	assert.Equal(t, deriveSeed(42, 3), deriveSeed(42, 3))
}

func TestDeriveRNG_Deterministic(t *testing.T) {
	a := deriveRNG(rngFromSeed(9), 2)
	b := deriveRNG(rngFromSeed(9), 2)
	assert.Equal(t, a.Int63(), b.Int63())

	nilBase := deriveRNG(nil, 0)
	assert.Equal(t, rngFromSeed(deriveSeed(defaultRNGSeed, 0)).Int63(), nilBase.Int63())
}
