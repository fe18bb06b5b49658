package search

import "math/rand"

// Random streams for generative trials.
//
// A run seeded with s and split over n workers always produces the same
// candidates: worker w draws from a stream whose seed is a pure function of
// (parent, w), and the parent is read from the base source on the calling
// goroutine before any worker starts. Wall-clock seeding is left to callers.

// defaultRNGSeed stands in for a zero seed.
const defaultRNGSeed int64 = 1

// Constants of the SplitMix64 generator (Steele, Lea, Flood 2014).
const (
	goldenGamma uint64 = 0x9e3779b97f4a7c15
	mixMulA     uint64 = 0xbf58476d1ce4e5b9
	mixMulB     uint64 = 0x94d049bb133111eb
)

// rngFromSeed returns the stream for seed, with 0 read as defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// mix64 is the SplitMix64 output function: every input bit affects every
// output bit.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * mixMulA
	z = (z ^ (z >> 27)) * mixMulB

	return z ^ (z >> 31)
}

// deriveSeed returns the seed of worker stream under parent. Adjacent stream
// numbers land far apart after mixing.
func deriveSeed(parent int64, stream uint64) int64 {
	return int64(mix64((uint64(parent) ^ (stream + goldenGamma)) + goldenGamma))
}

// deriveRNG builds the stream for one worker. It reads one Int63 from base,
// so base must not be in use by another goroutine; with a nil base the
// parent is defaultRNGSeed.
func deriveRNG(base Source, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
