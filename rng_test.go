package vrptw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRngFromSeed_DeterministicForSameSeed(t *testing.T) {
	a := rngFromSeed(42)
	b := rngFromSeed(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestRngFromSeed_ZeroSeedIsReproducible(t *testing.T) {
	a := rngFromSeed(0)
	b := rngFromSeed(0)
	assert.Equal(t, a.Int63(), b.Int63())
}

func TestDeriveSeed_DifferentStreamsDiverge(t *testing.T) {
	s1 := deriveSeed(100, uint64(streamLNSDestroy))
	s2 := deriveSeed(100, uint64(streamSAAcceptance))
	assert.NotEqual(t, s1, s2)
}

func TestNewEngineRNGs_StreamsAreIndependent(t *testing.T) {
	rngs := newEngineRNGs(7)
	assert.Len(t, rngs, 3)
	a := rngs[streamLNSDestroy].Int63()
	b := rngs[streamSAAcceptance].Int63()
	assert.NotEqual(t, a, b)
}

func TestShuffleIntsInPlace_PreservesElements(t *testing.T) {
	rng := rngFromSeed(1)
	a := []int{1, 2, 3, 4, 5}
	original := append([]int{}, a...)
	shuffleIntsInPlace(a, rng)

	assert.ElementsMatch(t, original, a)
}

func TestShuffleIntsInPlace_Deterministic(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6, 7}
	b := append([]int{}, a...)

	shuffleIntsInPlace(a, rngFromSeed(99))
	shuffleIntsInPlace(b, rngFromSeed(99))

	assert.Equal(t, a, b)
}

func TestWeightedSample_RespectsZeroWeights(t *testing.T) {
	rng := rngFromSeed(1)
	weights := []float64{0, 1, 0}
	for i := 0; i < 50; i++ {
		idx := weightedSample(weights, rng)
		assert.Equal(t, 1, idx)
	}
}

func TestWeightedSample_AllZeroReturnsFirst(t *testing.T) {
	rng := rngFromSeed(1)
	assert.Equal(t, 0, weightedSample([]float64{0, 0, 0}, rng))
}
