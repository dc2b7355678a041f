package vrptw

import "math/rand"

// RNG utilities for the improvement driver (the constructor is
// deterministic and draws no random numbers).
//
// Goals:
//   - Determinism: same seed => identical results across runs (§5).
//   - Independent streams: the destroy/repair step, the SA acceptance draws,
//     and the SA operator pick each get their own derived stream so that
//     adding or removing a call to one does not perturb another's sequence.
//   - No time-based randomness anywhere in the engine.

// defaultSeedValue is the fixed "zero" seed used when Options.Seed == 0.
const defaultSeedValue int64 = 1

// rngFromSeed returns a deterministic *rand.Rand. seed==0 selects
// defaultSeedValue so a caller that never sets Options.Seed still gets
// reproducible behavior instead of an unseeded generator.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeedValue
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style avalanche mix, so that substreams derived
// from the same parent are decorrelated.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// streamRNG enumerates the independent RNG streams derived from a single
// Options.Seed, one per randomized subsystem. Keeping these as named
// constants (rather than ad hoc integers at call sites) means adding a new
// randomized subsystem later cannot silently collide with an existing one.
type streamRNG uint64

const (
	streamLNSDestroy streamRNG = iota
	streamSAAcceptance
	streamSAOperatorPick
)

// newEngineRNGs builds one *rand.Rand per streamRNG from a single seed.
func newEngineRNGs(seed int64) map[streamRNG]*rand.Rand {
	base := rngFromSeed(seed)
	out := make(map[streamRNG]*rand.Rand, 3)
	for _, s := range []streamRNG{streamLNSDestroy, streamSAAcceptance, streamSAOperatorPick} {
		parent := base.Int63()
		out[s] = rand.New(rand.NewSource(deriveSeed(parent, uint64(s))))
	}
	return out
}

// shuffleIntsInPlace performs an in-place Fisher-Yates shuffle of a using rng.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// weightedSample draws a single index in [0,len(weights)) with probability
// proportional to weights[i]. All weights must be >= 0 and sum to > 0;
// callers that violate this get index 0 (defensive, never panics on bad
// input since this only feeds heuristic tie-breaks, never correctness).
func weightedSample(weights []float64, rng *rand.Rand) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	r := rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r <= acc {
			return i
		}
	}
	return len(weights) - 1
}
