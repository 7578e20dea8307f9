package workload

import "math/rand"

// GenerateBursts draws g.Count bursts uniformly from [g.MinBurst, g.MaxBurst].
// The caller supplies the RNG so the sequence is reproducible from a seed.
func GenerateBursts(rng *rand.Rand, g GenerateSpec) []int64 {
	bursts := make([]int64, g.Count)
	span := g.MaxBurst - g.MinBurst + 1
	for i := range bursts {
		bursts[i] = g.MinBurst + rng.Int63n(span)
	}
	return bursts
}
